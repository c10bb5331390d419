package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"treeconv/internal/app"
	"treeconv/internal/config"
)

var version = "dev"

func main() {
	withContent := flag.Bool("with-content", false, "Заполнять известные файлы (*.py, *.go, *.sh) минимальной заготовкой")
	dry := flag.Bool("dry", false, "Dry-run: только показать, что будет создано")
	cfgPath := flag.String("config", "", "Путь к YAML-конфигу (переопределения шаблонов)")
	verbose := flag.Bool("v", false, "Подробный вывод")
	quiet := flag.Bool("q", false, "Тихий режим")
	showVersion := flag.Bool("version", false, "Показать версию и выйти")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stdout, `
%s — создаёт структуру проекта из markdown-документа.

Ищет в документе fenced-блок с tree-диаграммой или списком путей
и создаёт соответствующие каталоги и пустые файлы.

Использование:
  %s [флаги] <markdown-файл> <каталог>

Флаги:
`, name, name)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	opts := app.FromMarkdownOptions{
		MDPath:      flag.Arg(0),
		OutDir:      flag.Arg(1),
		WithContent: *withContent,
		DryRun:      *dry,
		Verbose:     *verbose,
		Quiet:       *quiet,
		Templates:   cfg.Templates,
		Logger:      logger,
	}
	if err := app.RunFromMarkdown(opts); err != nil {
		fail(err)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
	os.Exit(1)
}
