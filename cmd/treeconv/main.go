package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"treeconv/internal/app"
	"treeconv/internal/config"
)

// Версию можно переопределить через -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	// Без аргументов — просто показать помощь.
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "to-diagram", "to-md": // to-md — старое имя команды
		runToDiagram(os.Args[2:])
	case "to-folder":
		runToFolder(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
	case "version", "-version", "--version":
		fmt.Println(version)
	default:
		fail(fmt.Errorf("неизвестная команда: %q (см. %s -help)", os.Args[1], filepath.Base(os.Args[0])))
	}
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stdout, `
%s — конвертирует tree-диаграммы в структуру каталогов и обратно.

Использование:
  %s to-diagram [каталог] [-o файл] [-ignore "имя1,имя2"] [-config файл] [-v|-q]
  %s to-folder [-in файл|-] [-out DIR] [-dry] [-yes] [-dperm 0755] [-fperm 0644] [-v|-q]

Команды:
  to-diagram  построить диаграмму каталога (по умолчанию: текущий каталог, вывод в stdout)
  to-folder   создать структуру по диаграмме (по умолчанию: чтение из stdin)

Формат диаграммы:
  Первая строка — корень (пример: project-name/).
  Далее строки с отступами по 4 символа и ветками ├── / └──.
  Каталоги помечаются / в конце имени.

Примеры:
  %[1]s to-diagram ./myproj -o struct.md
  %[1]s to-folder -in struct.md -out ./dst
  cat struct.md | %[1]s to-folder -out . -yes
  %[1]s to-folder -in struct.md -dry
`, name, name, name)
}

func runToDiagram(args []string) {
	fs := flag.NewFlagSet("to-diagram", flag.ExitOnError)
	out := fs.String("o", "", "Файл для записи диаграммы (по умолчанию stdout)")
	ignore := fs.String("ignore", "", "Имена для исключения через запятую (заменяет набор по умолчанию)")
	cfgPath := fs.String("config", "", "Путь к YAML-конфигу")
	verbose := fs.Bool("v", false, "Подробный вывод")
	quiet := fs.Bool("q", false, "Тихий режим (подавить обычные сообщения)")
	_ = fs.Parse(args)

	dir := fs.Arg(0)
	if dir == "" {
		dir = "."
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	ignoreList := cfg.Ignore
	if *ignore != "" {
		ignoreList = splitList(*ignore)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	opts := app.ToDiagramOptions{
		Dir:     dir,
		OutPath: *out,
		Ignore:  ignoreList,
		Quiet:   *quiet,
		Logger:  logger,
	}
	if err := app.RunToDiagram(opts); err != nil {
		fail(err)
	}
}

func runToFolder(args []string) {
	fs := flag.NewFlagSet("to-folder", flag.ExitOnError)
	in := fs.String("in", "-", "Входной файл с диаграммой ('-' для stdin)")
	out := fs.String("out", ".", "Базовый каталог, куда создавать структуру")
	dry := fs.Bool("dry", false, "Dry-run: только показать, что будет создано")
	yes := fs.Bool("yes", false, "Не спрашивать подтверждения")
	verbose := fs.Bool("v", false, "Подробный вывод")
	quiet := fs.Bool("q", false, "Тихий режим (подавить обычные сообщения)")

	// Права по умолчанию: каталоги 0755, файлы 0644
	dpermStr := fs.String("dperm", "0755", "Права для каталогов (восьмерично, например 0755)")
	fpermStr := fs.String("fperm", "0644", "Права для файлов (восьмерично, например 0644)")
	_ = fs.Parse(args)

	dperm, err := parsePerm(*dpermStr, 0o755)
	if err != nil {
		fail(fmt.Errorf("неверные права -dperm: %w", err))
	}
	fperm, err := parsePerm(*fpermStr, 0o644)
	if err != nil {
		fail(fmt.Errorf("неверные права -fperm: %w", err))
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	opts := app.ToFolderOptions{
		InPath:   *in,
		OutDir:   *out,
		DryRun:   *dry,
		Yes:      *yes,
		Verbose:  *verbose,
		Quiet:    *quiet,
		DirPerm:  dperm,
		FilePerm: fperm,
		Logger:   logger,
	}
	if err := app.RunToFolder(opts); err != nil {
		fail(err)
	}
}

// newLogger — диагностика в stderr; -v опускает порог до Debug.
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

func parsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	// base=0 понимает 0755/755/0o755
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(u), nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
	os.Exit(1)
}
