package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"treeconv/internal/fsops"
	"treeconv/internal/markdown"
	"treeconv/internal/parser"
	"treeconv/internal/plan"
	"treeconv/internal/render"
	"treeconv/internal/safety"
)

// ToDiagramOptions — настройки запуска to-diagram.
type ToDiagramOptions struct {
	Dir     string
	OutPath string // пусто — вывод в stdout
	Ignore  []string
	Quiet   bool
	Logger  *zap.Logger
}

// RunToDiagram строит диаграмму каталога и пишет её в файл либо в stdout.
func RunToDiagram(o ToDiagramOptions) error {
	info, err := os.Stat(o.Dir)
	if err != nil {
		return fmt.Errorf("каталог %q недоступен: %w", o.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q — не каталог", o.Dir)
	}

	lines := render.New(o.Ignore, o.Logger).Render(o.Dir)
	text := strings.Join(lines, "\n") + "\n"

	if o.OutPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(o.OutPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("не удалось записать %q: %w", o.OutPath, err)
	}
	if !o.Quiet {
		fmt.Printf("Диаграмма сохранена в %s\n", o.OutPath)
	}
	return nil
}

// ToFolderOptions — настройки запуска to-folder.
type ToFolderOptions struct {
	InPath   string // пусто или "-" — чтение из stdin до конца ввода
	OutDir   string
	DryRun   bool
	Yes      bool // не задавать вопрос перед созданием
	Verbose  bool
	Quiet    bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Logger   *zap.Logger
}

// RunToFolder читает диаграмму, показывает план и создаёт структуру.
func RunToFolder(o ToFolderOptions) error {
	var r io.Reader
	fromStdin := o.InPath == "" || o.InPath == "-"
	if fromStdin {
		if !o.Quiet {
			fmt.Println("Введите диаграмму (Ctrl+D — конец ввода):")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(o.InPath)
		if err != nil {
			return fmt.Errorf("не удалось открыть входной файл %q: %w", o.InPath, err)
		}
		defer f.Close()
		r = f
	}

	p, err := parser.Parse(r)
	if err != nil {
		return fmt.Errorf("ошибка разбора диаграммы: %w", err)
	}
	logOf(o.Logger).Debug("диаграмма разобрана",
		zap.String("root", p.Root), zap.Int("entries", len(p.Entries)))
	if err := safety.ValidateName(p.Root); err != nil {
		return fmt.Errorf("корень структуры некорректен: %w", err)
	}
	if len(p.Entries) == 0 {
		return fmt.Errorf("не найдено ни одного элемента структуры")
	}

	if !o.Quiet {
		printPlan(o.OutDir, p.Entries)
	}
	if o.DryRun {
		return nil
	}

	if !o.Yes && !confirm() {
		if !o.Quiet {
			fmt.Println("Операция отменена.")
		}
		return nil
	}

	args := fsops.ApplyArgs{
		Entries:  p.Entries,
		DestRoot: o.OutDir,
		Verbose:  o.Verbose,
		Quiet:    o.Quiet,
		DirPerm:  o.DirPerm,
		FilePerm: o.FilePerm,
	}
	if err := fsops.Apply(args); err != nil {
		return err
	}

	if !o.Quiet {
		fmt.Printf("Готово: %s\n", filepath.Join(o.OutDir, p.Root))
	}
	return nil
}

// FromMarkdownOptions — настройки утилиты mdstruct.
type FromMarkdownOptions struct {
	MDPath      string
	OutDir      string
	WithContent bool
	DryRun      bool
	Verbose     bool
	Quiet       bool
	Templates   map[string]string
	Logger      *zap.Logger
}

// RunFromMarkdown извлекает структуру из markdown-документа и создаёт её.
func RunFromMarkdown(o FromMarkdownOptions) error {
	data, err := os.ReadFile(o.MDPath)
	if err != nil {
		return fmt.Errorf("не удалось прочитать %q: %w", o.MDPath, err)
	}

	text, ok := markdown.Extract(data)
	if !ok {
		return fmt.Errorf("в документе не найдена структура проекта")
	}

	entries := markdown.ParsePaths(text)
	if len(entries) == 0 {
		return fmt.Errorf("не найдено ни одного пути в структуре")
	}
	logOf(o.Logger).Debug("структура извлечена", zap.Int("paths", len(entries)))

	if !o.Quiet {
		printPlan(o.OutDir, entries)
	}
	if o.DryRun {
		return nil
	}

	args := fsops.ApplyArgs{
		Entries:     entries,
		DestRoot:    o.OutDir,
		Verbose:     o.Verbose,
		Quiet:       o.Quiet,
		DirPerm:     0o755,
		FilePerm:    0o644,
		WithContent: o.WithContent,
		Templates:   o.Templates,
	}
	if err := fsops.Apply(args); err != nil {
		return err
	}

	if !o.Quiet {
		fmt.Printf("Готово: %s\n", o.OutDir)
	}
	return nil
}

func logOf(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func printPlan(outDir string, entries []plan.Entry) {
	fmt.Printf("В каталоге %q будет создано:\n", outDir)
	for _, e := range entries {
		kind := "файл"
		if e.Dir {
			kind = "каталог"
		}
		fmt.Printf("  %s: %s\n", kind, e.Path)
	}
}

// confirm спрашивает подтверждение. Конец ввода считается отказом:
// если диаграмма пришла из stdin, спросить уже не у кого.
func confirm() bool {
	fmt.Print("Продолжить создание? (y/n): ")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		fmt.Println()
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(sc.Text()))
	return ans == "y" || ans == "yes"
}
