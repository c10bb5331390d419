package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"treeconv/internal/plan"
	"treeconv/internal/safety"
)

// ApplyArgs — параметры применения плана к файловой системе.
type ApplyArgs struct {
	Entries     []plan.Entry
	DestRoot    string
	Verbose     bool
	Quiet       bool
	DirPerm     os.FileMode
	FilePerm    os.FileMode
	WithContent bool              // подставлять шаблон для известных расширений
	Templates   map[string]string // переопределения шаблонов: расширение → содержимое
}

// Apply создаёт каталоги и файлы по списку элементов, в порядке списка.
// Каталоги идемпотентны (существующий — не ошибка), существующие файлы
// никогда не перезаписываются и не усекаются. Родительские каталоги
// каждого элемента создаются неявно. Любая ошибка ФС — фатальна.
func Apply(a ApplyArgs) error {
	if err := os.MkdirAll(a.DestRoot, a.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", a.DestRoot, err)
	}

	for _, e := range a.Entries {
		if err := safety.ValidateRelPath(e.Path); err != nil {
			return err
		}
		target, err := safety.SafeJoin(a.DestRoot, strings.Split(e.Path, "/")...)
		if err != nil {
			return err
		}

		if e.Dir {
			if err := ensureDir(a, target); err != nil {
				return err
			}
			continue
		}
		if err := ensureDir(a, filepath.Dir(target)); err != nil {
			return err
		}
		if err := ensureFile(a, target); err != nil {
			return err
		}
	}

	return nil
}

func ensureDir(a ApplyArgs, path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		// Уже есть — ок.
		return nil

	case err == nil && !info.IsDir():
		return fmt.Errorf("конфликт: по пути %s уже существует файл", path)

	case os.IsNotExist(err):
		if err := os.MkdirAll(path, a.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		if a.Verbose {
			out(a, "dir: %s", path)
		}
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

func ensureFile(a ApplyArgs, path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("конфликт: по пути %s уже есть каталог", path)

	case err == nil && !info.IsDir():
		// Файл существует — не трогаем.
		out(a, "exists: %s", path)
		return nil

	case os.IsNotExist(err):
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, a.FilePerm)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if a.WithContent {
			if tpl := templateFor(path, a.Templates); len(tpl) > 0 {
				if _, err := f.Write(tpl); err != nil {
					_ = f.Close()
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		if a.Verbose {
			out(a, "file: %s", path)
		}
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

func out(a ApplyArgs, format string, args ...interface{}) {
	if a.Quiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}
