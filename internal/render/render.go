package render

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Renderer обходит каталог и строит tree-подобную диаграмму.
type Renderer struct {
	ignore map[string]bool
	log    *zap.Logger
}

// New создаёт Renderer с набором игнорируемых имён.
func New(ignore []string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	set := make(map[string]bool, len(ignore))
	for _, n := range ignore {
		set[n] = true
	}
	return &Renderer{ignore: set, log: log}
}

// Render возвращает строки диаграммы для каталога root.
// Порядок: сначала подкаталоги (рекурсивно), затем файлы;
// внутри каждой группы — по алфавиту. Скрытые имена (начинающиеся
// с точки) и имена из ignore-набора пропускаются.
func (r *Renderer) Render(root string) []string {
	return r.walk(root, 0, false, "")
}

func (r *Renderer) walk(dir string, depth int, last bool, prefix string) []string {
	name := filepath.Base(dir)
	if name == "" || name == string(filepath.Separator) {
		name = dir
	}

	var lines []string
	switch {
	case depth == 0:
		lines = append(lines, name+"/")
	case last:
		lines = append(lines, prefix+"└── "+name+"/")
	default:
		lines = append(lines, prefix+"├── "+name+"/")
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		// Недоступный каталог — одна строка-заглушка вместо поддерева,
		// обход соседей продолжается.
		r.log.Warn("каталог недоступен", zap.String("path", dir), zap.Error(err))
		lines = append(lines, prefix+"│   (Permission denied or not found)")
		return lines
	}

	var dirs, files []string
	for _, it := range items {
		n := it.Name()
		if strings.HasPrefix(n, ".") || r.ignore[n] {
			continue
		}
		if it.IsDir() {
			dirs = append(dirs, n)
		} else {
			files = append(files, n)
		}
	}

	childPrefix := ""
	if depth > 0 {
		if last {
			childPrefix = prefix + "    "
		} else {
			childPrefix = prefix + "│   "
		}
	}

	for i, d := range dirs {
		lastDir := i == len(dirs)-1 && len(files) == 0
		lines = append(lines, r.walk(filepath.Join(dir, d), depth+1, lastDir, childPrefix)...)
	}
	for i, f := range files {
		if i == len(files)-1 {
			lines = append(lines, childPrefix+"└── "+f)
		} else {
			lines = append(lines, childPrefix+"├── "+f)
		}
	}

	return lines
}
