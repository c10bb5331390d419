package markdown

import (
	"regexp"
	"strings"

	"treeconv/internal/plan"
)

var (
	leadingGlyphs    = regexp.MustCompile(`^[│├└─┬┼┤┴┌┐┘┗━┃┣┻╋┫╭╮╯╰\s]+`)
	trailingComments = regexp.MustCompile(`\s+#.*$`)
)

// ParsePaths разбирает извлечённый текст как список путей: с каждой
// строки срезается псевдографика и отступ, остаётся «src/main.py» или
// «assets/». Строки без "/" и "." не считаются путями и пропускаются,
// как и комментарии, начинающиеся с "#". Завершающий "/" означает каталог.
func ParsePaths(text string) []plan.Entry {
	var entries []plan.Entry
	for _, line := range strings.Split(text, "\n") {
		cleaned := leadingGlyphs.ReplaceAllString(line, "")
		if cleaned == "" || strings.HasPrefix(cleaned, "#") {
			continue
		}
		if !strings.ContainsAny(cleaned, "/.") {
			continue
		}
		cleaned = strings.ReplaceAll(cleaned, `\`, "/")
		cleaned = trailingComments.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			continue
		}

		if strings.HasSuffix(cleaned, "/") {
			entries = append(entries, plan.Entry{Path: strings.TrimSuffix(cleaned, "/"), Dir: true})
		} else {
			entries = append(entries, plan.Entry{Path: cleaned, Dir: false})
		}
	}
	return entries
}
