package fsops

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// templateFor подбирает минимальную заготовку по расширению файла.
// Переопределения из конфига имеют приоритет над встроенными.
// Неизвестное расширение — пустой файл.
func templateFor(path string, overrides map[string]string) []byte {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	key := strings.TrimPrefix(ext, ".")

	if tpl, ok := overrides[key]; ok {
		return []byte(tpl)
	}

	switch ext {
	case ".py":
		base := strings.TrimSuffix(filepath.Base(path), ext)
		module := titleCaser.String(strings.ReplaceAll(base, "_", " "))
		return []byte(fmt.Sprintf("\"\"\"\n%s\n\"\"\"\n\n", module))
	case ".go":
		return []byte("package " + packageName(path) + "\n")
	case ".sh":
		return []byte("#!/usr/bin/env bash\n\n")
	}
	return nil
}

// packageName выводит имя Go-пакета из родительского каталога файла.
func packageName(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return "main"
	}
	return name
}
