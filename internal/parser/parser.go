package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"treeconv/internal/plan"
)

// Маркеры ветвления. Ищем самый ранний в строке.
var markers = []string{"└── ", "├── "}

// Parse читает tree-подобную диаграмму и возвращает план.
// Первая непустая строка — корень (завершающий "/" отбрасывается).
// Дальше каждая строка вида "префикс ├──/└── имя" даёт элемент;
// всё остальное (пустые строки, комментарии) пропускается как шум.
func Parse(r io.Reader) (plan.Plan, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var root string
	var stack []string
	var entries []plan.Entry

	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Первая непустая строка — корень.
		if root == "" {
			root = strings.TrimSuffix(line, "/")
			stack = []string{root}
			continue
		}

		prefix, name, ok := splitBranch(raw)
		if !ok {
			continue
		}

		// Усекаем стек до вычисленного уровня. Если уровень больше
		// текущей глубины (кривой отступ) — стек не трогаем: элемент
		// ложится туда, где стек сейчас, без выдумывания промежуточных
		// каталогов.
		level := levelFromPrefix(prefix)
		if level < len(stack) {
			stack = stack[:level]
		}

		if strings.HasSuffix(name, "/") {
			name = strings.TrimSuffix(name, "/")
			stack = append(stack, name)
			entries = append(entries, plan.Entry{Path: strings.Join(stack, "/"), Dir: true})
		} else {
			entries = append(entries, plan.Entry{Path: strings.Join(stack, "/") + "/" + name, Dir: false})
		}
	}
	if err := sc.Err(); err != nil {
		return plan.Plan{}, err
	}
	if root == "" {
		return plan.Plan{}, fmt.Errorf("не найден корень структуры")
	}

	return plan.Plan{Root: root, Entries: entries}, nil
}

// splitBranch ищет маркер ветвления и делит строку на префикс и имя.
func splitBranch(line string) (prefix, name string, ok bool) {
	idx := -1
	used := ""
	for _, m := range markers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx = i
			used = m
		}
	}
	if idx == -1 {
		return "", "", false
	}
	name = strings.TrimSpace(line[idx+len(used):])
	if name == "" {
		return "", "", false
	}
	return line[:idx], name, true
}

// levelFromPrefix — единственное место, где отступ превращается в уровень
// вложенности: каждые 4 символа префикса ("│   " либо "    ") дают один
// уровень, плюс один за сам корень. Считаем в рунах, префикс юникодный.
func levelFromPrefix(prefix string) int {
	return utf8.RuneCountInString(prefix)/4 + 1
}
