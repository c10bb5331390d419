package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Strategy — одна эвристика извлечения структуры из документа.
// Возвращает найденный текст и признак успеха.
type Strategy func(src []byte) (string, bool)

// Стратегии пробуются по порядку, побеждает первая сработавшая.
var strategies = []Strategy{fromFencedBlock, fromRawLines}

// Extract ищет в markdown-документе фрагмент, похожий на структуру
// проекта. Пустой результат означает «ничего не найдено».
func Extract(src []byte) (string, bool) {
	for _, s := range strategies {
		if text, ok := s(src); ok {
			return text, true
		}
	}
	return "", false
}

// fromFencedBlock разбирает документ как markdown и возвращает первый
// fenced-блок, содержащий разделитель пути.
func fromFencedBlock(src []byte) (string, bool) {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))

	var found string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found != "" {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			buf.Write(seg.Value(src))
		}
		block := buf.String()
		if strings.ContainsAny(block, `/\`) {
			found = block
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return found, found != ""
}

var structureLine = regexp.MustCompile(`[│├└─┬┼┤┴┌┐┘┗━┃┣┻╋┫╭╮╯╰]|\w+/\w+|[\w-]+\.\w+`)

// fromRawLines — запасная эвристика: собираем строки с псевдографикой
// либо с чем-то, похожим на путь (name/name, name.ext).
func fromRawLines(src []byte) (string, bool) {
	var kept []string
	for _, line := range strings.Split(string(src), "\n") {
		if structureLine.MatchString(line) {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, "\n"), true
}
