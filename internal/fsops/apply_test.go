package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeconv/internal/plan"
)

func baseArgs(dest string) ApplyArgs {
	return ApplyArgs{
		DestRoot: dest,
		Quiet:    true,
		DirPerm:  0o755,
		FilePerm: 0o644,
	}
}

func TestApply_CreatesStructure(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.Entries = []plan.Entry{
		{Path: "proj/src", Dir: true},
		{Path: "proj/src/main.py", Dir: false},
		{Path: "proj/README.md", Dir: false},
	}

	require.NoError(t, Apply(a))

	info, err := os.Stat(filepath.Join(dest, "proj", "src"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(filepath.Join(dest, "proj", "src", "main.py"))
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = os.Stat(filepath.Join(dest, "proj", "README.md"))
	require.NoError(t, err)
}

// Родители создаются неявно: файл можно указать раньше его каталога.
func TestApply_ImplicitParents(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.Entries = []plan.Entry{
		{Path: "a/b/c/deep.txt", Dir: false},
	}

	require.NoError(t, Apply(a))

	_, err := os.Stat(filepath.Join(dest, "a", "b", "c", "deep.txt"))
	require.NoError(t, err)
}

// Повторное применение не трогает существующее содержимое и не падает
// на существующих каталогах.
func TestApply_Idempotent(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.Entries = []plan.Entry{
		{Path: "proj/src", Dir: true},
		{Path: "proj/src/main.py", Dir: false},
	}

	require.NoError(t, Apply(a))

	target := filepath.Join(dest, "proj", "src", "main.py")
	require.NoError(t, os.WriteFile(target, []byte("print('hi')\n"), 0o644))

	require.NoError(t, Apply(a))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(data))
}

func TestApply_Conflicts(t *testing.T) {
	t.Run("файл на месте каталога", func(t *testing.T) {
		dest := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dest, "x"), nil, 0o644))

		a := baseArgs(dest)
		a.Entries = []plan.Entry{{Path: "x", Dir: true}}
		require.Error(t, Apply(a))
	})

	t.Run("каталог на месте файла", func(t *testing.T) {
		dest := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dest, "y"), 0o755))

		a := baseArgs(dest)
		a.Entries = []plan.Entry{{Path: "y", Dir: false}}
		require.Error(t, Apply(a))
	})
}

func TestApply_RejectsEscape(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.Entries = []plan.Entry{{Path: "../evil.txt", Dir: false}}
	require.Error(t, Apply(a))
}

func TestApply_WithContent(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.WithContent = true
	a.Entries = []plan.Entry{
		{Path: "proj/game_engine.py", Dir: false},
		{Path: "proj/parser/parse.go", Dir: false},
		{Path: "proj/run.sh", Dir: false},
		{Path: "proj/notes.txt", Dir: false},
	}

	require.NoError(t, Apply(a))

	read := func(rel string) string {
		data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(rel)))
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, "\"\"\"\nGame Engine\n\"\"\"\n\n", read("proj/game_engine.py"))
	assert.Equal(t, "package parser\n", read("proj/parser/parse.go"))
	assert.Equal(t, "#!/usr/bin/env bash\n\n", read("proj/run.sh"))
	assert.Empty(t, read("proj/notes.txt"))
}

func TestApply_TemplateOverride(t *testing.T) {
	dest := t.TempDir()
	a := baseArgs(dest)
	a.WithContent = true
	a.Templates = map[string]string{
		"py": "# custom\n",
		"md": "# Заголовок\n",
	}
	a.Entries = []plan.Entry{
		{Path: "app.py", Dir: false},
		{Path: "README.md", Dir: false},
	}

	require.NoError(t, Apply(a))

	data, err := os.ReadFile(filepath.Join(dest, "app.py"))
	require.NoError(t, err)
	assert.Equal(t, "# custom\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Заголовок\n", string(data))
}
