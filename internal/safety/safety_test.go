package safety

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"обычное имя", "src", false},
		{"имя с точкой", "main.py", false},
		{"пустое", "", true},
		{"точка", ".", true},
		{"две точки", "..", true},
		{"слэш внутри", "a/b", true},
		{"обратный слэш", `a\b`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRelPath(t *testing.T) {
	require.NoError(t, ValidateRelPath("proj/src/main.py"))
	require.Error(t, ValidateRelPath(""))
	require.Error(t, ValidateRelPath("proj/../evil"))
	require.Error(t, ValidateRelPath("/abs/path"))
}

func TestSafeJoin(t *testing.T) {
	p, err := SafeJoin("/tmp/base", "a", "b.txt")
	require.NoError(t, err)
	require.Equal(t, "/tmp/base/a/b.txt", p)

	_, err = SafeJoin("/tmp/base", "..", "evil")
	require.Error(t, err)
}
