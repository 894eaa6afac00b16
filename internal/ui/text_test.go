package ui

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatterWithColor(t *testing.T) {
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
	}
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })

	result := Code.Sprint("seedxor split secrets.txt a b")
	assert.NotContains(t, result, "`")
	assert.Contains(t, result, "\x1b[")
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "seedxor gen", "`seedxor gen`"},
		{"Path has no decoration", Path, "share-1.txt", "share-1.txt"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "24", "'24'"},
		{"Muted adds parentheses", Muted, "stdout", "(stdout)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formatter.Sprint(tt.input))
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "`seedxor xor -o out.txt`", Code.Sprintf("seedxor xor -o %s", "out.txt"))
	assert.Equal(t, "`seedxor`", Code.Sprint("seed", "xor"))
}

func TestEnsureNewline(t *testing.T) {
	assert.Equal(t, "\n", EnsureNewline(""))
	assert.Equal(t, "done\n", EnsureNewline("done"))
	assert.Equal(t, "done\n", EnsureNewline("done\n"))
}
