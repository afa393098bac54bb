package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestTree builds a directory tree under dir. Keys ending in "/" are
// created as directories (possibly empty); other keys are files with the
// given content. Parent directories are created as needed.
func CreateTestTree(t *testing.T, dir string, entries map[string]string) {
	t.Helper()
	for name, content := range entries {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

// CreateSubmissionTree builds the canonical browsing fixture used across the
// TUI tests: a source directory with C files, a makefile, notes, and entries
// the walker is expected to skip.
func CreateSubmissionTree(t *testing.T, dir string) {
	t.Helper()
	CreateTestTree(t, dir, map[string]string{
		"src/main.c": "#include <stdio.h>\n" +
			"#include <stdlib.h>\n" +
			"\n" +
			"#include \"util.h\"\n" +
			"\n" +
			"static int count(int n)\n" +
			"{\n" +
			"\tint total = 0;\n" +
			"\n" +
			"\twhile (n > 0) {\n" +
			"\t\ttotal += n % 10;\n" +
			"\t\tn /= 10;\n" +
			"\t}\n" +
			"\treturn total;\n" +
			"}\n" +
			"\n" +
			"int main(void)\n" +
			"{\n" +
			"\tprintf(\"%d\\n\", count(4711));\n" +
			"\treturn EXIT_SUCCESS;\n" +
			"}\n",
		"src/util.h":        "#ifndef UTIL_H\n#define UTIL_H\n#endif\n",
		"README.md":         "# fixture\n\nbrowse me\n",
		"Makefile":          "all:\n\tcc -o prog main.c\n",
		"notes.txt":         "plain notes\n",
		".hidden":           "never shown\n",
		"__pycache__/x.pyc": "stale bytecode",
		"empty/":            "",
	})
}

// KeyPress builds the key message a terminal would deliver for the given
// bubbletea key string, e.g. "j", "enter", "ctrl+d".
func KeyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	// Simple ANSI escape sequence stripping
	// This is a basic implementation - you might want to use a more robust solution
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
