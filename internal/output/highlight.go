package output

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var delimiterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// highlightDiff renders diff text with ANSI colors using chroma's diff
// lexer. Any tokenizer or formatter failure falls back to the plain text.
func highlightDiff(src string) string {
	lexer := lexers.Get("diff")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var b strings.Builder
	if err := formatters.TTY256.Format(&b, styles.Get("dracula"), it); err != nil {
		return src
	}
	return b.String()
}
