package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize renders text tokenised by lexer as tview colour tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name. When none matches the text is
// returned escaped and colorized is false.
func ColorizeFile(fileName, text string, matchLexer func(string) chroma.Lexer) (result string, colorized bool, err error) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	if result, err = Colorize(text, DefaultStyle, lexer); err != nil {
		return "", false, err
	}
	return result, true, nil
}

// MatchLexer is the default lexer lookup for ColorizeFile.
var MatchLexer = lexers.Match
