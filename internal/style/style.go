// Package style applies output styles to rendered sentences.
//
//	plain     unchanged
//	ascii     diacritics folded: "o północy" → "o polnocy"
//	upper     Polish upper case: "O PÓŁNOCY"
//	sentence  capitalised first letter and a closing full stop
package style

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Style names an output transformation.
type Style string

const (
	Plain    Style = "plain"
	ASCII    Style = "ascii"
	Upper    Style = "upper"
	Sentence Style = "sentence"
)

// All lists the supported styles.
var All = []Style{Plain, ASCII, Upper, Sentence}

// Parse validates s. The empty string is Plain.
func Parse(s string) (Style, error) {
	if s == "" {
		return Plain, nil
	}
	for _, st := range All {
		if string(st) == strings.ToLower(s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// foldStroke maps ł and Ł, which carry a stroke rather than a combining
// mark and so survive NFD.
func foldStroke(r rune) rune {
	switch r {
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	}
	return r
}

var asciiPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Map(foldStroke),
			norm.NFC,
		)
	},
}

// Apply renders text in the given style.
func Apply(st Style, text string) string {
	switch st {
	case ASCII:
		tr := asciiPool.Get().(transform.Transformer)
		out, _, err := transform.String(tr, text)
		tr.Reset()
		asciiPool.Put(tr)
		if err != nil {
			return text
		}
		return out
	case Upper:
		return cases.Upper(language.Polish).String(text)
	case Sentence:
		if text == "" {
			return text
		}
		_, size := utf8.DecodeRuneInString(text)
		out := cases.Upper(language.Polish).String(text[:size]) + text[size:]
		if !strings.HasSuffix(out, ".") {
			out += "."
		}
		return out
	default:
		return text
	}
}
