package creative

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// clean NFC-normalises s, trims it and collapses inner whitespace runs,
// including newlines pasted into multi-line inputs, to single spaces.
func clean(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// lowerFirst lowercases the first letter so a capitalised input can sit
// mid-sentence. Acronyms and camel-cased names ("GPS", "iPhone") are kept.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return cases.Lower(language.Polish).String(s[:size]) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return cases.Upper(language.Polish).String(s[:size]) + s[size:]
}

// joinList joins items as a natural-language enumeration: "a, b i c"
func joinList(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conjunction + " " + items[len(items)-1]
}

// joinSentences joins the non-empty sentences with single spaces
func joinSentences(sentences ...string) string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}
