package creative

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var stopWords = map[string]bool{
	// Polish
	"a": true, "aby": true, "bez": true, "dla": true, "do": true, "i": true, "lub": true,
	"na": true, "nad": true, "o": true, "od": true, "oraz": true, "po": true, "pod": true,
	"przez": true, "przy": true, "się": true, "to": true, "u": true, "w": true, "we": true,
	"z": true, "za": true, "ze": true, "że": true, "jak": true, "jest": true, "nie": true,
	// English
	"an": true, "and": true, "for": true, "in": true, "of": true, "on": true, "or": true,
	"the": true, "with": true,
}

// minKeywordRunes is the shortest token kept as a keyword. It applies to
// numbers too: "5-letnia" yields "letnia", "w 10 dni" yields "10" and "dni".
const minKeywordRunes = 2

// extractKeywords tokenises the product focus, then each benefit, into
// lowercase words. Tokens split on anything that is not a letter or digit.
// Stop words and tokens shorter than minKeywordRunes are dropped, the rest
// are deduplicated case-insensitively keeping first-seen order, and the tone
// keyword is appended last.
func extractKeywords(b *brief, lex *Lexicon) []string {
	lower := cases.Lower(language.Polish)
	fold := cases.Fold()

	seen := make(map[string]bool)
	var keywords []string
	add := func(token string) {
		key := fold.String(token)
		if seen[key] {
			return
		}
		seen[key] = true
		keywords = append(keywords, token)
	}

	sources := append([]string{b.product}, b.benefits...)
	for _, src := range sources {
		for _, token := range tokenize(src) {
			token = lower.String(token)
			if stopWords[token] || utf8.RuneCountInString(token) < minKeywordRunes {
				continue
			}
			add(token)
		}
	}
	add(lex.voice(b.tone).Keyword)

	return keywords
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
