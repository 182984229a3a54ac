// Package words counts words in mixed CJK and latin text. Each CJK
// character counts as one word; latin-script words are split on whitespace
// and punctuation.
package words

import (
	"strings"
	"unicode"
)

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // unified ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // extension A
		(r >= 0xF900 && r <= 0xFAFF) // compatibility ideographs
}

// Count returns the word count of text: CJK characters plus latin-script
// word tokens. Tokens made purely of punctuation do not count.
func Count(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	cjk := 0
	var rest strings.Builder
	for _, r := range text {
		if isCJK(r) {
			cjk++
			rest.WriteRune(' ')
			continue
		}
		rest.WriteRune(r)
	}

	tokens := strings.FieldsFunc(rest.String(), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	latin := 0
	for _, token := range tokens {
		if strings.ContainsFunc(token, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			latin++
		}
	}
	return cjk + latin
}
