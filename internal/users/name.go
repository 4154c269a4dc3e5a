package users

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/uocflix/internal/common"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// blanks are the characters treated as word separators in names.
const blanks = " \t"

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// TrimCapitalizeName strips leading and trailing blanks from the name and
// capitalizes every blank-separated word: first letter in title case, the
// rest lower case. Blanks between words are kept as they are.
//
//	"  john   DOE " -> "John   Doe"
//
// A name with no visible characters is rejected and left unchanged.
func (u *User) TrimCapitalizeName() error {
	trimmed := strings.Trim(u.Name, blanks)
	if trimmed == "" {
		return fmt.Errorf("name %q: %w", u.Name, common.ErrorInvalidInput)
	}

	u.Name = capitalizeWords(trimmed)
	return nil
}

func capitalizeWords(s string) string {
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))

	for s != "" {
		end := strings.IndexFunc(s, isBlank)
		if end == 0 {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		if end < 0 {
			end = len(s)
		}

		word := s[:end]
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToTitle(r))
		b.WriteString(lower.String(word[size:]))
		s = s[end:]
	}

	return b.String()
}
