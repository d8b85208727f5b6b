package datastores

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`) //nolint: gochecknoglobals,nolintlint

// validPhone reports whether phone holds between 10 and 15 digits.
// Any other characters are ignored.
func validPhone(phone string) bool {
	n := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return phoneMinDigits <= n && n <= phoneMaxDigits
}

func validEmail(email string) bool { return emailPattern.MatchString(email) }

// nameKey is the uniqueness key of a contact name. Case folding makes
// spellings that differ only by case, final sigma included, collide.
func nameKey(name string) string { return cases.Fold().String(strings.TrimSpace(name)) }

// normalizeName title-cases each run of letters, so any non-letter starts a
// new word: "o'brien r2d2" becomes "O'Brien R2D2".
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	title := cases.Title(language.Und) // a [cases.Caser] keeps state, so one per call

	var b strings.Builder
	b.Grow(len(name))
	start := -1
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
			if start < 0 {
				start = i
			}
		case start >= 0:
			b.WriteString(title.String(name[start:i]))
			start = -1
			fallthrough
		default:
			b.WriteRune(r)
		}
	}
	if start >= 0 {
		b.WriteString(title.String(name[start:]))
	}
	return b.String()
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }
