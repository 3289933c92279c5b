package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

func Trim(s string) string { return strings.TrimSpace(s) }

func ToLower(s string) string { return strings.ToLower(s) }

func ToUpper(s string) string { return strings.ToUpper(s) }

// ToTitle maps every letter to its title case, which for most scripts is
// upper case.
func ToTitle(s string) string { return strings.ToTitle(s) }

func TrimToLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func TrimToUpper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// NormalizeEmail trims and lowercases an address. The local part is
// lowercased too, so "John@x.io" and "john@x.io" are the same account.
func NormalizeEmail(s string) string { return TrimToLower(s) }

// words splits s on every rune that is neither a letter nor a digit.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ToKebabCase lowercases s and joins its words with "-".
func ToKebabCase(s string) string {
	return strings.Join(words(strings.ToLower(s)), "-")
}

// ToSnakeCase lowercases s and joins its words with "_".
func ToSnakeCase(s string) string {
	return strings.Join(words(strings.ToLower(s)), "_")
}

// ToCamelCase lowercases the first word and capitalizes the rest.
func ToCamelCase(s string) string {
	var b strings.Builder
	for i, w := range words(strings.ToLower(s)) {
		if i > 0 {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			w = string(r)
		}
		b.WriteString(w)
	}
	return b.String()
}

// MaxLength truncates s to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses whitespace runs to one space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine is RemoveExtraWhitespace; line breaks count as whitespace.
func SingleLine(s string) string { return RemoveExtraWhitespace(s) }

// StripHTML removes tags and decodes entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

func RemoveNullBytes(s string) string { return strings.ReplaceAll(s, "\x00", "") }

// RemoveControlChars drops control characters other than \n, \r and \t.
func RemoveControlChars(s string) string {
	return keep(s, func(r rune) bool {
		return !unicode.IsControl(r) || r == '\n' || r == '\r' || r == '\t'
	})
}

// KeepAlphanumeric keeps letters, digits and spaces.
func KeepAlphanumeric(s string) string {
	return keep(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
	})
}

// KeepAlpha keeps letters and spaces.
func KeepAlpha(s string) string {
	return keep(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsSpace(r) })
}

func KeepDigits(s string) string { return keep(s, unicode.IsDigit) }

func keep(s string, ok func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if ok(r) {
			return r
		}
		return -1
	}, s)
}
