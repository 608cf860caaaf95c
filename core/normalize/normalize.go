package normalize

import (
	"strings"
	"unicode"
)

// Separator joins the attributes of an item into its identity key.
// Normalization strips it from every field so a key can always be split back.
const Separator = '\x1f'

var sizeSynonyms = map[string]string{
	"X":      "XL",
	"XLARGE": "XL",
	"SMALL":  "M",
}

// Digits maps Arabic-Indic and Extended Arabic-Indic digits to '0'-'9'.
// All other runes pass through unchanged.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r-'٠')%10
		case r >= '۰' && r <= '۹':
			return '0' + (r-'۰')%10
		}
		return r
	}, s)
}

// Text trims and upper-cases a color or fabric value.
func Text(raw string) string {
	return strings.ToUpper(strings.TrimSpace(stripSeparator(raw)))
}

// Code normalizes an internal item code: digits are latinized first.
func Code(raw string) string {
	return Text(Digits(raw))
}

// Size canonicalizes a size token and applies the fixed synonym corrections.
func Size(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(Digits(stripSeparator(raw))))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if fixed, ok := sizeSynonyms[s]; ok {
		return fixed
	}
	return s
}

func stripSeparator(s string) string {
	if !strings.ContainsRune(s, Separator) {
		return s
	}
	return strings.ReplaceAll(s, string(Separator), "")
}
