// Package textnorm holds the normalizations applied to user-entered and
// imported text before it reaches the store.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Upper trims and uppercases s using Portuguese casing rules.
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// Digits keeps only the decimal digits of s ("123.456.789-01" -> "12345678901").
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NoSpace removes every whitespace rune from s.
func NoSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Fold lowercases s and strips diacritics so "Município" and "municipio"
// compare equal. Used for header keyword matching.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.TrimPrefix(out, "\uFEFF")
	return cases.Lower(language.Und).String(strings.TrimSpace(out))
}

// Ptr returns nil for blank strings so optional columns store NULL.
func Ptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
