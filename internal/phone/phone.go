// Package phone canonicalizes free-form phone numbers into a dialable
// international format for a configured home country.
package phone

import (
	"regexp"
	"strings"
)

var validFormatRe = regexp.MustCompile(`^\+\d{8,15}$`)

// Normalizer rewrites phone numbers to +<countryCode><subscriber> form.
// It never fails: input that matches no rule degrades to the cleaned digits.
type Normalizer struct {
	CountryCode      string // digits only, e.g. "58"
	MobilePrefixes   []string
	LandlinePrefixes []string
}

// NewNormalizer returns a normalizer for the given country code. The prefix
// digits default to the Venezuelan numbering plan (4 mobile, 2 landline).
func NewNormalizer(countryCode string) *Normalizer {
	if countryCode == "" {
		countryCode = "58"
	}
	return &Normalizer{
		CountryCode:      countryCode,
		MobilePrefixes:   []string{"4"},
		LandlinePrefixes: []string{"2"},
	}
}

// Normalize cleans separators and reconstructs the international prefix.
// Handles 0414..., 414..., 0414-xxx and the common +<cc>0... typo. Idempotent
// for anything already in +<digits> shape.
func (n *Normalizer) Normalize(raw string) string {
	cleaned := clean(raw)
	if cleaned == "" {
		return ""
	}

	if strings.HasPrefix(cleaned, "+") {
		// +580414... is a transcription mistake: the trunk 0 does not belong
		// after the country code.
		strayZero := "+" + n.CountryCode + "0"
		if strings.HasPrefix(cleaned, strayZero) {
			return "+" + n.CountryCode + cleaned[len(strayZero):]
		}
		return cleaned
	}

	// 11 digits with the national trunk prefix: 04141234567
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "0") {
		return "+" + n.CountryCode + cleaned[1:]
	}
	// 10 digits starting with a known mobile or landline prefix: 4141234567
	if len(cleaned) == 10 {
		for _, prefix := range n.MobilePrefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return "+" + n.CountryCode + cleaned
			}
		}
		for _, prefix := range n.LandlinePrefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return "+" + n.CountryCode + cleaned
			}
		}
	}

	// Best effort: not guaranteed dialable.
	return cleaned
}

// IsValidFormat reports whether s is + followed by 8 to 15 digits.
func (n *Normalizer) IsValidFormat(s string) bool {
	return validFormatRe.MatchString(s)
}

// clean keeps digits and a + that precedes them, so a sign survives even when
// separators come before it (" +58...").
func clean(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Digits strips everything but digits. Used to build gateway chat ids.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
