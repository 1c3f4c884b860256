package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer("58")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trunk prefix replaced", "04143416986", "+584143416986"},
		{"mobile prefix without trunk", "4143416986", "+584143416986"},
		{"landline prefix without trunk", "2123416986", "+582123416986"},
		{"separators stripped", "0414-341.69 86", "+584143416986"},
		{"stray zero after country code", "+5804143416986", "+584143416986"},
		{"plus after leading separators", " +5804143416986", "+584143416986"},
		{"plus after tab and spaces", "\t +58 414 341 69 86", "+584143416986"},
		{"plus mid-string is a separator", "0414+3416986", "+584143416986"},
		{"already international", "+584143416986", "+584143416986"},
		{"foreign number untouched", "+12025550123", "+12025550123"},
		{"unrecognized shape returned cleaned", "12345", "12345"},
		{"empty input", "", ""},
		{"separators only", "- . ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer("58")

	inputs := []string{
		"04143416986",
		"4143416986",
		"0414-341.69 86",
		"+5804143416986",
		" +5804143416986",
		"+584143416986",
		"2123416986",
		"12345",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize(%q) should be stable", in)
	}
}

func TestIsValidFormat(t *testing.T) {
	n := NewNormalizer("58")

	assert.True(t, n.IsValidFormat("+584143416986"))
	assert.True(t, n.IsValidFormat("+12345678"))
	assert.False(t, n.IsValidFormat("04143416986"))
	assert.False(t, n.IsValidFormat("+123"))
	assert.False(t, n.IsValidFormat("+58414341698612345"))
	assert.False(t, n.IsValidFormat(""))
	assert.False(t, n.IsValidFormat("+5841434abc86"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "584143416986", Digits("+584143416986"))
	assert.Equal(t, "", Digits("abc"))
}
