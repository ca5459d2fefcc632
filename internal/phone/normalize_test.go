package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUSNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dashed", "555-111-2222", "+15551112222"},
		{"dotted", "555.111.2222", "+15551112222"},
		{"parenthesized", "(555) 111-2222", "+15551112222"},
		{"with country code", "1-555-111-2222", "+15551112222"},
		{"already canonical", "+15551112222", "+15551112222"},
		{"leading whitespace", "  +1 555 111 2222", "+15551112222"},
		{"parenthesized country code", "(+1) 555 111 2222", "+15551112222"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"letters", "not-a-phone"},
		{"only formatting", "() - ."},
		{"plus only", "+"},
		{"too many digits", "+123456789012345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"555-111-2222", "+15551112222", "+442071838750", "+999123"}
	for _, in := range inputs {
		first, ok := Normalize(in)
		if !ok {
			continue
		}
		second, ok := Normalize(first)
		assert.True(t, ok, "canonical output must re-normalize: %s", first)
		assert.Equal(t, first, second)
	}
}

func TestNormalizeLooseFallback(t *testing.T) {
	// No region metadata validates +999, but the cleaned input already has
	// E.164 shape so it passes through untouched.
	got, ok := Normalize("+999 123")
	assert.True(t, ok)
	assert.Equal(t, "+999123", got)
}

func TestNormalizeWithRegion(t *testing.T) {
	got, ok := NormalizeWithRegion("020 7183 8750", "GB")
	assert.True(t, ok)
	assert.Equal(t, "+442071838750", got)

	// A plus wrapped in formatting still marks the country code, so the
	// region hint is irrelevant here.
	got, ok = NormalizeWithRegion("(+44) 20 7183 8750", "US")
	assert.True(t, ok)
	assert.Equal(t, "+442071838750", got)

	// Empty region falls back to the default.
	got, ok = NormalizeWithRegion("555-111-2222", "")
	assert.True(t, ok)
	assert.Equal(t, "+15551112222", got)
}
