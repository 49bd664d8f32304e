package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "already digits", input: "5551234567", want: "5551234567"},
		{name: "hyphenated", input: "555-123-4567", want: "5551234567"},
		{name: "spaces and parens", input: "(555) 123 4567", want: "5551234567"},
		{name: "letters only", input: "call me", want: ""},
		{name: "non-ascii digits dropped", input: "５55", want: "55"},
		{name: "plus prefix", input: "+1 800 111 0000", want: "18001110000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DigitsOnly(tt.input))
		})
	}
}

func TestDigitsOnly_Idempotent(t *testing.T) {
	inputs := []string{"", "abc", "555-123-4567", "(800) 111-0000 ext. 12", "1-2-3"}
	for _, in := range inputs {
		once := DigitsOnly(in)
		assert.Equal(t, once, DigitsOnly(once), in)
	}
}

func TestCanonicalDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ten digits", input: "5551234567", want: "555-123-4567"},
		{name: "spaced", input: "555 123 4567", want: "555-123-4567"},
		{name: "already canonical", input: "800-111-0000", want: "800-111-0000"},
		{name: "too short passes through", input: "12-345", want: "12345"},
		{name: "too long passes through", input: "1 800 111 0000", want: "18001110000"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanonicalDisplay(tt.input))
		})
	}
}

func TestCanonicalDisplay_RoundTripsDigits(t *testing.T) {
	for _, d := range []string{"0000000000", "5551234567", "9999999999", "6499998888"} {
		assert.Equal(t, d, DigitsOnly(CanonicalDisplay(d)))
	}
}

func TestFormatPartial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "", want: "", wantOK: true},
		{input: "5", want: "5", wantOK: true},
		{input: "555", want: "555", wantOK: true},
		{input: "5551", want: "555-1", wantOK: true},
		{input: "555123", want: "555-123", wantOK: true},
		{input: "5551234", want: "555-123-4", wantOK: true},
		{input: "555-123-4567", want: "555-123-4567", wantOK: true},
		{input: "55512345678", want: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := FormatPartial(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("555-123-4567", "(555) 123 4567"))
	assert.False(t, Equal("555-123-4567", "555-123-4568"))
	assert.True(t, Equal("", "n/a"))
}
