package normalize_test

import (
	"testing"

	"garment-stock/core/normalize"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ArabicIndic", "٠١٢٣٤٥٦٧٨٩", "0123456789"},
		{"ExtendedArabicIndic", "۰۱۲۳۴۵۶۷۸۹", "0123456789"},
		{"Mixed", "AB٣C۷", "AB3C7"},
		{"Ascii", "abc-42", "abc-42"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Digits(tt.in))
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercase", "2xl", "2XL"},
		{"ArabicDigit", "٢XL", "2XL"},
		{"InnerWhitespace", " 2 x l ", "2XL"},
		{"SynonymX", "x", "XL"},
		{"SynonymXLarge", "X Large", "XL"},
		{"SynonymSmall", "small", "M"},
		{"Numeric", " ٤٢ ", "42"},
		{"Empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Size(tt.in))
		})
	}

	t.Run("DigitScriptRoundTrip", func(t *testing.T) {
		assert.Equal(t, normalize.Size("2xl"), normalize.Size("٢XL"))
		assert.Equal(t, "2XL", normalize.Size("٢XL"))
	})
}

func TestTextAndCode(t *testing.T) {
	assert.Equal(t, "NAVY BLUE", normalize.Text("  navy blue "))
	assert.Equal(t, "", normalize.Text(""))

	// Only codes get their digits latinized.
	assert.Equal(t, "AB1", normalize.Code(" ab١ "))
	assert.Equal(t, "RED٢", normalize.Text("red٢"))
}

func TestSeparatorIsStripped(t *testing.T) {
	assert.Equal(t, "AB", normalize.Code("a\x1fb"))
	assert.Equal(t, "XL", normalize.Size("x\x1fl"))
	assert.NotContains(t, normalize.Text("c\x1fotton"), string(normalize.Separator))
}
