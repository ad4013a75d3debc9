package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		code   string
		want   string
	}{
		{"usd default", float64(1234.56), "", "$1,234.56"},
		{"usd explicit", float64(8000), "USD", "$8,000.00"},
		{"lowercase code", float64(10), "usd", "$10.00"},
		{"eur", float64(99.9), "EUR", "€99.90"},
		{"gbp", float64(0.5), "GBP", "£0.50"},
		{"jpy no cents", float64(1500), "JPY", "¥1,500"},
		{"krw no cents", float64(25000), "KRW", "₩25,000"},
		{"iso without symbol", float64(42), "CHF", "CHF 42.00"},
		{"unknown code", float64(7), "WUFFLES", "WUFFLES 7.00"},
		{"numeric string amount", "12.5", "USD", "$12.50"},
		{"non-numeric amount", "n/a", "USD", "$0.00"},
		{"nil amount", nil, "USD", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount, tt.code))
		})
	}
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, "6000.00", Multiply(float64(40), float64(150)))
	assert.Equal(t, "12.50", Multiply("2.5", float64(5)))
	assert.Equal(t, "0.00", Multiply(nil, float64(5)))
	assert.Equal(t, "0.00", Multiply("oops", float64(3)))
}

func TestAdd(t *testing.T) {
	assert.Equal(t, float64(12), Add(float64(5), float64(7)))
	assert.Equal(t, float64(3.5), Add("1.5", int(2)))
	assert.Equal(t, float64(1), Add(nil, float64(1)))
}

func TestEquals(t *testing.T) {
	assert.True(t, Equals(float64(5), "5"))
	assert.True(t, Equals("5.0", int(5)))
	assert.True(t, Equals("abc", "abc"))
	assert.False(t, Equals(float64(5), float64(6)))
	assert.False(t, Equals("abc", "abd"))
}

func TestCompare(t *testing.T) {
	assert.True(t, Compare(float64(5), "==", "5"))
	assert.False(t, Compare(float64(5), "===", "5"))
	assert.True(t, Compare(float64(5), "===", float64(5)))
	assert.True(t, Compare(float64(6), ">", float64(5)))
	assert.False(t, Compare(float64(5), ">", float64(6)))
	assert.False(t, Compare(float64(5), "<=", float64(6)))
}

func TestCompareStrictUncomparableOperands(t *testing.T) {
	// Maps and slices are not comparable with ==; strict equality must
	// still return rather than panic when data hands them in.
	assert.True(t, Compare(map[string]any{"x": 1}, "===", map[string]any{"x": 1}))
	assert.False(t, Compare(map[string]any{"x": 1}, "===", map[string]any{"x": 2}))
	assert.True(t, Compare([]any{"a", "b"}, "===", []any{"a", "b"}))
	assert.False(t, Compare([]any{"a"}, "===", map[string]any{}))
	assert.False(t, Compare(map[string]any{}, "===", "m"))
	assert.True(t, Compare(nil, "===", nil))
}
