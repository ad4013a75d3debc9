package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats numbers with en-US grouping ("1,234.56").
var printer = message.NewPrinter(language.AmericanEnglish)

// currencySymbols maps the ISO codes we render with a symbol prefix.
// Codes outside this table fall back to "CODE 1,234.56".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
}

// zeroDecimalCurrencies lists codes conventionally written without cents.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// Currency formats an amount as localized currency text, e.g. "$1,234.56".
// An empty code defaults to USD. Invalid or unsupported codes fall back to
// "CODE <amount to 2 decimals>" rather than failing.
func Currency(amount any, code string) string {
	v := toFloat(amount)

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}

	digits := 2
	if zeroDecimalCurrencies[code] {
		digits = 0
	}

	if sym, ok := currencySymbols[code]; ok {
		return printer.Sprintf("%s%v", sym, number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	}
	if _, err := currency.ParseISO(code); err == nil {
		return printer.Sprintf("%s %v", code, number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	}
	return fmt.Sprintf("%s %.2f", code, v)
}

// Multiply returns the product of two values formatted to exactly two
// decimal places. Line-item amounts are quantity times unit price computed
// at render time.
func Multiply(a, b any) string {
	return fmt.Sprintf("%.2f", toFloat(a)*toFloat(b))
}

// Add returns the numeric sum of two values.
func Add(a, b any) float64 {
	return toFloat(a) + toFloat(b)
}

// Equals reports loose equality: numeric values compare numerically,
// everything else by string form.
func Equals(a, b any) bool {
	if isNumeric(a) && isNumeric(b) {
		return toFloat(a) == toFloat(b)
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// Compare evaluates v1 <op> v2 for the operators template conditionals use.
// "==" is loose equality, "===" is strict (type-sensitive) equality, ">" is
// numeric. Any other operator evaluates to false.
func Compare(v1 any, op string, v2 any) bool {
	switch op {
	case "==":
		return Equals(v1, v2)
	case "===":
		return strictEquals(v1, v2)
	case ">":
		return toFloat(v1) > toFloat(v2)
	}
	return false
}

// strictEquals is type-sensitive equality. Maps and slices are not
// comparable with ==, so those fall back to deep equality instead of
// panicking mid-render.
func strictEquals(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// isNumeric reports whether v carries a numeric value, including numeric
// strings.
func isNumeric(v any) bool {
	switch t := v.(type) {
	case float64, float32, int, int64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return err == nil
	}
	return false
}
