package vat

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// en-ET: English as used in Ethiopia, the locale the declaration cells are
// rendered in.
var etbPrinter = message.NewPrinter(language.MustParse("en-ET"))

// FormatETB renders a monetary amount the way the declaration form displays
// it: ETB currency, grouped thousands, exactly two fraction digits.
func FormatETB(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return etbPrinter.Sprintf("ETB %.2f", f)
}
