package normalize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown wherever a value is missing.
const Placeholder = "—"

var colombia = language.MustParse("es-CO")

// FormatMoney renders a monetary cell as Colombian pesos without
// fractional digits, e.g. "$ 1.234.568". Missing values render as the
// placeholder dash.
func FormatMoney(v any) string {
	n := ToNum(v)
	if n == nil {
		return Placeholder
	}
	amount := *n
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$ " + message.NewPrinter(colombia).Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}
