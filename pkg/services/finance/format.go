package finance

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a money amount with grouping separators and no
// decimals, e.g. 1153000 -> "$1,153,000".
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount)
	if rounded < 0 {
		return printer.Sprintf("-$%v", number.Decimal(-rounded, number.MaxFractionDigits(0)))
	}
	return printer.Sprintf("$%v", number.Decimal(rounded, number.MaxFractionDigits(0)))
}

// FormatPercent renders a percentage with an explicit sign and one decimal,
// e.g. 12.34 -> "+12.3%", -5 -> "-5.0%", 0 -> "+0.0%".
func FormatPercent(pct float64) string {
	return printer.Sprintf("%+.1f%%", pct)
}
