package console

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"go-currency-converter/domain"
)

const divider = "========================================="

// placesToShow decimal places of every figure in a summary
const placesToShow = 2

func printf(w io.Writer, format string, a ...interface{}) {
	_, _ = fmt.Fprintf(w, format, a...)
}

// fixed formats f from its shortest decimal form, rounding half away from zero,
// so 0.125 prints as 0.13 rather than the 0.12 of binary round-half-even.
func fixed(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(placesToShow)
}

// printMenu lists the currencies with the number that selects each one
func printMenu(w io.Writer, currencies []domain.Currency) {
	printf(w, "----- Welcome to Currency Conversion app -----\n")
	printf(w, "%-10s | %s\n", "Currency", "Button")
	printf(w, "------------------------\n")
	for i, c := range currencies {
		printf(w, "%-10s | %d\n", c.Name, i+1)
	}
}

// printSummary prints a conversion, all figures to 2 decimal places
func printSummary(w io.Writer, source, target domain.Currency, amount domain.Amount, result domain.Exchanged) {
	printf(w, "%s\n", divider)
	printf(w, "   Currency Conversion Details\n")
	printf(w, "%s\n", divider)
	printf(w, "Currency: %s to %s\n", source.Name, target.Name)
	printf(w, "Exchange Rate: 1 %s = %s %s\n", source.Name, fixed(float64(result.Rate)), target.Name)
	printf(w, "Amount in %s: %s\n", source.Name, fixed(float64(amount)))
	printf(w, "Converted Amount in %s: %s\n", target.Name, fixed(float64(result.Amount)))
	printf(w, "%s\n", divider)
}
