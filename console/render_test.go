package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{8.8, "8.80"},
		{0.125, "0.13"},
		{1.005, "1.01"},
		{2.675, "2.68"},
		{0.124, "0.12"},
		{1 / 0.88, "1.14"},
		{142.38, "142.38"},
		{12345.678, "12345.68"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, fixed(tt.in))
		})
	}
}

func TestPrintSummary_RoundsTiesUp(t *testing.T) {
	var buf bytes.Buffer
	usd := domain.Currency{Name: "USD", Rate: 1}

	printSummary(&buf, usd, usd, 2.675, domain.Exchanged{Rate: 1, Amount: 2.675})

	assert.Contains(t, buf.String(), "Exchange Rate: 1 USD = 1.00 USD\n")
	assert.Contains(t, buf.String(), "Amount in USD: 2.68\n")
	assert.Contains(t, buf.String(), "Converted Amount in USD: 2.68\n")
}
