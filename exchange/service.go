package exchange

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"go-currency-converter/catalog"
	"go-currency-converter/domain"
)

// Service interface for converting amounts between catalog currencies
type Service interface {
	Currencies(ctx context.Context) []domain.Currency
	Currency(ctx context.Context, index int) (domain.Currency, error)
	Rate(ctx context.Context, source int, target int) (domain.Rate, error)
	Convert(ctx context.Context, request domain.Request) (domain.Exchanged, error)
}

// service converts through the reference currency of a static catalog
type service struct {
	catalog *catalog.Catalog
}

// NewService constructs a valid Service
func NewService(c *catalog.Catalog) Service {
	return &service{
		catalog: c,
	}
}

func (s *service) Currencies(_ context.Context) []domain.Currency {
	return s.catalog.Currencies()
}

func (s *service) Currency(_ context.Context, index int) (domain.Currency, error) {
	return s.catalog.At(index)
}

// Rate derives the rate from source to target via their rates to the reference currency.
func (s *service) Rate(_ context.Context, source int, target int) (domain.Rate, error) {
	sourceRate, err := s.catalog.RateAt(source)
	if err != nil {
		return 0, errors.Wrap(err, "source currency")
	}
	targetRate, err := s.catalog.RateAt(target)
	if err != nil {
		return 0, errors.Wrap(err, "target currency")
	}

	switch s.catalog.Reference() {
	case source:
		// direct
		return targetRate, nil
	case target:
		// reverse
		return 1 / sourceRate, nil
	default:
		// cross
		return targetRate / sourceRate, nil
	}
}

// Convert computes a conversion from one catalog currency to another.
// The converted amount is not rounded.
func (s *service) Convert(ctx context.Context, request domain.Request) (domain.Exchanged, error) {
	amount := float64(request.Amount)
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return domain.Exchanged{}, errors.Wrapf(domain.ErrMalformedNumericInput, "amount %v", request.Amount)
	}

	rate, err := s.Rate(ctx, request.Source, request.Target)
	if err != nil {
		return domain.Exchanged{}, errors.Wrapf(err, "convert %d -> %d", request.Source, request.Target)
	}

	result := domain.Exchanged{
		Rate:   rate,
		Amount: domain.Amount(amount * float64(rate)),
	}

	return result, nil
}
