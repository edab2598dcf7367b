package catalog

import (
	"math"

	"github.com/pkg/errors"

	"go-currency-converter/domain"
)

// Catalog an ordered, immutable list of currencies addressed by 1-based index.
// Exactly one entry has a rate of 1 and acts as the reference currency.
type Catalog struct {
	// currencies in display order
	currencies []domain.Currency

	// reference 1-based index of the reference currency
	reference int
}

// New constructs a valid Catalog from the given currencies, in order.
func New(currencies ...domain.Currency) (*Catalog, error) {
	if len(currencies) == 0 {
		return nil, errors.Wrap(domain.ErrInvalidCatalog, "no currencies")
	}

	seen := make(map[string]bool, len(currencies))
	reference := 0
	for i, c := range currencies {
		if c.Name == "" {
			return nil, errors.Wrapf(domain.ErrInvalidCatalog, "currency %d has no name", i+1)
		}
		if seen[c.Name] {
			return nil, errors.Wrapf(domain.ErrInvalidCatalog, "duplicate currency %v", c.Name)
		}
		seen[c.Name] = true

		rate := float64(c.Rate)
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return nil, errors.Wrapf(domain.ErrInvalidCatalog, "currency %v has non-positive rate %v", c.Name, c.Rate)
		}
		if rate == 1 {
			if reference != 0 {
				return nil, errors.Wrapf(domain.ErrInvalidCatalog, "both %v and %v have rate 1",
					currencies[reference-1].Name, c.Name)
			}
			reference = i + 1
		}
	}
	if reference == 0 {
		return nil, errors.Wrap(domain.ErrInvalidCatalog, "no reference currency with rate 1")
	}

	return &Catalog{
		currencies: append([]domain.Currency(nil), currencies...),
		reference:  reference,
	}, nil
}

// Default the built-in catalog, rates relative to USD.
func Default() *Catalog {
	c, err := New(
		domain.Currency{Name: "USD", Rate: 1},
		domain.Currency{Name: "EUR", Rate: 0.88},
		domain.Currency{Name: "GBP", Rate: 0.75},
		domain.Currency{Name: "JPY", Rate: 142.38},
		domain.Currency{Name: "INR", Rate: 85.38},
		domain.Currency{Name: "TMT", Rate: 3.49},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Len number of currencies in the catalog
func (c *Catalog) Len() int {
	return len(c.currencies)
}

// Reference 1-based index of the reference currency
func (c *Catalog) Reference() int {
	return c.reference
}

// Currencies a copy of the catalog entries in display order
func (c *Catalog) Currencies() []domain.Currency {
	return append([]domain.Currency(nil), c.currencies...)
}

// At returns the currency at a 1-based index.
func (c *Catalog) At(index int) (domain.Currency, error) {
	if index < 1 || index > len(c.currencies) {
		return domain.Currency{}, errors.Wrapf(domain.ErrInvalidSelectionIndex,
			"index %d outside [1, %d]", index, len(c.currencies))
	}
	return c.currencies[index-1], nil
}

// NameAt returns the currency code at a 1-based index.
func (c *Catalog) NameAt(index int) (string, error) {
	currency, err := c.At(index)
	if err != nil {
		return "", err
	}
	return currency.Name, nil
}

// RateAt returns the rate-to-reference at a 1-based index.
func (c *Catalog) RateAt(index int) (domain.Rate, error) {
	currency, err := c.At(index)
	if err != nil {
		return 0, err
	}
	return currency.Rate, nil
}
