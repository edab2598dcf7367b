package domain

import "github.com/pkg/errors"

var (
	// ErrInvalidSelectionIndex a selection outside the bounds of the catalog
	ErrInvalidSelectionIndex = errors.New("invalid selection index")

	// ErrMalformedNumericInput a selection or amount that is not a usable number
	ErrMalformedNumericInput = errors.New("malformed numeric input")

	// ErrInvalidCatalog a catalog that failed validation
	ErrInvalidCatalog = errors.New("invalid currency catalog")
)
