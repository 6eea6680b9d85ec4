package annfilter

import (
	"errors"
)

var (
	// ErrNilDataset is returned when a nil dataset is passed to Filter or
	// List.
	ErrNilDataset = errors.New("dataset must not be nil")
)
