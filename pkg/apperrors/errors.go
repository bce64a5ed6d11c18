package apperrors

import "errors"

var (
	ErrEmptyPool         = errors.New("cannot choose from an empty pool")
	ErrInvalidSchema     = errors.New("schema has no fields")
	ErrDimensionMismatch = errors.New("correlation matrix dimension does not match series count")
	ErrNoUsers           = errors.New("no users supplied")
	ErrNoProducts        = errors.New("no products supplied")
	ErrNoOrders          = errors.New("no orders supplied")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidCount      = errors.New("count must be positive")
	ErrInvalidRate       = errors.New("anomaly rate must be between 0 and 1")
)
