package dataset

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMissingColumn     = errors.New("missing required column")
	ErrNoValidRows       = errors.New("dataset has no valid rows")
	ErrRowRejected       = errors.New("row rejected")
)
