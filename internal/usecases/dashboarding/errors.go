package dashboarding

import "errors"

var (
	ErrChartNotFound     = errors.New("chart not found")
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrInvalidPagination = errors.New("invalid pagination")
)
