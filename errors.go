package distplot

import "errors"

var (
	// ErrShape is returned for tables which do not have the rows or
	// columns an operation needs.
	ErrShape = errors.New("distplot: bad table shape")

	// ErrClassLimits is returned for class-limit tables which cannot
	// describe the features of a discretized table.
	ErrClassLimits = errors.New("distplot: bad class limits")
)
