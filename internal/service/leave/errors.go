package leave

import "errors"

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrOverlap          = errors.New("a leave request already covers part of this period")
	ErrNotFound         = errors.New("leave request not found")
	ErrInvalidStatus    = errors.New("invalid leave status")
)
