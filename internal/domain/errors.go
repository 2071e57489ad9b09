package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store not available")
)

var ErrInvalidLimit = errors.New("limit must be positive")
