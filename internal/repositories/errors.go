package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Error kinds surfaced by the persistence gateway so handlers can pick the
// right status code instead of collapsing every failure to one outcome.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)

// translateError maps gorm-level errors onto the gateway's error kinds.
// Anything unrecognized is returned as-is and treated as an upstream failure.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
