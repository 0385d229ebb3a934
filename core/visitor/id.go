package visitor

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID mints a visitor id. UUIDv7 carries a millisecond timestamp followed by
// random bits, so ids sort by first visit.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMintID, err)
	}
	return id.String(), nil
}

// ValidID reports whether s is a well-formed visitor id in canonical form.
func ValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id != uuid.Nil
}
