package services

import (
	"errors"
	"fmt"
	"log"

	"jobboard/internal/storage"
)

// mapRepoError maps storage errors to service errors so handlers only ever
// see the service sentinels.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
