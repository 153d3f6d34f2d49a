package errs

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is the sentinel error for all StorageUnavailableError
// instances. It classifies connectivity or driver failures of the order and
// product stores, as opposed to business failures. Callers may retry these;
// the application itself never does.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageUnavailableError reports that the store named by StoreName could not
// serve a request for infrastructure reasons.
type StorageUnavailableError struct {
	StoreName string
	Cause     error
}

// NewStorageUnavailableError creates a StorageUnavailableError wrapping the
// driver failure that caused it.
func NewStorageUnavailableError(storeName string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{
		StoreName: storeName,
		Cause:     cause,
	}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrStorageUnavailable, e.StoreName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.StoreName))
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
