package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across the service layer.
var (
	// ErrNotFound means the requested record does not exist. For draft
	// loads the caller renders this as "no draft yet", not as a failure.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the request carried no usable identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError rejects a resume draft before it reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// MissingFieldsError rejects a profile section entry whose required
// fields are blank after trimming.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// StorageError wraps a failure at the persistence boundary. Raw store
// errors never cross the HTTP surface; handlers see only this type.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
