package services

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound   = errors.New("tenant_not_found")
	ErrUnitNotFound     = errors.New("unit_not_found")
	ErrDocumentNotFound = errors.New("document_not_found")
	ErrReadingNotFound  = errors.New("meter_reading_not_found")
	ErrDuplicateTenant  = errors.New("duplicate_tenant")
)

// IntegrityError marks a referential state the cascade cannot resolve, e.g.
// a unit pointing at an address row that no longer exists. The surrounding
// transaction is rolled back and the operation is not retryable as-is.
type IntegrityError struct {
	Entity string
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation on %s: %s", e.Entity, e.Reason)
}
