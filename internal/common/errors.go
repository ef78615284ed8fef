// Package common defines shared constants and sentinel errors used across
// the myGaadi client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Entity-level errors.
	ErrNotFound = errors.New("not found")

	// Session lifecycle errors.
	ErrSessionActive = errors.New("a session is already active")

	// Persistence errors. Reads recover locally with a default value; writes
	// are logged and not retried.
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")

	// Validation errors.
	ErrNegativeAmount   = errors.New("amount must be non-negative")
	ErrUnknownCategory  = errors.New("unknown expense category")
	ErrUnknownDocType   = errors.New("unknown document type")
	ErrInvalidLeadTime  = errors.New("reminder lead time must be 7, 14 or 30 days")
	ErrInvalidSortOrder = errors.New("sort order must be newest or oldest")
	ErrInvalidToken     = errors.New("invalid session token")
)
