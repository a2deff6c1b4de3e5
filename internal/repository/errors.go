package repository

import "errors"

// ErrRecordNotFound is returned by lookups for unknown ids. The service layer
// translates it into its own sentinel so a persistence-backed repository can
// swap in behind the same contract.
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicateID is returned when an insert would violate id uniqueness.
var ErrDuplicateID = errors.New("duplicate id")
