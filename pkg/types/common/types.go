// Package common holds the small shared scalar types used across the
// solvent-screening engine.
package common

import "github.com/google/uuid"

// ID is a string alias for UUID v4.
type ID string

// NewID returns a freshly generated UUID v4 wrapped as an ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// IsZero reports whether the ID is empty.
func (id ID) IsZero() bool { return id == "" }

// String returns the raw string form of the ID.
func (id ID) String() string { return string(id) }
