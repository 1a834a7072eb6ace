package ecs

import "errors"

var (
	// ErrDuplicateEntity is returned when inserting an identifier whose index is already present.
	ErrDuplicateEntity = errors.New("entity already present")
	// ErrNotFound is returned when an identifier's index is not present.
	ErrNotFound = errors.New("entity not found")
	// ErrNullEntity is returned when the reserved null index is used as a concrete entity.
	ErrNullEntity = errors.New("null entity cannot be stored")
	// ErrStaleEntity is returned when an identifier's version no longer matches its slot.
	ErrStaleEntity = errors.New("stale entity version")
	// ErrExhausted is returned when every usable index of a width is live.
	ErrExhausted = errors.New("entity index space exhausted")
)
