// Package common defines sentinel errors shared by the UOCFlix packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Table-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorDuplicated = errors.New("already exists")

	// Input rejected by a constructor or a normalizer.
	ErrorInvalidInput = errors.New("invalid input")

	// Favorites stack errors.
	ErrorEmptyStack = errors.New("empty stack")
)
