// Package faults defines the error kinds surfaced by the rendering core.
//
// Every error produced by this module wraps one of four sentinel kinds so
// callers can branch with errors.Is without parsing messages: validation
// (bad declared values, checked before any rendering cost), resource
// (missing or corrupt fonts/images, raised lazily during render), draw
// (backend drawing failure) and io (encoding/filesystem failure).
package faults

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation")
	ErrResource   = errors.New("resource")
	ErrDraw       = errors.New("draw")
	ErrIO         = errors.New("io")
)

// Validation reports an invalid declared value (empty id, negative
// geometry, out-of-range style parameter, ...).
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Resource reports a font or image that could not be loaded.
func Resource(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrResource, fmt.Sprintf(format, args...))
}

// Draw reports a failure inside the drawing surface.
func Draw(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDraw, fmt.Sprintf(format, args...))
}

// IO reports an encoding or filesystem failure.
func IO(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIO, fmt.Sprintf(format, args...))
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsResource(err error) bool   { return errors.Is(err, ErrResource) }
func IsDraw(err error) bool       { return errors.Is(err, ErrDraw) }
func IsIO(err error) bool         { return errors.Is(err, ErrIO) }
