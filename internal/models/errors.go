package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrPackageParse ErrorType = iota
	ErrInputLoad
	ErrSigning
	ErrFileOp
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrPackageParse:
		return "PackageParse"
	case ErrInputLoad:
		return "InputLoad"
	case ErrSigning:
		return "Signing"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// RingError represents an error raised while computing a retention decision
type RingError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *RingError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *RingError) Unwrap() error {
	return e.Err
}

// IsType reports whether err wraps a RingError of the given type
func IsType(err error, t ErrorType) bool {
	var re *RingError
	return errors.As(err, &re) && re.Type == t
}
