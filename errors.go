package guardkit

import (
	"errors"
	"strings"
)

// Classification errors carried by every descriptor the named checks
// synthesize. Callers branch on them with errors.Is instead of inspecting
// message text.
var (
	// ErrNilArgument classifies failures raised by the nil checks.
	ErrNilArgument = errors.New("argument is nil")

	// ErrInvalidArgument classifies failures raised by the text and
	// collection checks.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange classifies failures raised by the bound checks.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidCheck classifies misuse of the checker itself, such as
	// handing Check a nil predicate or a nil failure descriptor.
	ErrInvalidCheck = errors.New("invalid check")
)

// fallbackName substitutes for an empty or blank parameter name in
// synthesized descriptors.
const fallbackName = "parameter"

// ArgumentError is the failure descriptor synthesized by the named checks.
// It carries the violated classification, the offending parameter name and a
// human-readable message. It is a plain value; extract it with errors.As and
// match its classification with errors.Is.
type ArgumentError struct {
	Kind    error
	Name    string
	Message string
}

// NewArgumentError builds a descriptor of the given kind. A blank name is
// replaced with a generic placeholder, matching the named checks.
func NewArgumentError(kind error, name, message string) ArgumentError {
	return ArgumentError{Kind: kind, Name: argName(name), Message: message}
}

// Error implements the error interface.
func (e ArgumentError) Error() string {
	return e.Message
}

// Unwrap exposes the classification for errors.Is.
func (e ArgumentError) Unwrap() error {
	return e.Kind
}

// argName falls back to the placeholder when the caller did not supply a
// usable parameter name.
func argName(name string) string {
	if strings.TrimSpace(name) == "" {
		return fallbackName
	}
	return name
}
