package guardkit

import (
	"fmt"
	"strings"
)

// NotBlank fails with an ErrInvalidArgument descriptor when value is empty
// or consists only of white-space.
func NotBlank(value, name string) error {
	name = argName(name)
	return Check(func() bool { return strings.TrimSpace(value) == "" },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf("[%s] cannot be empty or white-space.", name)))
}

// NotBlankf is NotBlank with a caller-supplied message.
func NotBlankf(value, name, format string, args ...any) error {
	return Check(func() bool { return strings.TrimSpace(value) == "" },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf(format, args...)))
}

// NotBlankErr returns err when value is empty or consists only of
// white-space.
func NotBlankErr(value string, err error) error {
	return Check(func() bool { return strings.TrimSpace(value) == "" }, err)
}

// NotEmpty fails with an ErrInvalidArgument descriptor when value is the
// empty string. White-space-only values pass; use NotBlank to reject those.
func NotEmpty(value, name string) error {
	name = argName(name)
	return Check(func() bool { return value == "" },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf("[%s] cannot be empty.", name)))
}

// NotEmptyf is NotEmpty with a caller-supplied message.
func NotEmptyf(value, name, format string, args ...any) error {
	return Check(func() bool { return value == "" },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf(format, args...)))
}

// NotEmptyErr returns err when value is the empty string.
func NotEmptyErr(value string, err error) error {
	return Check(func() bool { return value == "" }, err)
}
