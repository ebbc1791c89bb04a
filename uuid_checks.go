package guardkit

import (
	"fmt"

	"github.com/google/uuid"
)

// NotNilUUID fails with an ErrNilArgument descriptor when value is the nil
// UUID.
func NotNilUUID(value uuid.UUID, name string) error {
	name = argName(name)
	return Check(func() bool { return value == uuid.Nil },
		NewArgumentError(ErrNilArgument, name, fmt.Sprintf("[%s] cannot be a nil UUID.", name)))
}

// NotNilUUIDf is NotNilUUID with a caller-supplied message.
func NotNilUUIDf(value uuid.UUID, name, format string, args ...any) error {
	return Check(func() bool { return value == uuid.Nil },
		NewArgumentError(ErrNilArgument, name, fmt.Sprintf(format, args...)))
}

// NotNilUUIDErr returns err when value is the nil UUID.
func NotNilUUIDErr(value uuid.UUID, err error) error {
	return Check(func() bool { return value == uuid.Nil }, err)
}
