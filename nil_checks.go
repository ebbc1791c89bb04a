package guardkit

import "fmt"

// NotNil fails with an ErrNilArgument descriptor when value is nil. Typed
// nils stored in the interface count as nil; values of kinds that cannot
// represent absence always pass.
func NotNil(value any, name string) error {
	name = argName(name)
	return Check(func() bool { return isNil(value) },
		NewArgumentError(ErrNilArgument, name, fmt.Sprintf("[%s] cannot be nil.", name)))
}

// NotNilf is NotNil with a caller-supplied message.
func NotNilf(value any, name, format string, args ...any) error {
	return Check(func() bool { return isNil(value) },
		NewArgumentError(ErrNilArgument, name, fmt.Sprintf(format, args...)))
}

// NotNilErr returns err when value is nil.
func NotNilErr(value any, err error) error {
	return Check(func() bool { return isNil(value) }, err)
}
