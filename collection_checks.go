package guardkit

import "fmt"

// NotEmptySlice fails with an ErrInvalidArgument descriptor when value has
// no elements. A nil slice counts as empty.
func NotEmptySlice[T any](value []T, name string) error {
	name = argName(name)
	return Check(func() bool { return len(value) == 0 },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf("[%s] cannot be empty.", name)))
}

// NotEmptySlicef is NotEmptySlice with a caller-supplied message.
func NotEmptySlicef[T any](value []T, name, format string, args ...any) error {
	return Check(func() bool { return len(value) == 0 },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf(format, args...)))
}

// NotEmptySliceErr returns err when value has no elements.
func NotEmptySliceErr[T any](value []T, err error) error {
	return Check(func() bool { return len(value) == 0 }, err)
}

// NotEmptyMap fails with an ErrInvalidArgument descriptor when value has no
// entries. A nil map counts as empty.
func NotEmptyMap[K comparable, V any](value map[K]V, name string) error {
	name = argName(name)
	return Check(func() bool { return len(value) == 0 },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf("[%s] cannot be empty.", name)))
}

// NotEmptyMapf is NotEmptyMap with a caller-supplied message.
func NotEmptyMapf[K comparable, V any](value map[K]V, name, format string, args ...any) error {
	return Check(func() bool { return len(value) == 0 },
		NewArgumentError(ErrInvalidArgument, name, fmt.Sprintf(format, args...)))
}

// NotEmptyMapErr returns err when value has no entries.
func NotEmptyMapErr[K comparable, V any](value map[K]V, err error) error {
	return Check(func() bool { return len(value) == 0 }, err)
}
