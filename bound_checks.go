package guardkit

import "fmt"

// Ordered constrains the bound checks to types with a natural total order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// NotLessThan fails with an ErrOutOfRange descriptor when value orders
// strictly before threshold. Equal values pass.
func NotLessThan[T Ordered](value, threshold T, name string) error {
	name = argName(name)
	return Check(func() bool { return value < threshold },
		NewArgumentError(ErrOutOfRange, name, fmt.Sprintf("[%s] is out of range.", name)))
}

// NotLessThanf is NotLessThan with a caller-supplied message.
func NotLessThanf[T Ordered](value, threshold T, name, format string, args ...any) error {
	return Check(func() bool { return value < threshold },
		NewArgumentError(ErrOutOfRange, name, fmt.Sprintf(format, args...)))
}

// NotLessThanErr returns err when value orders strictly before threshold.
func NotLessThanErr[T Ordered](value, threshold T, err error) error {
	return Check(func() bool { return value < threshold }, err)
}

// NotGreaterThan fails with an ErrOutOfRange descriptor when value orders
// strictly after threshold. Equal values pass.
func NotGreaterThan[T Ordered](value, threshold T, name string) error {
	name = argName(name)
	return Check(func() bool { return value > threshold },
		NewArgumentError(ErrOutOfRange, name, fmt.Sprintf("[%s] is out of range.", name)))
}

// NotGreaterThanf is NotGreaterThan with a caller-supplied message.
func NotGreaterThanf[T Ordered](value, threshold T, name, format string, args ...any) error {
	return Check(func() bool { return value > threshold },
		NewArgumentError(ErrOutOfRange, name, fmt.Sprintf(format, args...)))
}

// NotGreaterThanErr returns err when value orders strictly after threshold.
func NotGreaterThanErr[T Ordered](value, threshold T, err error) error {
	return Check(func() bool { return value > threshold }, err)
}
