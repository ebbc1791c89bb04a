package guardkit

import "reflect"

// Check is the primitive every named check delegates to. It evaluates
// predicate exactly once and returns err when the predicate reports true,
// meaning the guarded precondition is violated. A false predicate returns
// nil and the call has no other observable effect.
//
// A nil predicate or a nil err is misuse of the checker itself: Check
// returns an ErrInvalidCheck descriptor naming the offending parameter and
// does not evaluate the predicate.
func Check(predicate func() bool, err error) error {
	if predicate == nil {
		return NewArgumentError(ErrInvalidCheck, "predicate", "[predicate] cannot be nil.")
	}
	if err == nil {
		return NewArgumentError(ErrInvalidCheck, "err", "[err] cannot be nil.")
	}
	if predicate() {
		return err
	}
	return nil
}

// isNil reports whether value is nil, including a typed nil carried in the
// interface for the kinds that can hold one.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
