// Package guardkit provides small, composable precondition checks for
// function arguments. Each check validates a single value against a single
// rule and fails fast: the first violated rule produces an error for the
// caller to return, replacing hand-written nil and range guards with named,
// reusable checks.
//
// # Architecture
//
// One primitive carries the whole package: Check evaluates a zero-argument
// predicate exactly once and returns the supplied failure descriptor when
// the predicate reports that the precondition is violated. Every named
// check (NotNil, NotBlank, NotEmpty, NotLessThan, NotGreaterThan, ...) is a
// thin adapter that builds the predicate and a default descriptor, then
// delegates to Check. There is no hidden state, no accumulation of
// violations and no suppression mode; each call either returns nil or the
// descriptor.
//
// Each named check comes in three forms:
//
//   - NotNil(value, name)               – synthesizes the default message
//   - NotNilf(value, name, format, ...) – caller-supplied message
//   - NotNilErr(value, err)             – caller-supplied failure descriptor
//
// # Usage
//
//	func (s *Service) Rename(user *User, title string, weight int) error {
//		if err := guardkit.NotNil(user, "user"); err != nil {
//			return err
//		}
//		if err := guardkit.NotBlank(title, "title"); err != nil {
//			return err
//		}
//		if err := guardkit.NotLessThan(weight, 1, "weight"); err != nil {
//			return err
//		}
//		// ...
//	}
//
// For wiring-time preconditions where an error return has no audience, Must
// converts a failed check into a panic:
//
//	guardkit.Must(guardkit.NotNil(pool, "pool"))
//
// # Error Handling
//
// Synthesized descriptors are ArgumentError values carrying a
// classification, the offending parameter name and a message. The
// classification is one of the package sentinels (ErrNilArgument,
// ErrInvalidArgument, ErrOutOfRange, ErrInvalidCheck) and is matched with
// errors.Is; the descriptor itself is extracted with errors.As. The package
// never wraps, retries, logs or suppresses a failure; recovery belongs to
// the caller. The pkg/httpguard subpackage maps failed checks onto HTTP
// responses for callers at a web boundary.
//
// # Thread Safety
//
// All checks are pure functions over their arguments. There is no shared
// state, so concurrent use requires no coordination.
package guardkit
