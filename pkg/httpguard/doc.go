// Package httpguard translates guardkit check failures into HTTP responses
// so that request handlers can guard their inputs and return the resulting
// error directly.
//
// The package provides three building blocks:
//
//   - StatusCode – maps a guard error to an HTTP status code. Argument
//     failures (nil, invalid, out of range) become 400 Bad Request, check
//     misuse becomes 500 Internal Server Error, and anything unrecognized
//     defaults to 500.
//
//   - Respond – writes a JSON error body describing the failed check,
//     including a stable machine-readable code and the offending parameter
//     name when one is known.
//
//   - Wrap – adapts an error-returning handler into a standard http.Handler.
//     Successful handlers write their own response; failed ones are logged
//     via slog and answered through Respond.
//
// # Architecture
//
// Classification is driven entirely by errors.Is against the guardkit
// sentinel errors and errors.As against guardkit.ArgumentError, so wrapped
// errors classify the same way as bare ones. Client errors (4xx) expose the
// check's message to the caller; server errors (5xx) are answered with a
// generic message and the original error is only visible in logs.
//
// Wrap uses functional options. By default logs are discarded; supply
// WithLogger to capture them. Client errors are logged at warn level,
// server errors at error level.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/go-chi/chi/v5"
//
//		"github.com/dmitrymomot/guardkit"
//		"github.com/dmitrymomot/guardkit/pkg/httpguard"
//	)
//
//	func main() {
//		r := chi.NewRouter()
//		r.Method(http.MethodPost, "/orders", httpguard.Wrap(createOrder))
//		http.ListenAndServe(":8080", r)
//	}
//
//	func createOrder(w http.ResponseWriter, r *http.Request) error {
//		customer := r.FormValue("customer")
//		if err := guardkit.NotBlank(customer, "customer"); err != nil {
//			return err
//		}
//		// ... handle the order ...
//		w.WriteHeader(http.StatusCreated)
//		return nil
//	}
//
// Callers that need a custom client-facing message keep the 400 mapping by
// supplying a guardkit.ArgumentError as the descriptor:
//
//	err := guardkit.NotBlankErr(email,
//		guardkit.NewArgumentError(guardkit.ErrInvalidArgument, "email", "email is required"))
//
// # Errors
//
// The package never invents errors of its own. It only classifies errors
// produced by guardkit checks or supplied by callers; plain errors with no
// guardkit sentinel in their chain are treated as internal server errors.
package httpguard
