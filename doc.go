// Package goconv turns values of unknown shape (for example decoded JSON)
// into well-typed values or structured failures, using small composable
// pieces instead of hand-written type checks.
//
// The package provides:
//
//   - Result and DetailedResult: the success/failure container used everywhere,
//     with mapping, aggregation (MapResults, MapSuccess, ...) and panic capture.
//   - Converter: a generic "unknown -> T, given an optional context C" function
//     wrapper with chainable combinators (Optional, Map, WithConstraint, ...).
//   - Validator: the in-place counterpart of Converter. It accepts or rejects a
//     value and, on success, returns the very value it was given.
//   - ExtendedArray and RangeOf helper types.
//   - JSON input through a pluggable JSONDriver (go-json by default), and
//     StrictJSONBytes, which also rejects repeated object keys.
//
// Design policy:
//   - Keep the engine in the root package; put the standard converters under
//     converters/, validators under validators/, readers under source/ and
//     HTTP wiring under middleware/.
//   - Data errors travel as Result failures. Panics are reserved for
//     programmer errors (re-branding, a validator without a function).
//   - Converters and validators are immutable and safe for concurrent use.
//
// Typical usage:
//
//	user := converters.Object(converters.Fields{
//	    "id":   converters.String(),
//	    "age":  converters.Number(),
//	}, converters.ObjectOptions{OptionalFields: []string{"age"}})
//	r := goconv.ConvertJSON(user.Converter, data)
//	if r.IsFailure() {
//	    log.Println(r.Message())
//	}
package goconv
