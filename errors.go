package goconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goconv/i18n"
)

// Failure codes (exported consts for IDE completion and type safety by convention).
// Each code doubles as the i18n message key and as the detail attached by the
// detail-carrying helpers.
const (
	CodeInvalidType          = "invalid_type"
	CodeNotString            = "not_string"
	CodeNotNumber            = "not_number"
	CodeNotBoolean           = "not_boolean"
	CodeInvalidDate          = "invalid_date"
	CodeNotDate              = "not_date"
	CodeInvalidUUID          = "invalid_uuid"
	CodeNotLiteral           = "not_literal"
	CodeInvalidEnum          = "invalid_enum"
	CodeCannotMap            = "cannot_map"
	CodeNoMatch              = "no_match"
	CodeNotArray             = "not_array"
	CodeNotRecord            = "not_record"
	CodeNotObject            = "not_object"
	CodeNonObject            = "non_object"
	CodeCannotConvert        = "cannot_convert"
	CodeNotA                 = "not_a"
	CodeFieldNotFound        = "field_not_found"
	CodeUnexpectedProperty   = "unexpected_property"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeNotDiscriminated     = "not_discriminated"
	CodeNegativeIndex        = "negative_index"
	CodeIndexOutOfRange      = "index_out_of_range"
	CodeInvertedRange        = "inverted_range"
	CodeConstraint           = "constraint"
	CodeNotFound             = "not_found"
	CodeTooMany              = "too_many"
	CodeAtLeastOne           = "at_least_one"
	CodeNoInitializer        = "no_initializer"
	CodeParseError           = "parse_error"
	CodeDuplicateKey         = "duplicate_key"
)

// ErrNoValidatorFunction is raised (as a panic) when a Validator is built
// without a validation function.
var ErrNoValidatorFunction = errors.New("goconv: no validator function supplied")

// FailureError carries the message of a failed Result across the error channel.
type FailureError struct {
	Message string
	// Detail is the structured detail of a DetailedResult, nil otherwise.
	Detail any
}

func (e *FailureError) Error() string { return e.Message }

// BrandConflictError reports an attempt to brand an already branded
// converter or validator. It is a programmer error and is raised as a panic.
type BrandConflictError struct {
	Existing  string
	Requested string
}

func (e *BrandConflictError) Error() string {
	return fmt.Sprintf("cannot replace existing brand %q with %q", e.Existing, e.Requested)
}

// AccessError is raised when the value of a failure or the message of a
// success is read.
type AccessError struct {
	Op      string
	Message string
}

func (e *AccessError) Error() string {
	if e.Message == "" {
		return "goconv: " + e.Op
	}
	return "goconv: " + e.Op + ": " + e.Message
}

// Text renders the translated message for code, substituting data into the
// message template.
func Text(code string, data map[string]string) string { return i18n.T(code, data) }

// FailCode returns a failure whose message is the translated text for code.
func FailCode[T any](code string, data map[string]string) Result[T] {
	return Fail[T](Text(code, data))
}

// FailCodeDetailed is FailCode with the code attached as failure detail.
func FailCodeDetailed[T any](code string, data map[string]string) DetailedResult[T, string] {
	return FailWithDetail[T](Text(code, data), code)
}

// JoinMessages joins failure messages the way every aggregating combinator
// reports them.
func JoinMessages(messages []string) string { return strings.Join(messages, "\n") }

// panicMessage extracts a failure message from a recovered panic value.
func panicMessage(p any) string {
	switch v := p.(type) {
	case error:
		return v.Error()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
