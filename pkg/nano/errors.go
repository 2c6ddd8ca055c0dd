package nano

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Static errors for err113 compliance.
var (
	// ErrNoCredentials is returned when an authenticated operation is
	// attempted on a session constructed without credentials.
	ErrNoCredentials = errors.New("no credentials available")

	// ErrWrongCardinality is returned when a relation-link fetch is issued
	// with the wrong cardinality for the link's target.
	ErrWrongCardinality = errors.New("relation link cardinality mismatch")

	// ErrUnknownKind is returned when a wire name does not match any
	// declared object kind.
	ErrUnknownKind = errors.New("unknown object kind")

	// ErrKindMismatch is returned when a response object's "type" field
	// names a different kind than the caller expects.
	ErrKindMismatch = errors.New("object kind mismatch")

	// ErrConfigRequired is returned by constructors given a nil config.
	ErrConfigRequired = errors.New("config is required")

	// ErrUnexpectedKey is returned when a response document carries a
	// top-level key outside the envelope schema.
	ErrUnexpectedKey = errors.New("unexpected document key")

	// ErrMissingKey is returned when a response document lacks a required
	// top-level key.
	ErrMissingKey = errors.New("missing document key")
)

// APIError is a single structured error reported by the API inside a
// top-level "errors" array.
type APIError struct {
	Code   int64  `json:"code"`
	Status int64  `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s (status code %d)", e.Title, e.Code, e.Detail, e.Status)
}

// apiErrorWire tolerates the API's habit of stringifying the numeric
// code and status fields.
type apiErrorWire struct {
	Code   looseInt `json:"code"`
	Status looseInt `json:"status"`
	Title  string   `json:"title"`
	Detail string   `json:"detail"`
}

// looseInt decodes from either a JSON number or a stringified number.
type looseInt int64

func (n *looseInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing numeric field: %w", err)
	}

	*n = looseInt(val)

	return nil
}

// UnmarshalJSON decodes an API error entry, accepting numeric fields in
// either bare or stringified form.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var wire apiErrorWire

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return err
	}

	*e = APIError{
		Code:   int64(wire.Code),
		Status: int64(wire.Status),
		Title:  wire.Title,
		Detail: wire.Detail,
	}

	return nil
}

// SimpleAPIError is an error the API reports as a bare message under a
// top-level "error" key, or one of the two fixed status-code errors
// produced before any body inspection.
type SimpleAPIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *SimpleAPIError) Error() string {
	return fmt.Sprintf("api error: %s (status code %d)", e.Message, e.StatusCode)
}

// ErrorList is an error the API reports as a top-level "errors" array.
type ErrorList struct {
	Errors []APIError
}

// Error implements the error interface.
func (e *ErrorList) Error() string {
	if len(e.Errors) == 0 {
		return "unknown api error"
	}

	msgs := make([]string, len(e.Errors))
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Error()
	}

	return strings.Join(msgs, "; ")
}

// FirstError returns the first entry or nil.
func (e *ErrorList) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// DecodeError is a structural decoding failure: the body was well-formed
// JSON but did not match the expected schema. Path names the field at
// which matching failed, in dotted form.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decoding response: %v", e.Err)
	}

	return fmt.Sprintf("decoding response at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WrapDecode shapes a json decoding failure into a DecodeError, lifting
// the dotted field path out of encoding/json type errors. Errors that are
// already DecodeErrors pass through unchanged.
func WrapDecode(err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Path: typeErr.Field, Err: err}
	}

	return &DecodeError{Err: err}
}

// PrependDecodePath wraps err as a DecodeError rooted at segment. If err
// already carries a path, segment is prepended to it, so nested
// unmarshalers can report the full location as they unwind.
func PrependDecodePath(segment string, err error) error {
	if err == nil {
		return nil
	}

	wrapped := WrapDecode(err)

	var decodeErr *DecodeError
	if errors.As(wrapped, &decodeErr) {
		path := segment
		if decodeErr.Path != "" {
			path = segment + "." + decodeErr.Path
		}

		return &DecodeError{Path: path, Err: decodeErr.Err}
	}

	return wrapped
}

// IsNotFound checks if the error is the fixed not-found error.
func IsNotFound(err error) bool {
	apiErr := &SimpleAPIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &SimpleAPIError{}

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
