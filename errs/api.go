package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrValidation    = errors.New("Validation Error")
	ErrDuplicate     = errors.New("already exists")
	ErrInvalidID     = errors.New("Invalid ID")
	ErrNotFound      = errors.New("Not found")
	ErrUnauthorized  = errors.New("Unauthorized")
	ErrInternal      = errors.New("Internal server error")
	ErrMalformedBody = errors.New("malformed request body")
)

// ApiErr is the single error currency of the API. Every fault a handler or
// repository raises is either an *ApiErr already or gets classified into one
// by the responder's safety net.
type ApiErr struct {
	StatusCode int
	err        error
	kind       string   // client-facing label when it differs from the sentinel text
	Message    string   // single human-readable message
	Messages   []string // ordered per-field messages (validation faults)
	Cause      error    // the underlying cause, never serialized to clients
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr
// as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Message)
	}
	return e.err.Error()
}

// Kind returns the client-facing error label, e.g. "Validation Error".
func (e *ApiErr) Kind() string {
	if e.kind != "" {
		return e.kind
	}
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

func NewValidationError(messages ...string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Messages:   messages,
	}
}

// NewDuplicateError labels the response with a resource-specific kind, e.g.
// "Duplicate email", while still matching errs.ErrDuplicate via errors.Is.
func NewDuplicateError(kind, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDuplicate,
		kind:       kind,
		Message:    message,
	}
}

func NewInvalidIDError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidID,
		Message:    "The provided ID is invalid",
	}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrNotFound,
		Message:    message,
	}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
		Message:    message,
	}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInternal,
		Message:    message,
	}
}

// NewMalformedBodyError reports an undecodable request body.
func NewMalformedBodyError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedBody,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
