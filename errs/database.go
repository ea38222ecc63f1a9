package errs

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewDatabaseError classifies a fault raised by the persistence layer into
// the API taxonomy. Controllers that already classified inline never reach
// this; it is the safety net for everything else, and the two paths must
// agree on the mapping.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause == nil {
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrDatabaseQuery,
			kind:       "Internal server error",
			Message:    "Failed to " + operation + " " + entity,
		}
	}

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        ErrNotFound,
			Message:    entity + " not found",
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrDuplicatedKey) || strings.Contains(cause.Error(), "duplicate key") || strings.Contains(cause.Error(), "UNIQUE constraint"):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        ErrDuplicate,
			kind:       "Duplicate Field Value",
			Message:    "A record with this value already exists",
			Cause:      cause,
		}
	case strings.Contains(cause.Error(), "connection"):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Message:    "Unable to connect to database",
			Cause:      cause,
		}
	}

	// Unclassified fault: surface the underlying message per the API contract.
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		kind:       "Internal server error",
		Message:    cause.Error(),
		Cause:      cause,
	}
}
