package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/janedoe-dev/portfolio-api/errs"
)

// Responder owns JSON serialization of both payloads and faults. Handlers
// never touch the response writer's status codes for errors themselves;
// classification lives in errs and here.
type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal first so a serialization failure can still produce a 500.
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// errorBody is the failure envelope: the error kind plus either one message
// or an ordered list of per-field messages.
type errorBody struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// WriteError resolves any error to the API's failure envelope. Errors the
// controller already classified pass through; everything else lands in the
// safety net and is reported as an unclassified server fault.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	r.WriteJSON(w, apiErr.StatusCode, errorBody{
		Error:    apiErr.Kind(),
		Message:  apiErr.Message,
		Messages: apiErr.Messages,
	})
}

// wrapDatabaseError routes a persistence fault through the shared
// classifier so inline and safety-net handling agree.
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}

// decodeBody reads a JSON request body into dst, reporting any decode
// failure as a malformed-payload client error.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedBodyError()
	}
	return nil
}

// parsePathID extracts and parses a UUID path parameter. A missing or
// malformed value is the invalid-identifier fault, distinct from not-found.
func parsePathID(w http.ResponseWriter, r *http.Request, responder Responder, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		responder.WriteError(w, errs.NewInvalidIDError())
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		responder.WriteError(w, errs.NewInvalidIDError())
		return uuid.Nil, false
	}
	return id, true
}
