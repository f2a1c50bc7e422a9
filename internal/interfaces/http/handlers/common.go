// Package handlers adapts the analysis and catalog services to HTTP.  Every
// error body has the shape {"error": "<message>"}.
package handlers

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HerbsResponse wraps a list of herb names.
type HerbsResponse struct {
	Herbs []string `json:"herbs"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError maps err to a status through its AppError code.  Errors that
// carry no code are internal faults.
func writeError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)
	msg := err.Error()

	var ae *errors.AppError
	if errors.As(err, &ae) {
		msg = ae.Message
		if msg == "" {
			msg = errors.DefaultMessageForCode(code)
		}
		if ae.Detail != "" {
			msg += ": " + ae.Detail
		}
	}
	if errors.IsServerError(code) {
		logger.Error("request error",
			logging.String("request_id", chimw.GetReqID(r.Context())),
			logging.String("path", r.URL.Path),
			logging.String("code", code.String()),
			logging.Err(err))
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// NotFound answers unmatched routes with the JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, logging.NewNopLogger(), errors.NotFound("not found"))
}

// herbs never serialises as null.
func herbs(names []string) HerbsResponse {
	if names == nil {
		names = []string{}
	}
	return HerbsResponse{Herbs: names}
}

//Personal.AI order the ending
