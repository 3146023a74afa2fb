// Package respond writes JSON bodies and the uniform error envelope.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"mindfullearner/internal/apperr"
)

// ErrorBody is the envelope of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps err onto its status and writes the envelope. Store and
// unclassified failures are logged and reported without detail.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindStore || appErr.Kind == apperr.KindUnknown {
		logger.Error("request failed", zap.Error(err))
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal_error", Message: "something went wrong"})
		return
	}

	JSON(w, appErr.Kind.Status(), ErrorBody{
		Error:   appErr.Reason,
		Field:   appErr.Field,
		Message: message(appErr),
	})
}

func message(e *apperr.Error) string {
	switch e.Kind {
	case apperr.KindValidation:
		if e.Field != "" {
			return "invalid value for " + e.Field
		}
		return "invalid request"
	case apperr.KindConflict:
		return "already exists"
	case apperr.KindAuth:
		return "user not authenticated"
	case apperr.KindNotFound:
		return "not found"
	default:
		return ""
	}
}
