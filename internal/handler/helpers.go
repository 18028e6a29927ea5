package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	internal_errors "github.com/galleryd-dev/galleryd/internal/errors"
	"github.com/galleryd-dev/galleryd/internal/logger"
	"github.com/galleryd-dev/galleryd/internal/validation"
	"github.com/go-playground/validator/v10"
)

// errorResponse is the envelope the presentation layer expects for every
// failed operation.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeErrorJSON(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: message})
}

// writeErrorAndStatusCode maps domain errors to HTTP responses. Validation
// and not-found errors carry user-displayable messages; anything unexpected
// is logged and surfaced as a generic 500 so internals never leak.
func writeErrorAndStatusCode(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrFileTooLarge):
		writeErrorJSON(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, validation.ErrUnsupportedMediaType):
		writeErrorJSON(w, err.Error(), http.StatusUnsupportedMediaType)
	case errors.Is(err, validation.ErrEmptyPost):
		writeErrorJSON(w, err.Error(), http.StatusBadRequest)
	default:
		var statusErr *internal_errors.ErrorWithStatusCode
		if errors.As(err, &statusErr) {
			writeErrorJSON(w, statusErr.Message, statusErr.StatusCode)
			return
		}
		logger.Log.Error("internal error", "error", err)
		writeErrorJSON(w, "Internal server error", http.StatusInternalServerError)
	}
}

func loadAndValidateRequestBody(r *http.Request, body any) error {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}
