package server

import (
	"encoding/json"
	"net/http"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
)

type errorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidShape, apperr.ErrCodeInvalidFormat,
		apperr.ErrCodeInvalidColor, apperr.ErrCodeInvalidPath, apperr.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound, apperr.ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeSuggestionConsumed:
		return http.StatusConflict
	case apperr.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperr.ErrCodeNetwork:
		return http.StatusBadGateway
	case apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperr.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: apperr.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(path string) error {
	return apperr.New(apperr.ErrCodeNotFound, "no route for %s", path)
}
