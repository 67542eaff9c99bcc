package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
)

// LoginRedirect is suggested to clients on Unauthorized responses
const LoginRedirect = "/login"

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// RespondJSON writes payload with status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondOK writes a success envelope
func RespondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// StatusOf maps an error kind to an HTTP status
func StatusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindInvalidValue:
		return http.StatusBadRequest
	case apperror.KindUnauthorized, apperror.KindInvalidCredentials:
		return http.StatusUnauthorized
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the failure envelope for err. Internal errors are
// logged here and reported with a generic message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	resp := Response{
		Success: false,
		Error:   apperror.MessageOf(err),
	}

	switch apperror.KindOf(err) {
	case apperror.KindUnauthorized:
		resp.Redirect = LoginRedirect
	case apperror.KindInternal:
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
	}

	RespondJSON(w, status, resp)
}
