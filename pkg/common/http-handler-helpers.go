package common

import (
	"errors"
	"net/http"

	"github.com/matst80/gilded-rose/pkg/common/jsoncompat"
	"go.uber.org/zap"
)

// HttpError carries the status code a handler wants to answer with.
type HttpError struct {
	Status  int
	Message string
}

func (e *HttpError) Error() string { return e.Message }

func NewHttpError(status int, message string) *HttpError {
	return &HttpError{Status: status, Message: message}
}

// Cors decides which origins get CORS headers.
type Cors interface {
	AllowsOrigin(origin string) bool
}

// JsonHandler answers preflight requests, runs fn and writes its result as
// JSON. Errors become {"error": message}; an *HttpError picks the status,
// anything else is a 500.
func JsonHandler(logger *zap.Logger, cors Cors, fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		corsHeaders(w, r, cors)
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}

		result, err := fn(r)
		if err != nil {
			status := http.StatusInternalServerError
			message := "internal server error"
			var httpErr *HttpError
			if errors.As(err, &httpErr) {
				status = httpErr.Status
				message = httpErr.Message
			}
			logger.Warn("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Error(err))
			RespondError(w, message, status)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusOK)
		if err := jsoncompat.Encode(w, result); err != nil {
			logger.Error("unable to encode response", zap.Error(err))
		}
	}
}

// RespondError keeps JSON error formatting consistent across endpoints.
func RespondError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = jsoncompat.Encode(w, map[string]string{"error": message})
}

func corsHeaders(w http.ResponseWriter, r *http.Request, cors Cors) {
	origin := r.Header.Get("Origin")
	if origin == "" || cors == nil || !cors.AllowsOrigin(origin) {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "*")
	w.Header().Add("Vary", "Origin")
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Header.Get("Origin") != "" {
		w.Header().Set("Access-Control-Max-Age", "86400")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusNoContent)
}
