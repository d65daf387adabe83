package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// maxBodyBytes bounds request bodies; externalAuditData can be large
const maxBodyBytes = 8 << 20

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
}

func writeJSON(w http.ResponseWriter, logger interfaces.Logger, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// sendError sends an error response
func sendError(w http.ResponseWriter, logger interfaces.Logger, message string, statusCode int) {
	writeJSON(w, logger, statusCode, models.ErrorResponse{
		Error:      message,
		StatusCode: statusCode,
		Timestamp:  time.Now(),
	})
}

// NotFound answers unknown routes with a JSON error
func NotFound(logger interfaces.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, logger, "Not found", http.StatusNotFound)
	})
}

// MethodNotAllowed answers known routes hit with the wrong method
func MethodNotAllowed(logger interfaces.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, logger, "Method not allowed", http.StatusMethodNotAllowed)
	})
}
