package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Helper functions for common HTTP responses

// apiError is the error envelope used across the youtube/v3 surface,
// mirroring the Google API error format.
type apiError struct {
	Error apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// writeAPIError writes a Google-shaped error response.
func writeAPIError(w http.ResponseWriter, code int, message, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(apiError{Error: apiErrorBody{Code: code, Message: message, Status: status}})
}

// WriteUnauthenticated writes the 401 response used for unauthenticated
// API calls.
func WriteUnauthenticated(w http.ResponseWriter) {
	writeAPIError(w, http.StatusUnauthorized,
		"Request is missing required authentication credential. Expected OAuth 2 access token or API key.",
		"UNAUTHENTICATED")
}

// writeJSON writes a JSON response with the given data.
func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// writeCreated writes a 201 Created response with a confirmation body.
func writeCreated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": message})
}

// writeControlError writes an error from the control surface.
func writeControlError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

// splitParts splits a comma-separated part parameter, dropping empties.
func splitParts(raw string) []string {
	if raw == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
