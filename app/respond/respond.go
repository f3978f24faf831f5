package respond

import (
	"encoding/json"
	"net/http"

	"tanzo-api/app/validate"
)

// Every handler outcome funnels through one of the writers below, so the
// mapping from outcome to HTTP status lives in this package and nowhere
// else. Some of the mappings are deliberately odd (validation failures
// answer 401, a missing record on mutate can answer 200 or 401 depending
// on the resource) because existing clients depend on them.

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Loaded answers 200 with the {"status":true,...} success envelope.
func Loaded(w http.ResponseWriter, message, key string, payload any) {
	JSON(w, http.StatusOK, envelope(message, key, payload))
}

// Created answers 201 with the success envelope.
func Created(w http.ResponseWriter, message, key string, payload any) {
	JSON(w, http.StatusCreated, envelope(message, key, payload))
}

// Listing answers 200 with {"status":true} plus arbitrary extra keys.
func Listing(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"status": true}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Issued wraps token material in the {"success":...} envelope used by
// register, login and profile.
func Issued(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, map[string]any{"success": payload})
}

// Invalid reports validation failures. 401, not 422.
func Invalid(w http.ResponseWriter, errs validate.Errors) {
	JSON(w, http.StatusUnauthorized, map[string]any{"error": errs})
}

func Unauthorised(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorised"})
}

// Missing answers 404 with a bare message body.
func Missing(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, map[string]any{"message": message})
}

// MissingUserEcho reports a mutate against an absent user: 401 with the
// full user listing echoed alongside the error.
func MissingUserEcho(w http.ResponseWriter, users any) {
	JSON(w, http.StatusUnauthorized, map[string]any{"error": "User does not exist", "users": users})
}

// MissingProjectEcho reports a mutate against an absent project: error
// payload but status 200, with the full project listing echoed.
func MissingProjectEcho(w http.ResponseWriter, projects any) {
	JSON(w, http.StatusOK, map[string]any{"error": "Project does not exist", "projects": projects})
}

func ServerError(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, map[string]any{"error": "server error"})
}

func envelope(message, key string, payload any) map[string]any {
	body := map[string]any{"status": true}
	if message != "" {
		body["message"] = message
	}
	if key != "" {
		body[key] = payload
	}
	return body
}
