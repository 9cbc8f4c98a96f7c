// Package httpjson holds the JSON request/response helpers shared by
// the feature handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// MaxBodySize caps JSON request bodies to keep oversized submissions
// from exhausting memory.
const MaxBodySize = 1 << 20 // 1 MB

// Decode reads the request body into dst.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}

// Write sends v as a JSON response with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error sends a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}
