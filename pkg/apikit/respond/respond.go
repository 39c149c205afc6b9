// Package respond writes the JSON envelopes used by generated API
// controllers.
//
// Successful payloads are wrapped as {"data": ...}. Errors are written as
// {"error": ..., "code": ...} with the same code as the HTTP status.
package respond

import (
	"encoding/json"
	"net/http"
)

// Transformer maps a model to its public JSON representation.
type Transformer[T any] interface {
	Transform(T) map[string]any
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// ErrorResponse writes an error envelope. message is usually a string but
// may be any JSON value, such as a field to messages map.
func ErrorResponse(w http.ResponseWriter, message any, code int) error {
	return JSON(w, code, map[string]any{"error": message, "code": code})
}

// ShowAll writes items through t. An empty collection is written as an
// empty list.
func ShowAll[T any](w http.ResponseWriter, items []T, t Transformer[T], code int) error {
	data := make([]map[string]any, 0, len(items))
	for _, item := range items {
		data = append(data, t.Transform(item))
	}
	return JSON(w, code, map[string]any{"data": data})
}

// ShowOne writes a single item through t.
func ShowOne[T any](w http.ResponseWriter, item T, t Transformer[T], code int) error {
	return JSON(w, code, map[string]any{"data": t.Transform(item)})
}

// ShowMessage writes a plain message. The body code is always 200.
func ShowMessage(w http.ResponseWriter, message any, code int) error {
	return JSON(w, code, map[string]any{"data": message, "code": http.StatusOK})
}
