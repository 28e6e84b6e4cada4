// Package iojson writes command output as JSON: indented documents for
// one-shot results and JSON lines for streams and event logs.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the document written to the error stream when a value cannot
// be encoded.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// MarshalError renders an Error document. When data itself cannot be
// encoded the document carries the encoder's message instead of data.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		bits, _ = json.MarshalIndent(Error{
			Message: msg,
			Data:    map[string]any{"json_error": err.Error()},
		}, "", "  ")
	}
	return string(bits)
}

// WriteWith writes obj to w as indented JSON. An encoding failure is
// reported on ew as an Error document; only write failures are returned.
func WriteWith(w, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, werr := fmt.Fprintln(ew, MarshalError("encode output", map[string]any{"json_error": err.Error()}))
		return werr
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line to w.
func WriteLine(w io.Writer, obj any) error {
	return json.NewEncoder(w).Encode(obj)
}
