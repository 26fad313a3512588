package format

import (
        "encoding/json"
        "fmt"
        "io"
        "strings"
)

// Write renders a command result as --format selects: "json" (also the
// empty value) or "text". pretty only affects json.
func Write(w io.Writer, v any, format string, pretty bool) error {
        switch strings.ToLower(strings.TrimSpace(format)) {
        case "", "json":
                return WriteJSON(w, v, pretty)
        case "text":
                return WriteText(w, v)
        default:
                return fmt.Errorf("unknown format: %s (expected json|text)", format)
        }
}

// WriteJSON writes v as one JSON document per call, newline terminated, so
// scripts can read option listings line by line.
func WriteJSON(w io.Writer, v any, pretty bool) error {
        enc := json.NewEncoder(w)
        enc.SetEscapeHTML(false)
        if pretty {
                enc.SetIndent("", "  ")
        }
        return enc.Encode(v)
}
