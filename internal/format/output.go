package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - edn
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return &UnknownFormatError{Format: format}
	}
}

// UnknownFormatError is returned for a format other than json or edn.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string { return fmt.Sprintf("unknown format: %s", e.Format) }

// Valid reports whether Write supports format.
func Valid(format string) bool {
	switch format {
	case "", "json", "edn":
		return true
	}
	return false
}

// WriteJSON writes strict JSON output, one document per line unless pretty.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
