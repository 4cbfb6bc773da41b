package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidPath = errors.New("invalid document path")
	ErrConflict    = errors.New("document already exists")
)

// Document is a stored document. Fields hold JSON compatible values.
type Document struct {
	ID        string         `json:"id"`
	Path      string         `json:"path"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Field returns the named field or nil.
func (d Document) Field(name string) any {
	if d.Fields == nil {
		return nil
	}
	return d.Fields[name]
}

// String returns the named field when it is a string.
func (d Document) String(name string) string {
	s, _ := d.Field(name).(string)
	return s
}

// Strings returns a list field as strings, skipping other element types.
func (d Document) Strings(name string) []string {
	switch v := d.Field(name).(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// cloneFields copies fields through a JSON round trip so that every backend
// hands out the same value shapes (float64 numbers, []any lists, RFC 3339
// strings for times) and stored values never alias caller memory.
func cloneFields(fields map[string]any) (map[string]any, error) {
	if fields == nil {
		return map[string]any{}, nil
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}

	out := make(map[string]any, len(fields))
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return out, nil
}
