package mapper

import (
	"strings"
	"time"
)

// Shared coercion helpers for all resource mappers. The backend sends
// ISO 8601 timestamps and semicolon-joined author strings; everything
// downstream works with time.Time and []string.

// parseTime coerces a timestamp string. An unparsable value yields the
// zero time rather than an error; the normalizer does no validation
// beyond coercion.
func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t := parseTime(*value)
	return &t
}

// splitAuthors turns "A;B" into ["A", "B"]. A nil or empty field yields
// an empty, non-nil list.
func splitAuthors(value *string) []string {
	if value == nil || *value == "" {
		return []string{}
	}
	parts := strings.Split(*value, ";")
	authors := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			authors = append(authors, trimmed)
		}
	}
	return authors
}
