package repository

import (
	"fmt"
	"time"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// formatTimestamp stores audit timestamps in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamps parses created_at/updated_at style columns in order.
func parseTimestamps(pairs ...timestampField) error {
	for _, f := range pairs {
		t, err := time.Parse(time.RFC3339, f.raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.column, err)
		}
		*f.dst = t
	}
	return nil
}

type timestampField struct {
	column string
	raw    string
	dst    *time.Time
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
