package dbx

import "strings"

// IsMissingTable reports whether err is SQLite's "no such table" failure.
// Reads against a collection that predates the current schema version must
// degrade to an empty result instead of surfacing this error.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no such table")
}
