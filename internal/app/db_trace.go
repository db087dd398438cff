package app

import (
	"regexp"
	"strings"
)

// Queries recorded on DB spans are collapsed to one line and capped so a
// bulk insert cannot blow up span payloads.
const tracedQueryLimit = 512

var sqlWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := sqlWhitespace.ReplaceAllString(query, " ")
	if len(flat) <= tracedQueryLimit {
		return flat
	}

	return flat[:tracedQueryLimit] + "..."
}
