package app

import "strings"

// The player_stats upsert is the widest statement in the repo; its column
// list fits well inside this cap, so a truncated span attribute means
// something unexpected ran.
const tracedQueryLimit = 512

// formatDBQueryForTrace collapses whitespace and caps the statement before it
// lands in a span attribute.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= tracedQueryLimit {
		return normalized
	}

	return normalized[:tracedQueryLimit] + "..."
}
