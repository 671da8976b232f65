package fetchlog

import "time"

// Operation statuses recorded in the fetch log.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// Fetch operation kinds.
const (
	TypeTeams       = "teams"
	TypeRoster      = "roster"
	TypeTeamStats   = "team_stats"
	TypePlayerStats = "player_stats"
	TypeSchedule    = "schedule"
	TypeAll         = "all"
)

// Entry is one append-only audit row describing an orchestrated fetch
// operation. Entries are never updated or deleted by the engine.
type Entry struct {
	ID              int64
	FetchType       string
	FetchDate       time.Time
	Status          string
	RecordsFetched  int
	ErrorMessage    string
	DurationSeconds float64
}
