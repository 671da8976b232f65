package usecase

import (
	"context"
	"time"
)

// StatsProvider is the remote NHL data source as seen by the orchestrator.
// Implementations validate required fields at the boundary and hand malformed
// records back separately so callers can fold them into per-record failure
// counts.
type StatsProvider interface {
	FetchTeams(ctx context.Context) ([]TeamRecord, []MalformedRecordError, error)
	FetchRoster(ctx context.Context, teamAbbrev, season string) ([]PlayerRecord, []MalformedRecordError, error)
	FetchTeamStats(ctx context.Context, teamAbbrev, season string) (TeamStatRecord, error)
	FetchPlayerLanding(ctx context.Context, playerNHLID int64) (PlayerDetailRecord, error)
	FetchSchedule(ctx context.Context, date time.Time) ([]GameRecord, []MalformedRecordError, error)
	CurrentSeason(ctx context.Context) (string, error)
}

type TeamRecord struct {
	NHLID        int64  `validate:"gt=0"`
	Name         string `validate:"required"`
	Abbreviation string `validate:"required"`
	City         string
	Conference   string
	Division     string
}

type PlayerRecord struct {
	NHLID            int64  `validate:"gt=0"`
	FirstName        string `validate:"required"`
	LastName         string `validate:"required"`
	JerseyNumber     *int
	Position         string
	ShootsCatches    string
	HeightInches     *int
	WeightPounds     *int
	BirthDate        *time.Time
	BirthCity        string
	BirthCountry     string
	Nationality      string
	TeamAbbreviation string
}

// PlayerDetailRecord is the player landing payload: biographical fields plus
// per-season stat totals.
type PlayerDetailRecord struct {
	PlayerRecord
	SeasonTotals []PlayerSeasonStatRecord
}

type PlayerSeasonStatRecord struct {
	Season           string `validate:"required"`
	TeamAbbreviation string

	GamesPlayed       int
	Goals             int
	Assists           int
	Points            int
	PlusMinus         int
	PenaltyMinutes    int
	PowerPlayGoals    int
	PowerPlayPoints   int
	ShortHandedGoals  int
	ShortHandedPoints int
	GameWinningGoals  int
	OvertimeGoals     int
	Shots             int
	ShootingPct       *float64
	TimeOnIcePerGame  *float64
	FaceoffPct        *float64

	Wins                int
	Losses              int
	OvertimeLosses      int
	Saves               int
	ShotsAgainst        int
	GoalsAgainst        int
	SavePct             *float64
	GoalsAgainstAverage *float64
	Shutouts            int
}

type TeamStatRecord struct {
	TeamAbbreviation string `validate:"required"`

	GamesPlayed         int
	Wins                int
	Losses              int
	OvertimeLosses      int
	Points              int
	PointPct            *float64
	GoalsFor            int
	GoalsAgainst        int
	GoalDifferential    int
	ShotsForPerGame     *float64
	ShotsAgainstPerGame *float64
	PowerPlayPct        *float64
	PenaltyKillPct      *float64
	FaceoffWinPct       *float64
}

type GameRecord struct {
	NHLID          int64  `validate:"gt=0"`
	Season         string `validate:"required"`
	GameType       int
	GameDate       time.Time
	HomeTeamAbbrev string
	AwayTeamAbbrev string
	HomeScore      *int
	AwayScore      *int
	GameState      string
	Venue          string
}
