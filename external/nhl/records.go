package nhl

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/pucktrack/pucktrack/internal/usecase"
)

// localizedString accepts the two shapes the NHL API uses for names: a plain
// string or {"default": "...", "fr": "..."}.
type localizedString struct {
	Value string
}

func (s *localizedString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		s.Value = ""
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		return sonic.UnmarshalString(trimmed, &s.Value)
	}

	var obj struct {
		Default string `json:"default"`
	}
	if err := sonic.UnmarshalString(trimmed, &obj); err != nil {
		return err
	}
	s.Value = obj.Default
	return nil
}

type standingsEnvelope struct {
	Standings []standingRow `json:"standings"`
}

type standingRow struct {
	SeasonID         int64           `json:"seasonId"`
	TeamAbbrev       localizedString `json:"teamAbbrev"`
	TeamName         localizedString `json:"teamName"`
	TeamCommonName   localizedString `json:"teamCommonName"`
	PlaceName        localizedString `json:"placeName"`
	TeamLogo         string          `json:"teamLogo"`
	ConferenceName   string          `json:"conferenceName"`
	DivisionName     string          `json:"divisionName"`
	GamesPlayed      int             `json:"gamesPlayed"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	OtLosses         int             `json:"otLosses"`
	Points           int             `json:"points"`
	PointPctg        *float64        `json:"pointPctg"`
	GoalFor          int             `json:"goalFor"`
	GoalAgainst      int             `json:"goalAgainst"`
	GoalDifferential int             `json:"goalDifferential"`
}

type rosterEnvelope struct {
	Forwards   []rosterPlayer `json:"forwards"`
	Defensemen []rosterPlayer `json:"defensemen"`
	Goalies    []rosterPlayer `json:"goalies"`
}

type rosterPlayer struct {
	ID             int64           `json:"id"`
	FirstName      localizedString `json:"firstName"`
	LastName       localizedString `json:"lastName"`
	SweaterNumber  *int            `json:"sweaterNumber"`
	PositionCode   string          `json:"positionCode"`
	ShootsCatches  string          `json:"shootsCatches"`
	HeightInInches *int            `json:"heightInInches"`
	WeightInPounds *int            `json:"weightInPounds"`
	BirthDate      string          `json:"birthDate"`
	BirthCity      localizedString `json:"birthCity"`
	BirthCountry   string          `json:"birthCountry"`
}

type playerLandingEnvelope struct {
	PlayerID          int64           `json:"playerId"`
	FirstName         localizedString `json:"firstName"`
	LastName          localizedString `json:"lastName"`
	SweaterNumber     *int            `json:"sweaterNumber"`
	Position          string          `json:"position"`
	ShootsCatches     string          `json:"shootsCatches"`
	HeightInInches    *int            `json:"heightInInches"`
	WeightInPounds    *int            `json:"weightInPounds"`
	BirthDate         string          `json:"birthDate"`
	BirthCity         localizedString `json:"birthCity"`
	BirthCountry      string          `json:"birthCountry"`
	CurrentTeamAbbrev string          `json:"currentTeamAbbrev"`
	SeasonTotals      []seasonTotal   `json:"seasonTotals"`
}

type seasonTotal struct {
	Season             int64           `json:"season"`
	GameTypeID         int             `json:"gameTypeId"`
	LeagueAbbrev       string          `json:"leagueAbbrev"`
	TeamName           localizedString `json:"teamName"`
	GamesPlayed        int             `json:"gamesPlayed"`
	Goals              int             `json:"goals"`
	Assists            int             `json:"assists"`
	Points             int             `json:"points"`
	PlusMinus          int             `json:"plusMinus"`
	PIM                int             `json:"pim"`
	PowerPlayGoals     int             `json:"powerPlayGoals"`
	PowerPlayPoints    int             `json:"powerPlayPoints"`
	ShorthandedGoals   int             `json:"shorthandedGoals"`
	ShorthandedPoints  int             `json:"shorthandedPoints"`
	GameWinningGoals   int             `json:"gameWinningGoals"`
	OTGoals            int             `json:"otGoals"`
	Shots              int             `json:"shots"`
	ShootingPctg       *float64        `json:"shootingPctg"`
	AvgTOI             string          `json:"avgToi"`
	FaceoffWinningPctg *float64        `json:"faceoffWinningPctg"`
	Wins               int             `json:"wins"`
	Losses             int             `json:"losses"`
	OTLosses           int             `json:"otLosses"`
	Saves              int             `json:"saves"`
	ShotsAgainst       int             `json:"shotsAgainst"`
	GoalsAgainst       int             `json:"goalsAgainst"`
	SavePctg           *float64        `json:"savePctg"`
	GoalsAgainstAvg    *float64        `json:"goalsAgainstAvg"`
	Shutouts           int             `json:"shutouts"`
}

type scheduleEnvelope struct {
	GameWeek []scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID           int64           `json:"id"`
	Season       int64           `json:"season"`
	GameType     int             `json:"gameType"`
	StartTimeUTC string          `json:"startTimeUTC"`
	GameState    string          `json:"gameState"`
	Venue        localizedString `json:"venue"`
	HomeTeam     scheduleTeam    `json:"homeTeam"`
	AwayTeam     scheduleTeam    `json:"awayTeam"`
}

type scheduleTeam struct {
	Abbrev string `json:"abbrev"`
	Score  *int   `json:"score"`
}

// The standings payload carries no numeric team id; the logo URL does, e.g.
// ".../logos/nhl/svg/10.svg".
var teamLogoIDRegex = regexp.MustCompile(`/(\d+)\.`)

func teamIDFromLogo(logoURL string) int64 {
	match := teamLogoIDRegex.FindStringSubmatch(logoURL)
	if len(match) != 2 {
		return 0
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func mapStandingToTeam(row standingRow) usecase.TeamRecord {
	name := row.TeamName.Value
	if name == "" && row.PlaceName.Value != "" && row.TeamCommonName.Value != "" {
		name = row.PlaceName.Value + " " + row.TeamCommonName.Value
	}

	return usecase.TeamRecord{
		NHLID:        teamIDFromLogo(row.TeamLogo),
		Name:         name,
		Abbreviation: row.TeamAbbrev.Value,
		City:         row.PlaceName.Value,
		Conference:   row.ConferenceName,
		Division:     row.DivisionName,
	}
}

func mapStandingToTeamStats(row standingRow) usecase.TeamStatRecord {
	return usecase.TeamStatRecord{
		TeamAbbreviation: row.TeamAbbrev.Value,
		GamesPlayed:      row.GamesPlayed,
		Wins:             row.Wins,
		Losses:           row.Losses,
		OvertimeLosses:   row.OtLosses,
		Points:           row.Points,
		PointPct:         row.PointPctg,
		GoalsFor:         row.GoalFor,
		GoalsAgainst:     row.GoalAgainst,
		GoalDifferential: row.GoalDifferential,
	}
}

func mapRosterPlayer(item rosterPlayer, teamAbbrev string) usecase.PlayerRecord {
	return usecase.PlayerRecord{
		NHLID:            item.ID,
		FirstName:        item.FirstName.Value,
		LastName:         item.LastName.Value,
		JerseyNumber:     item.SweaterNumber,
		Position:         item.PositionCode,
		ShootsCatches:    item.ShootsCatches,
		HeightInches:     item.HeightInInches,
		WeightPounds:     item.WeightInPounds,
		BirthDate:        parseBirthDate(item.BirthDate),
		BirthCity:        item.BirthCity.Value,
		BirthCountry:     item.BirthCountry,
		TeamAbbreviation: teamAbbrev,
	}
}

func mapPlayerLanding(payload playerLandingEnvelope) usecase.PlayerDetailRecord {
	detail := usecase.PlayerDetailRecord{
		PlayerRecord: usecase.PlayerRecord{
			NHLID:            payload.PlayerID,
			FirstName:        payload.FirstName.Value,
			LastName:         payload.LastName.Value,
			JerseyNumber:     payload.SweaterNumber,
			Position:         payload.Position,
			ShootsCatches:    payload.ShootsCatches,
			HeightInches:     payload.HeightInInches,
			WeightPounds:     payload.WeightInPounds,
			BirthDate:        parseBirthDate(payload.BirthDate),
			BirthCity:        payload.BirthCity.Value,
			BirthCountry:     payload.BirthCountry,
			Nationality:      payload.BirthCountry,
			TeamAbbreviation: payload.CurrentTeamAbbrev,
		},
	}

	for _, total := range payload.SeasonTotals {
		// Only NHL regular-season rows feed the local stat tables.
		if total.LeagueAbbrev != "NHL" || total.GameTypeID != regularSeasonGameType {
			continue
		}
		detail.SeasonTotals = append(detail.SeasonTotals, usecase.PlayerSeasonStatRecord{
			Season:              strconv.FormatInt(total.Season, 10),
			TeamAbbreviation:    payload.CurrentTeamAbbrev,
			GamesPlayed:         total.GamesPlayed,
			Goals:               total.Goals,
			Assists:             total.Assists,
			Points:              total.Points,
			PlusMinus:           total.PlusMinus,
			PenaltyMinutes:      total.PIM,
			PowerPlayGoals:      total.PowerPlayGoals,
			PowerPlayPoints:     total.PowerPlayPoints,
			ShortHandedGoals:    total.ShorthandedGoals,
			ShortHandedPoints:   total.ShorthandedPoints,
			GameWinningGoals:    total.GameWinningGoals,
			OvertimeGoals:       total.OTGoals,
			Shots:               total.Shots,
			ShootingPct:         total.ShootingPctg,
			TimeOnIcePerGame:    parseTimeOnIce(total.AvgTOI),
			FaceoffPct:          total.FaceoffWinningPctg,
			Wins:                total.Wins,
			Losses:              total.Losses,
			OvertimeLosses:      total.OTLosses,
			Saves:               total.Saves,
			ShotsAgainst:        total.ShotsAgainst,
			GoalsAgainst:        total.GoalsAgainst,
			SavePct:             total.SavePctg,
			GoalsAgainstAverage: total.GoalsAgainstAvg,
			Shutouts:            total.Shutouts,
		})
	}

	return detail
}

func mapScheduleGame(item scheduleGame) usecase.GameRecord {
	gameDate := time.Time{}
	if parsed, err := time.Parse(time.RFC3339, item.StartTimeUTC); err == nil {
		gameDate = parsed.UTC()
	}

	return usecase.GameRecord{
		NHLID:          item.ID,
		Season:         strconv.FormatInt(item.Season, 10),
		GameType:       item.GameType,
		GameDate:       gameDate,
		HomeTeamAbbrev: item.HomeTeam.Abbrev,
		AwayTeamAbbrev: item.AwayTeam.Abbrev,
		HomeScore:      item.HomeTeam.Score,
		AwayScore:      item.AwayTeam.Score,
		GameState:      item.GameState,
		Venue:          item.Venue.Value,
	}
}

func parseBirthDate(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseTimeOnIce turns the API's "mm:ss" average into minutes, e.g. "18:21"
// becomes 18.35.
func parseTimeOnIce(raw string) *float64 {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return nil
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	value := float64(minutes) + float64(seconds)/60
	return &value
}
