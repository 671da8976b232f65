package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pucktrack/pucktrack/internal/domain/game"
	"github.com/pucktrack/pucktrack/internal/domain/player"
	"github.com/pucktrack/pucktrack/internal/domain/playerstats"
	"github.com/pucktrack/pucktrack/internal/domain/team"
	"github.com/pucktrack/pucktrack/internal/domain/teamstats"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
)

// ChangeKind classifies what a reconcile pass did to one record.
type ChangeKind string

const (
	ChangeCreated   ChangeKind = "created"
	ChangeUpdated   ChangeKind = "updated"
	ChangeUnchanged ChangeKind = "unchanged"
	// ChangeSkipped means the record could not be written at all, e.g. a
	// season-stat row whose owning entity is unknown locally.
	ChangeSkipped ChangeKind = "skipped"
)

// Reconciler converges local rows toward remote records: insert when the
// remote id is unknown, minimal update when fields drift, no-op otherwise.
// updated_at moves only when at least one field actually changed.
type Reconciler struct {
	teams       team.Repository
	players     player.Repository
	games       game.Repository
	playerStats playerstats.Repository
	teamStats   teamstats.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewReconciler(
	teams team.Repository,
	players player.Repository,
	games game.Repository,
	playerStats playerstats.Repository,
	teamStats teamstats.Repository,
	logger *logging.Logger,
) *Reconciler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Reconciler{
		teams:       teams,
		players:     players,
		games:       games,
		playerStats: playerStats,
		teamStats:   teamStats,
		logger:      logger,
		now:         time.Now,
	}
}

func (r *Reconciler) ReconcileTeam(ctx context.Context, rec TeamRecord) (ChangeKind, error) {
	existing, found, err := r.teams.GetByNHLID(ctx, rec.NHLID)
	if err != nil {
		return "", fmt.Errorf("%w: lookup team nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	if !found {
		now := r.now().UTC()
		item := team.Team{
			NHLID:        rec.NHLID,
			Name:         rec.Name,
			Abbreviation: rec.Abbreviation,
			City:         rec.City,
			Conference:   rec.Conference,
			Division:     rec.Division,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := r.teams.Insert(ctx, item); err != nil {
			return "", fmt.Errorf("%w: insert team nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
		}
		return ChangeCreated, nil
	}

	desired := existing
	desired.Name = rec.Name
	desired.Abbreviation = rec.Abbreviation
	desired.City = rec.City
	desired.Conference = rec.Conference
	desired.Division = rec.Division
	desired.Active = true

	if desired == existing {
		return ChangeUnchanged, nil
	}

	desired.UpdatedAt = r.now().UTC()
	if err := r.teams.Update(ctx, desired); err != nil {
		return "", fmt.Errorf("%w: update team nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	return ChangeUpdated, nil
}

func (r *Reconciler) ReconcilePlayer(ctx context.Context, rec PlayerRecord) (ChangeKind, *ReferenceUnresolvedWarning, error) {
	teamID, warning, err := r.resolveTeamID(ctx, "player", rec.NHLID, rec.TeamAbbreviation)
	if err != nil {
		return "", nil, err
	}

	existing, found, err := r.players.GetByNHLID(ctx, rec.NHLID)
	if err != nil {
		return "", warning, fmt.Errorf("%w: lookup player nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	if !found {
		now := r.now().UTC()
		item := player.Player{
			NHLID:         rec.NHLID,
			FirstName:     rec.FirstName,
			LastName:      rec.LastName,
			JerseyNumber:  rec.JerseyNumber,
			Position:      rec.Position,
			ShootsCatches: rec.ShootsCatches,
			HeightInches:  rec.HeightInches,
			WeightPounds:  rec.WeightPounds,
			BirthDate:     rec.BirthDate,
			BirthCity:     rec.BirthCity,
			BirthCountry:  rec.BirthCountry,
			Nationality:   rec.Nationality,
			TeamID:        teamID,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if _, err := r.players.Insert(ctx, item); err != nil {
			return "", warning, fmt.Errorf("%w: insert player nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
		}
		return ChangeCreated, warning, nil
	}

	desired := existing
	desired.FirstName = rec.FirstName
	desired.LastName = rec.LastName
	desired.JerseyNumber = rec.JerseyNumber
	desired.Position = rec.Position
	desired.ShootsCatches = rec.ShootsCatches
	desired.HeightInches = rec.HeightInches
	desired.WeightPounds = rec.WeightPounds
	desired.BirthDate = rec.BirthDate
	desired.BirthCity = rec.BirthCity
	desired.BirthCountry = rec.BirthCountry
	desired.Nationality = rec.Nationality
	desired.Active = true
	if teamID != nil {
		desired.TeamID = teamID
	}

	if playersEqual(existing, desired) {
		return ChangeUnchanged, warning, nil
	}

	desired.UpdatedAt = r.now().UTC()
	if err := r.players.Update(ctx, desired); err != nil {
		return "", warning, fmt.Errorf("%w: update player nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	return ChangeUpdated, warning, nil
}

func (r *Reconciler) ReconcileTeamStats(ctx context.Context, rec TeamStatRecord, season string) (ChangeKind, *ReferenceUnresolvedWarning, error) {
	owner, found, err := r.teams.GetByAbbreviation(ctx, rec.TeamAbbreviation)
	if err != nil {
		return "", nil, fmt.Errorf("%w: lookup team abbrev=%s: %v", ErrPersistence, rec.TeamAbbreviation, err)
	}
	if !found {
		// Team stats are keyed by the owning team, so there is nothing to
		// write when that team is unknown locally.
		warning := &ReferenceUnresolvedWarning{
			Kind: "team_stats", Relation: "team", Reference: rec.TeamAbbreviation,
		}
		return ChangeSkipped, warning, nil
	}

	existing, statFound, err := r.teamStats.GetByTeamSeason(ctx, owner.ID, season)
	if err != nil {
		return "", nil, fmt.Errorf("%w: lookup team stats team_id=%d season=%s: %v", ErrPersistence, owner.ID, season, err)
	}

	if !statFound {
		now := r.now().UTC()
		item := teamstats.SeasonStats{
			TeamID:              owner.ID,
			Season:              season,
			GamesPlayed:         rec.GamesPlayed,
			Wins:                rec.Wins,
			Losses:              rec.Losses,
			OvertimeLosses:      rec.OvertimeLosses,
			Points:              rec.Points,
			PointPct:            rec.PointPct,
			GoalsFor:            rec.GoalsFor,
			GoalsAgainst:        rec.GoalsAgainst,
			GoalDifferential:    rec.GoalDifferential,
			ShotsForPerGame:     rec.ShotsForPerGame,
			ShotsAgainstPerGame: rec.ShotsAgainstPerGame,
			PowerPlayPct:        rec.PowerPlayPct,
			PenaltyKillPct:      rec.PenaltyKillPct,
			FaceoffWinPct:       rec.FaceoffWinPct,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if _, err := r.teamStats.Insert(ctx, item); err != nil {
			return "", nil, fmt.Errorf("%w: insert team stats team_id=%d season=%s: %v", ErrPersistence, owner.ID, season, err)
		}
		return ChangeCreated, nil, nil
	}

	desired := existing
	desired.GamesPlayed = rec.GamesPlayed
	desired.Wins = rec.Wins
	desired.Losses = rec.Losses
	desired.OvertimeLosses = rec.OvertimeLosses
	desired.Points = rec.Points
	desired.PointPct = rec.PointPct
	desired.GoalsFor = rec.GoalsFor
	desired.GoalsAgainst = rec.GoalsAgainst
	desired.GoalDifferential = rec.GoalDifferential
	desired.ShotsForPerGame = rec.ShotsForPerGame
	desired.ShotsAgainstPerGame = rec.ShotsAgainstPerGame
	desired.PowerPlayPct = rec.PowerPlayPct
	desired.PenaltyKillPct = rec.PenaltyKillPct
	desired.FaceoffWinPct = rec.FaceoffWinPct

	if teamStatsEqual(existing, desired) {
		return ChangeUnchanged, nil, nil
	}

	desired.UpdatedAt = r.now().UTC()
	if err := r.teamStats.Update(ctx, desired); err != nil {
		return "", nil, fmt.Errorf("%w: update team stats team_id=%d season=%s: %v", ErrPersistence, owner.ID, season, err)
	}

	return ChangeUpdated, nil, nil
}

func (r *Reconciler) ReconcilePlayerSeasonStat(ctx context.Context, playerID int64, rec PlayerSeasonStatRecord) (ChangeKind, *ReferenceUnresolvedWarning, error) {
	teamID, warning, err := r.resolveTeamID(ctx, "player_stats", playerID, rec.TeamAbbreviation)
	if err != nil {
		return "", nil, err
	}

	existing, found, err := r.playerStats.GetByPlayerSeason(ctx, playerID, rec.Season)
	if err != nil {
		return "", warning, fmt.Errorf("%w: lookup player stats player_id=%d season=%s: %v", ErrPersistence, playerID, rec.Season, err)
	}

	if !found {
		now := r.now().UTC()
		item := playerstats.SeasonStats{
			PlayerID:            playerID,
			Season:              rec.Season,
			TeamID:              teamID,
			GamesPlayed:         rec.GamesPlayed,
			Goals:               rec.Goals,
			Assists:             rec.Assists,
			Points:              rec.Points,
			PlusMinus:           rec.PlusMinus,
			PenaltyMinutes:      rec.PenaltyMinutes,
			PowerPlayGoals:      rec.PowerPlayGoals,
			PowerPlayPoints:     rec.PowerPlayPoints,
			ShortHandedGoals:    rec.ShortHandedGoals,
			ShortHandedPoints:   rec.ShortHandedPoints,
			GameWinningGoals:    rec.GameWinningGoals,
			OvertimeGoals:       rec.OvertimeGoals,
			Shots:               rec.Shots,
			ShootingPct:         rec.ShootingPct,
			TimeOnIcePerGame:    rec.TimeOnIcePerGame,
			FaceoffPct:          rec.FaceoffPct,
			Wins:                rec.Wins,
			Losses:              rec.Losses,
			OvertimeLosses:      rec.OvertimeLosses,
			Saves:               rec.Saves,
			ShotsAgainst:        rec.ShotsAgainst,
			GoalsAgainst:        rec.GoalsAgainst,
			SavePct:             rec.SavePct,
			GoalsAgainstAverage: rec.GoalsAgainstAverage,
			Shutouts:            rec.Shutouts,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if _, err := r.playerStats.Insert(ctx, item); err != nil {
			return "", warning, fmt.Errorf("%w: insert player stats player_id=%d season=%s: %v", ErrPersistence, playerID, rec.Season, err)
		}
		return ChangeCreated, warning, nil
	}

	desired := existing
	if teamID != nil {
		desired.TeamID = teamID
	}
	desired.GamesPlayed = rec.GamesPlayed
	desired.Goals = rec.Goals
	desired.Assists = rec.Assists
	desired.Points = rec.Points
	desired.PlusMinus = rec.PlusMinus
	desired.PenaltyMinutes = rec.PenaltyMinutes
	desired.PowerPlayGoals = rec.PowerPlayGoals
	desired.PowerPlayPoints = rec.PowerPlayPoints
	desired.ShortHandedGoals = rec.ShortHandedGoals
	desired.ShortHandedPoints = rec.ShortHandedPoints
	desired.GameWinningGoals = rec.GameWinningGoals
	desired.OvertimeGoals = rec.OvertimeGoals
	desired.Shots = rec.Shots
	desired.ShootingPct = rec.ShootingPct
	desired.TimeOnIcePerGame = rec.TimeOnIcePerGame
	desired.FaceoffPct = rec.FaceoffPct
	desired.Wins = rec.Wins
	desired.Losses = rec.Losses
	desired.OvertimeLosses = rec.OvertimeLosses
	desired.Saves = rec.Saves
	desired.ShotsAgainst = rec.ShotsAgainst
	desired.GoalsAgainst = rec.GoalsAgainst
	desired.SavePct = rec.SavePct
	desired.GoalsAgainstAverage = rec.GoalsAgainstAverage
	desired.Shutouts = rec.Shutouts

	if playerStatsEqual(existing, desired) {
		return ChangeUnchanged, warning, nil
	}

	desired.UpdatedAt = r.now().UTC()
	if err := r.playerStats.Update(ctx, desired); err != nil {
		return "", warning, fmt.Errorf("%w: update player stats player_id=%d season=%s: %v", ErrPersistence, playerID, rec.Season, err)
	}

	return ChangeUpdated, warning, nil
}

func (r *Reconciler) ReconcileGame(ctx context.Context, rec GameRecord) (ChangeKind, []ReferenceUnresolvedWarning, error) {
	var warnings []ReferenceUnresolvedWarning

	homeID, homeWarning, err := r.resolveTeamID(ctx, "game", rec.NHLID, rec.HomeTeamAbbrev)
	if err != nil {
		return "", nil, err
	}
	if homeWarning != nil {
		homeWarning.Relation = "home_team"
		warnings = append(warnings, *homeWarning)
	}

	awayID, awayWarning, err := r.resolveTeamID(ctx, "game", rec.NHLID, rec.AwayTeamAbbrev)
	if err != nil {
		return "", nil, err
	}
	if awayWarning != nil {
		awayWarning.Relation = "away_team"
		warnings = append(warnings, *awayWarning)
	}

	existing, found, err := r.games.GetByNHLID(ctx, rec.NHLID)
	if err != nil {
		return "", warnings, fmt.Errorf("%w: lookup game nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	state := game.NormalizeState(rec.GameState)
	gameType := game.TypeFromID(rec.GameType)

	if !found {
		now := r.now().UTC()
		item := game.Game{
			NHLID:      rec.NHLID,
			Season:     rec.Season,
			GameType:   gameType,
			GameDate:   rec.GameDate,
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			HomeScore:  rec.HomeScore,
			AwayScore:  rec.AwayScore,
			GameState:  state,
			Venue:      rec.Venue,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := r.games.Insert(ctx, item); err != nil {
			return "", warnings, fmt.Errorf("%w: insert game nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
		}
		return ChangeCreated, warnings, nil
	}

	desired := existing
	desired.Season = rec.Season
	desired.GameType = gameType
	desired.GameDate = rec.GameDate
	desired.HomeScore = rec.HomeScore
	desired.AwayScore = rec.AwayScore
	desired.GameState = state
	desired.Venue = rec.Venue
	if homeID != nil {
		desired.HomeTeamID = homeID
	}
	if awayID != nil {
		desired.AwayTeamID = awayID
	}

	if gamesEqual(existing, desired) {
		return ChangeUnchanged, warnings, nil
	}

	desired.UpdatedAt = r.now().UTC()
	if err := r.games.Update(ctx, desired); err != nil {
		return "", warnings, fmt.Errorf("%w: update game nhl_id=%d: %v", ErrPersistence, rec.NHLID, err)
	}

	return ChangeUpdated, warnings, nil
}

// resolveTeamID maps a team abbreviation to a local team id right before the
// write. Unknown abbreviations produce a warning and a nil id, never an
// error.
func (r *Reconciler) resolveTeamID(ctx context.Context, kind string, remoteID int64, abbrev string) (*int64, *ReferenceUnresolvedWarning, error) {
	if abbrev == "" {
		return nil, nil, nil
	}

	owner, found, err := r.teams.GetByAbbreviation(ctx, abbrev)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: lookup team abbrev=%s: %v", ErrPersistence, abbrev, err)
	}
	if !found {
		return nil, &ReferenceUnresolvedWarning{
			Kind:      kind,
			RemoteID:  remoteID,
			Relation:  "team",
			Reference: abbrev,
		}, nil
	}

	id := owner.ID
	return &id, nil, nil
}

func playersEqual(left, right player.Player) bool {
	return left.FirstName == right.FirstName &&
		left.LastName == right.LastName &&
		intPtrEqual(left.JerseyNumber, right.JerseyNumber) &&
		left.Position == right.Position &&
		left.ShootsCatches == right.ShootsCatches &&
		intPtrEqual(left.HeightInches, right.HeightInches) &&
		intPtrEqual(left.WeightPounds, right.WeightPounds) &&
		timePtrEqual(left.BirthDate, right.BirthDate) &&
		left.BirthCity == right.BirthCity &&
		left.BirthCountry == right.BirthCountry &&
		left.Nationality == right.Nationality &&
		int64PtrEqual(left.TeamID, right.TeamID) &&
		left.Active == right.Active
}

func teamStatsEqual(left, right teamstats.SeasonStats) bool {
	return left.GamesPlayed == right.GamesPlayed &&
		left.Wins == right.Wins &&
		left.Losses == right.Losses &&
		left.OvertimeLosses == right.OvertimeLosses &&
		left.Points == right.Points &&
		floatPtrEqual(left.PointPct, right.PointPct) &&
		left.GoalsFor == right.GoalsFor &&
		left.GoalsAgainst == right.GoalsAgainst &&
		left.GoalDifferential == right.GoalDifferential &&
		floatPtrEqual(left.ShotsForPerGame, right.ShotsForPerGame) &&
		floatPtrEqual(left.ShotsAgainstPerGame, right.ShotsAgainstPerGame) &&
		floatPtrEqual(left.PowerPlayPct, right.PowerPlayPct) &&
		floatPtrEqual(left.PenaltyKillPct, right.PenaltyKillPct) &&
		floatPtrEqual(left.FaceoffWinPct, right.FaceoffWinPct)
}

func playerStatsEqual(left, right playerstats.SeasonStats) bool {
	return int64PtrEqual(left.TeamID, right.TeamID) &&
		left.GamesPlayed == right.GamesPlayed &&
		left.Goals == right.Goals &&
		left.Assists == right.Assists &&
		left.Points == right.Points &&
		left.PlusMinus == right.PlusMinus &&
		left.PenaltyMinutes == right.PenaltyMinutes &&
		left.PowerPlayGoals == right.PowerPlayGoals &&
		left.PowerPlayPoints == right.PowerPlayPoints &&
		left.ShortHandedGoals == right.ShortHandedGoals &&
		left.ShortHandedPoints == right.ShortHandedPoints &&
		left.GameWinningGoals == right.GameWinningGoals &&
		left.OvertimeGoals == right.OvertimeGoals &&
		left.Shots == right.Shots &&
		floatPtrEqual(left.ShootingPct, right.ShootingPct) &&
		floatPtrEqual(left.TimeOnIcePerGame, right.TimeOnIcePerGame) &&
		floatPtrEqual(left.FaceoffPct, right.FaceoffPct) &&
		left.Wins == right.Wins &&
		left.Losses == right.Losses &&
		left.OvertimeLosses == right.OvertimeLosses &&
		left.Saves == right.Saves &&
		left.ShotsAgainst == right.ShotsAgainst &&
		left.GoalsAgainst == right.GoalsAgainst &&
		floatPtrEqual(left.SavePct, right.SavePct) &&
		floatPtrEqual(left.GoalsAgainstAverage, right.GoalsAgainstAverage) &&
		left.Shutouts == right.Shutouts
}

func gamesEqual(left, right game.Game) bool {
	return left.Season == right.Season &&
		left.GameType == right.GameType &&
		left.GameDate.Equal(right.GameDate) &&
		int64PtrEqual(left.HomeTeamID, right.HomeTeamID) &&
		int64PtrEqual(left.AwayTeamID, right.AwayTeamID) &&
		intPtrEqual(left.HomeScore, right.HomeScore) &&
		intPtrEqual(left.AwayScore, right.AwayScore) &&
		left.GameState == right.GameState &&
		left.Venue == right.Venue
}

func intPtrEqual(left, right *int) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return *left == *right
}

func int64PtrEqual(left, right *int64) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return *left == *right
}

func floatPtrEqual(left, right *float64) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return *left == *right
}

func timePtrEqual(left, right *time.Time) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return left.Equal(*right)
}
