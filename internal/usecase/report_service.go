package usecase

import (
	"context"
	"fmt"

	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
	"github.com/pucktrack/pucktrack/internal/domain/game"
	"github.com/pucktrack/pucktrack/internal/domain/player"
	"github.com/pucktrack/pucktrack/internal/domain/playerstats"
	"github.com/pucktrack/pucktrack/internal/domain/team"
	"github.com/pucktrack/pucktrack/internal/domain/teamstats"
)

// DatabaseReport is the "stats" command payload: row counts per table plus
// the most recent audit entries.
type DatabaseReport struct {
	Teams         int
	Players       int
	Games         int
	PlayerStats   int
	TeamStats     int
	RecentFetches []fetchlog.Entry
}

type ReportService struct {
	teams       team.Repository
	players     player.Repository
	games       game.Repository
	playerStats playerstats.Repository
	teamStats   teamstats.Repository
	fetchLogs   fetchlog.Repository
}

func NewReportService(
	teams team.Repository,
	players player.Repository,
	games game.Repository,
	playerStats playerstats.Repository,
	teamStats teamstats.Repository,
	fetchLogs fetchlog.Repository,
) *ReportService {
	return &ReportService{
		teams:       teams,
		players:     players,
		games:       games,
		playerStats: playerStats,
		teamStats:   teamStats,
		fetchLogs:   fetchLogs,
	}
}

func (s *ReportService) DatabaseReport(ctx context.Context, recentLimit int) (DatabaseReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.DatabaseReport")
	defer span.End()

	report := DatabaseReport{}
	var err error

	if report.Teams, err = s.teams.Count(ctx); err != nil {
		return DatabaseReport{}, fmt.Errorf("count teams: %w", err)
	}
	if report.Players, err = s.players.Count(ctx); err != nil {
		return DatabaseReport{}, fmt.Errorf("count players: %w", err)
	}
	if report.Games, err = s.games.Count(ctx); err != nil {
		return DatabaseReport{}, fmt.Errorf("count games: %w", err)
	}
	if report.PlayerStats, err = s.playerStats.Count(ctx); err != nil {
		return DatabaseReport{}, fmt.Errorf("count player stats: %w", err)
	}
	if report.TeamStats, err = s.teamStats.Count(ctx); err != nil {
		return DatabaseReport{}, fmt.Errorf("count team stats: %w", err)
	}

	if recentLimit > 0 {
		if report.RecentFetches, err = s.fetchLogs.ListRecent(ctx, recentLimit); err != nil {
			return DatabaseReport{}, fmt.Errorf("list recent fetches: %w", err)
		}
	}

	return report, nil
}
