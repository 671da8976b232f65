package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
	"github.com/pucktrack/pucktrack/internal/domain/team"
	"github.com/pucktrack/pucktrack/internal/infrastructure/repository/memory"
	fetchlogmock "github.com/pucktrack/pucktrack/internal/mocks/domain/fetchlog"
	teammock "github.com/pucktrack/pucktrack/internal/mocks/domain/team"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestFetchAllTeams_AppendsSingleAuditEntryUsingMockery(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teams: func(context.Context) ([]TeamRecord, []MalformedRecordError, error) {
			return leagueTeams(2), nil, nil
		},
	}

	teams := memory.NewTeamRepository()
	fetchLogs := fetchlogmock.NewRepository(t)
	reconciler := NewReconciler(teams, memory.NewPlayerRepository(), memory.NewGameRepository(),
		memory.NewPlayerStatsRepository(), memory.NewTeamStatsRepository(), logging.NewNop())
	service := NewSyncService(provider, reconciler, teams, fetchLogs, logging.NewNop(), 2)

	fetchLogs.
		On("Append", mock.Anything, mock.MatchedBy(func(entry fetchlog.Entry) bool {
			return entry.FetchType == fetchlog.TypeTeams &&
				entry.Status == fetchlog.StatusSuccess &&
				entry.RecordsFetched == 2 &&
				entry.ErrorMessage == ""
		})).
		Return(int64(1), nil).
		Once()

	outcome, err := service.FetchAllTeams(context.Background())
	if err != nil {
		t.Fatalf("fetch all teams: %v", err)
	}
	if outcome.Succeeded != 2 {
		t.Fatalf("expected 2 succeeded, got=%d", outcome.Succeeded)
	}
}

func TestFetchAllTeams_PersistenceFailureCountsPerRecordUsingMockery(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teams: func(context.Context) ([]TeamRecord, []MalformedRecordError, error) {
			return leagueTeams(3), nil, nil
		},
	}

	teams := teammock.NewRepository(t)
	teams.
		On("GetByNHLID", mock.Anything, mock.Anything).
		Return(team.Team{}, false, errors.New("connection reset")).
		Times(3)

	fetchLogs := memory.NewFetchLogRepository()
	reconciler := NewReconciler(teams, memory.NewPlayerRepository(), memory.NewGameRepository(),
		memory.NewPlayerStatsRepository(), memory.NewTeamStatsRepository(), logging.NewNop())
	service := NewSyncService(provider, reconciler, teams, fetchLogs, logging.NewNop(), 2)

	outcome, err := service.FetchAllTeams(context.Background())
	if err != nil {
		t.Fatalf("per-record failures must not abort the batch: %v", err)
	}
	if outcome.Status != fetchlog.StatusError {
		t.Fatalf("expected status error when every record fails, got=%s", outcome.Status)
	}
	if outcome.Failed != 3 {
		t.Fatalf("expected 3 failed records, got=%d", outcome.Failed)
	}

	entries := fetchLogs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got=%d", len(entries))
	}
	if entries[0].Status != fetchlog.StatusError {
		t.Fatalf("unexpected audit status: %s", entries[0].Status)
	}
	if entries[0].ErrorMessage == "" {
		t.Fatal("expected the audit entry to carry the first failure detail")
	}
}
