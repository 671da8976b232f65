package app

import (
	"github.com/jmoiron/sqlx"
	"github.com/pucktrack/pucktrack/external/nhl"
	"github.com/pucktrack/pucktrack/internal/config"
	"github.com/pucktrack/pucktrack/internal/infrastructure/repository/postgres"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/platform/resilience"
	"github.com/pucktrack/pucktrack/internal/scheduler"
	"github.com/pucktrack/pucktrack/internal/usecase"
)

// Application wires the NHL client, repositories, and services behind the
// CLI commands. Close releases the database pool.
type Application struct {
	DB        *sqlx.DB
	Sync      *usecase.SyncService
	Reports   *usecase.ReportService
	Scheduler *scheduler.Scheduler
}

func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	playerStatsRepo := postgres.NewPlayerStatsRepository(db)
	teamStatsRepo := postgres.NewTeamStatsRepository(db)
	fetchLogRepo := postgres.NewFetchLogRepository(db)

	client := nhl.NewClient(nhl.ClientConfig{
		BaseURL:      cfg.NHLAPIBaseURL,
		Timeout:      cfg.NHLFetchTimeout,
		MaxRetries:   cfg.NHLMaxRetries,
		RateLimitRPS: cfg.NHLRateLimitRPS,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.NHLCircuitEnabled,
			FailureThreshold: cfg.NHLCircuitFailureCount,
			OpenTimeout:      cfg.NHLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.NHLCircuitHalfOpenMaxReq,
		},
	})

	reconciler := usecase.NewReconciler(teamRepo, playerRepo, gameRepo, playerStatsRepo, teamStatsRepo, logger)
	syncSvc := usecase.NewSyncService(client, reconciler, teamRepo, fetchLogRepo, logger, cfg.SyncMaxWorkers)
	reportSvc := usecase.NewReportService(teamRepo, playerRepo, gameRepo, playerStatsRepo, teamStatsRepo, fetchLogRepo)

	return &Application{
		DB:        db,
		Sync:      syncSvc,
		Reports:   reportSvc,
		Scheduler: scheduler.New(syncSvc, cfg.UpdateSchedule, logger),
	}, nil
}

func (a *Application) Close() error {
	return a.DB.Close()
}
