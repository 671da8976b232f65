// Command tracker synchronizes NHL teams, rosters, games, and season stats
// into the local database.
//
// Usage:
//
//	tracker init
//	tracker fetch-teams
//	tracker fetch-roster TOR --season 20232024
//	tracker fetch-stats TOR --season 20232024
//	tracker fetch-player 8478402 --season 20232024
//	tracker fetch-schedule --date 2024-01-15
//	tracker fetch-all
//	tracker stats
//	tracker schedule
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pucktrack/pucktrack/internal/app"
	"github.com/pucktrack/pucktrack/internal/config"
	"github.com/pucktrack/pucktrack/internal/observability"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "NHL stats tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		initCmd(),
		fetchTeamsCmd(),
		fetchRosterCmd(),
		fetchStatsCmd(),
		fetchPlayerCmd(),
		fetchScheduleCmd(),
		fetchAllCmd(),
		statsCmd(),
		scheduleCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runWithApp loads config, sets up logging and tracing, wires the
// application, and tears everything down after fn returns.
func runWithApp(fn func(ctx context.Context, a *app.Application) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := fn(ctx, a)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutdown tracing failed", "error", err)
	}

	return runErr
}

func printOutcome(outcome usecase.Outcome) {
	fmt.Println(outcome.Summary())
	for _, warning := range outcome.Warnings {
		fmt.Println("  warning:", warning.String())
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := app.MigrateUp(cfg.DBURL); err != nil {
				return err
			}
			fmt.Println("database schema is up to date")
			return nil
		},
	}
}

func fetchTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-teams",
		Short: "Fetch all NHL teams from the current standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchAllTeams(ctx)
				printOutcome(outcome)
				return err
			})
		},
	}
}

func fetchRosterCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "fetch-roster TEAM",
		Short: "Fetch the roster for a team by abbreviation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abbrev := strings.ToUpper(strings.TrimSpace(args[0]))
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchRoster(ctx, abbrev, season)
				printOutcome(outcome)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season in YYYYYYYY form (default: current)")
	return cmd
}

func fetchStatsCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "fetch-stats TEAM",
		Short: "Fetch season standings stats for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abbrev := strings.ToUpper(strings.TrimSpace(args[0]))
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchTeamStats(ctx, abbrev, season)
				printOutcome(outcome)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season in YYYYYYYY form (default: current)")
	return cmd
}

func fetchPlayerCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "fetch-player PLAYER_ID",
		Short: "Fetch a player profile and season stat lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || playerID <= 0 {
				return fmt.Errorf("invalid player id %q", args[0])
			}
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchPlayerStats(ctx, playerID, season)
				printOutcome(outcome)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Keep only this season's stat lines")
	return cmd
}

func fetchScheduleCmd() *cobra.Command {
	var dateArg string
	cmd := &cobra.Command{
		Use:   "fetch-schedule",
		Short: "Fetch the game schedule for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if dateArg != "" {
				parsed, err := time.Parse("2006-01-02", dateArg)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateArg)
				}
				date = parsed
			}
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchSchedule(ctx, date)
				printOutcome(outcome)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&dateArg, "date", "", "Schedule date as YYYY-MM-DD (default: today)")
	return cmd
}

func fetchAllCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "fetch-all",
		Short: "Fetch teams, then every roster and team stat line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				outcome, err := a.Sync.FetchAll(ctx, season)
				printOutcome(outcome)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season in YYYYYYYY form (default: current)")
	return cmd
}

func statsCmd() *cobra.Command {
	var recent int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print database contents and recent fetch history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(func(ctx context.Context, a *app.Application) error {
				report, err := a.Reports.DatabaseReport(ctx, recent)
				if err != nil {
					return err
				}

				fmt.Printf("teams:        %d\n", report.Teams)
				fmt.Printf("players:      %d\n", report.Players)
				fmt.Printf("games:        %d\n", report.Games)
				fmt.Printf("player stats: %d\n", report.PlayerStats)
				fmt.Printf("team stats:   %d\n", report.TeamStats)

				if len(report.RecentFetches) == 0 {
					fmt.Println("no fetch history")
					return nil
				}

				fmt.Println("recent fetches:")
				for _, entry := range report.RecentFetches {
					line := fmt.Sprintf("  %s  %-12s %-7s %d records",
						entry.FetchDate.Format(time.RFC3339), entry.FetchType, entry.Status, entry.RecordsFetched)
					if entry.ErrorMessage != "" {
						line += "  " + entry.ErrorMessage
					}
					fmt.Println(line)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&recent, "recent", 10, "How many fetch log entries to show")
	return cmd
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run the daily full-refresh daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return runWithApp(func(ctx context.Context, a *app.Application) error {
				logger := logging.Default()

				stopProfiler, err := observability.InitPyroscope(cfg, logger)
				if err != nil {
					return fmt.Errorf("init profiler: %w", err)
				}
				defer func() {
					if err := stopProfiler(); err != nil {
						logger.Error("stop profiler failed", "error", err)
					}
				}()

				pprofSrv, err := observability.StartPprofServer(cfg, logger)
				if err != nil {
					return fmt.Errorf("start pprof server: %w", err)
				}
				defer func() {
					if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
						logger.Error("stop pprof server failed", "error", err)
					}
				}()

				if err := a.Scheduler.Start(ctx); err != nil {
					return err
				}

				<-ctx.Done()
				a.Scheduler.Stop()
				return nil
			})
		},
	}
}
