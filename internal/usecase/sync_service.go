package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
	"github.com/pucktrack/pucktrack/internal/domain/team"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
)

const defaultSyncWorkers = 4

// Outcome is the result of one orchestrated fetch operation. Succeeded is
// what lands in the audit log as records_fetched.
type Outcome struct {
	FetchType   string
	Status      string
	Succeeded   int
	Failed      int
	Skipped     int
	Warnings    []ReferenceUnresolvedWarning
	Duration    time.Duration
	ErrorDetail string

	firstFailure string
}

// recordFailure counts one per-record failure, holding on to the first detail
// so a partial audit entry can name what went wrong.
func (o *Outcome) recordFailure(detail string) {
	o.Failed++
	if o.firstFailure == "" {
		o.firstFailure = detail
	}
}

// finish derives the status and, when records failed without a whole-batch
// error, folds the failure count and first detail into ErrorDetail so the
// audit entry distinguishes a partial run from a clean one.
func (o *Outcome) finish() {
	o.Status = deriveStatus(o.Succeeded, o.Failed)
	if o.Failed > 0 && o.ErrorDetail == "" {
		o.ErrorDetail = fmt.Sprintf("%d of %d records failed", o.Failed, o.Failed+o.Succeeded)
		if o.firstFailure != "" {
			o.ErrorDetail += ": " + o.firstFailure
		}
	}
}

// Summary renders the single human-readable line the CLI prints per
// operation.
func (o Outcome) Summary() string {
	line := fmt.Sprintf("%s: %s (%d records, %d failed) in %s", o.FetchType, o.Status, o.Succeeded, o.Failed, o.Duration.Round(time.Millisecond))
	if o.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", o.Skipped)
	}
	if len(o.Warnings) > 0 {
		line += fmt.Sprintf(", %d unresolved references", len(o.Warnings))
	}
	if o.ErrorDetail != "" {
		line += ": " + o.ErrorDetail
	}
	return line
}

// SyncService pulls remote NHL data through the StatsProvider, converges
// local rows via the Reconciler, and appends exactly one audit entry per
// operation. Per-record failures never abort a batch; whole-batch fetch
// failures short-circuit with status error.
type SyncService struct {
	provider   StatsProvider
	reconciler *Reconciler
	teams      team.Repository
	fetchLogs  fetchlog.Repository
	logger     *logging.Logger
	maxWorkers int
	now        func() time.Time
}

func NewSyncService(
	provider StatsProvider,
	reconciler *Reconciler,
	teams team.Repository,
	fetchLogs fetchlog.Repository,
	logger *logging.Logger,
	maxWorkers int,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultSyncWorkers
	}

	return &SyncService{
		provider:   provider,
		reconciler: reconciler,
		teams:      teams,
		fetchLogs:  fetchLogs,
		logger:     logger,
		maxWorkers: maxWorkers,
		now:        time.Now,
	}
}

func (s *SyncService) FetchAllTeams(ctx context.Context) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchAllTeams")
	defer span.End()

	start := s.now()
	outcome, err := s.syncTeams(ctx)
	outcome.FetchType = fetchlog.TypeTeams
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

func (s *SyncService) FetchRoster(ctx context.Context, teamAbbrev, season string) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchRoster")
	defer span.End()

	start := s.now()
	outcome, err := s.rosterOutcome(ctx, teamAbbrev, season)
	outcome.FetchType = fetchlog.TypeRoster
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

func (s *SyncService) FetchTeamStats(ctx context.Context, teamAbbrev, season string) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchTeamStats")
	defer span.End()

	start := s.now()
	outcome, err := s.teamStatsOutcome(ctx, teamAbbrev, season)
	outcome.FetchType = fetchlog.TypeTeamStats
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

// FetchPlayerStats pulls one player's landing payload and reconciles the
// player row plus its season totals. An empty season keeps every season the
// remote reports.
func (s *SyncService) FetchPlayerStats(ctx context.Context, playerNHLID int64, season string) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchPlayerStats")
	defer span.End()

	start := s.now()
	outcome, err := s.playerStatsOutcome(ctx, playerNHLID, season)
	outcome.FetchType = fetchlog.TypePlayerStats
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

func (s *SyncService) FetchSchedule(ctx context.Context, date time.Time) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchSchedule")
	defer span.End()

	start := s.now()
	outcome, err := s.scheduleOutcome(ctx, date)
	outcome.FetchType = fetchlog.TypeSchedule
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

// FetchAll runs the full refresh: teams first, then roster and team stats
// for every active team, fanned out across a bounded worker pool. It writes
// a single aggregate audit entry; the sub-steps do not log individually.
func (s *SyncService) FetchAll(ctx context.Context, season string) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.FetchAll")
	defer span.End()

	start := s.now()
	outcome, err := s.runFetchAll(ctx, season)
	outcome.FetchType = fetchlog.TypeAll
	outcome.Duration = s.now().Sub(start)
	s.appendAudit(ctx, outcome)

	return outcome, err
}

func (s *SyncService) syncTeams(ctx context.Context) (Outcome, error) {
	records, malformed, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, fmt.Errorf("fetch teams: %w", err)
	}

	outcome := Outcome{}
	s.dropMalformed(ctx, &outcome, malformed)

	for _, rec := range records {
		if ctx.Err() != nil {
			outcome.Status = deriveStatus(outcome.Succeeded, outcome.Failed+1)
			outcome.ErrorDetail = ctx.Err().Error()
			return outcome, ctx.Err()
		}

		if _, err := s.reconciler.ReconcileTeam(ctx, rec); err != nil {
			outcome.recordFailure(err.Error())
			s.logger.ErrorContext(ctx, "reconcile team failed", "nhl_id", rec.NHLID, "error", err)
			continue
		}
		outcome.Succeeded++
	}

	outcome.finish()
	return outcome, nil
}

func (s *SyncService) rosterOutcome(ctx context.Context, teamAbbrev, season string) (Outcome, error) {
	season, err := s.resolveSeason(ctx, season)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, err
	}

	records, malformed, err := s.provider.FetchRoster(ctx, teamAbbrev, season)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, fmt.Errorf("fetch roster team=%s season=%s: %w", teamAbbrev, season, err)
	}

	outcome := Outcome{}
	s.dropMalformed(ctx, &outcome, malformed)

	for _, rec := range records {
		if ctx.Err() != nil {
			outcome.Status = deriveStatus(outcome.Succeeded, outcome.Failed+1)
			outcome.ErrorDetail = ctx.Err().Error()
			return outcome, ctx.Err()
		}

		_, warning, err := s.reconciler.ReconcilePlayer(ctx, rec)
		if warning != nil {
			outcome.Warnings = append(outcome.Warnings, *warning)
			s.logger.WarnContext(ctx, "unresolved team reference on player", "nhl_id", rec.NHLID, "team", rec.TeamAbbreviation)
		}
		if err != nil {
			outcome.recordFailure(err.Error())
			s.logger.ErrorContext(ctx, "reconcile player failed", "nhl_id", rec.NHLID, "error", err)
			continue
		}
		outcome.Succeeded++
	}

	outcome.finish()
	return outcome, nil
}

func (s *SyncService) teamStatsOutcome(ctx context.Context, teamAbbrev, season string) (Outcome, error) {
	season, err := s.resolveSeason(ctx, season)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, err
	}

	rec, err := s.provider.FetchTeamStats(ctx, teamAbbrev, season)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, fmt.Errorf("fetch team stats team=%s season=%s: %w", teamAbbrev, season, err)
	}

	outcome := Outcome{}
	change, warning, err := s.reconciler.ReconcileTeamStats(ctx, rec, season)
	if warning != nil {
		outcome.Warnings = append(outcome.Warnings, *warning)
		s.logger.WarnContext(ctx, "unresolved team reference on team stats", "team", rec.TeamAbbreviation)
	}
	switch {
	case err != nil:
		outcome.recordFailure(err.Error())
		s.logger.ErrorContext(ctx, "reconcile team stats failed", "team", rec.TeamAbbreviation, "error", err)
	case change == ChangeSkipped:
		outcome.Skipped++
	default:
		outcome.Succeeded++
	}

	outcome.finish()
	return outcome, nil
}

func (s *SyncService) playerStatsOutcome(ctx context.Context, playerNHLID int64, season string) (Outcome, error) {
	detail, err := s.provider.FetchPlayerLanding(ctx, playerNHLID)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, fmt.Errorf("fetch player landing nhl_id=%d: %w", playerNHLID, err)
	}

	outcome := Outcome{}

	_, warning, err := s.reconciler.ReconcilePlayer(ctx, detail.PlayerRecord)
	if warning != nil {
		outcome.Warnings = append(outcome.Warnings, *warning)
	}
	if err != nil {
		outcome.recordFailure(err.Error())
		outcome.finish()
		return outcome, nil
	}
	outcome.Succeeded++

	stored, found, err := s.reconciler.players.GetByNHLID(ctx, playerNHLID)
	if err != nil || !found {
		detail := "player row missing after reconcile"
		if err != nil {
			detail = err.Error()
		}
		outcome.recordFailure(detail)
		outcome.finish()
		return outcome, nil
	}

	for _, total := range detail.SeasonTotals {
		if season != "" && total.Season != season {
			continue
		}
		if ctx.Err() != nil {
			outcome.Status = deriveStatus(outcome.Succeeded, outcome.Failed+1)
			outcome.ErrorDetail = ctx.Err().Error()
			return outcome, ctx.Err()
		}

		_, statWarning, err := s.reconciler.ReconcilePlayerSeasonStat(ctx, stored.ID, total)
		if statWarning != nil {
			outcome.Warnings = append(outcome.Warnings, *statWarning)
		}
		if err != nil {
			outcome.recordFailure(err.Error())
			s.logger.ErrorContext(ctx, "reconcile player season stat failed", "nhl_id", playerNHLID, "season", total.Season, "error", err)
			continue
		}
		outcome.Succeeded++
	}

	outcome.finish()
	return outcome, nil
}

func (s *SyncService) scheduleOutcome(ctx context.Context, date time.Time) (Outcome, error) {
	records, malformed, err := s.provider.FetchSchedule(ctx, date)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, fmt.Errorf("fetch schedule date=%s: %w", date.Format("2006-01-02"), err)
	}

	outcome := Outcome{}
	s.dropMalformed(ctx, &outcome, malformed)

	for _, rec := range records {
		if ctx.Err() != nil {
			outcome.Status = deriveStatus(outcome.Succeeded, outcome.Failed+1)
			outcome.ErrorDetail = ctx.Err().Error()
			return outcome, ctx.Err()
		}

		_, warnings, err := s.reconciler.ReconcileGame(ctx, rec)
		outcome.Warnings = append(outcome.Warnings, warnings...)
		if err != nil {
			outcome.recordFailure(err.Error())
			s.logger.ErrorContext(ctx, "reconcile game failed", "nhl_id", rec.NHLID, "error", err)
			continue
		}
		outcome.Succeeded++
	}

	outcome.finish()
	return outcome, nil
}

func (s *SyncService) runFetchAll(ctx context.Context, season string) (Outcome, error) {
	season, err := s.resolveSeason(ctx, season)
	if err != nil {
		return Outcome{Status: fetchlog.StatusError, ErrorDetail: err.Error()}, err
	}

	aggregate, err := s.syncTeams(ctx)
	if err != nil {
		aggregate.Status = deriveStatus(aggregate.Succeeded, aggregate.Failed+1)
		if aggregate.ErrorDetail == "" {
			aggregate.ErrorDetail = err.Error()
		}
		return aggregate, err
	}

	teams, err := s.teams.ListActive(ctx)
	if err != nil {
		aggregate.Status = fetchlog.StatusError
		aggregate.ErrorDetail = err.Error()
		return aggregate, fmt.Errorf("list active teams: %w", err)
	}

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		aggregate.Status = fetchlog.StatusError
		aggregate.ErrorDetail = err.Error()
		return aggregate, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan Outcome, len(teams)*2)

	var succeeded, failed, skipped atomic.Int64
	var workers sync.WaitGroup
	for _, item := range teams {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			roster, err := s.rosterOutcome(ctx, item.Abbreviation, season)
			if err != nil {
				s.logger.WarnContext(ctx, "roster sync failed, continuing with next team", "team", item.Abbreviation, "error", err)
			}
			succeeded.Add(int64(roster.Succeeded))
			failed.Add(int64(roster.Failed))
			skipped.Add(int64(roster.Skipped))
			results <- roster

			stats, err := s.teamStatsOutcome(ctx, item.Abbreviation, season)
			if err != nil {
				s.logger.WarnContext(ctx, "team stats sync failed, continuing with next team", "team", item.Abbreviation, "error", err)
			}
			succeeded.Add(int64(stats.Succeeded))
			failed.Add(int64(stats.Failed))
			skipped.Add(int64(stats.Skipped))
			results <- stats
		}); err != nil {
			workers.Done()
			aggregate.Status = fetchlog.StatusError
			aggregate.ErrorDetail = err.Error()
			return aggregate, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	errored := 0
	for row := range results {
		aggregate.Warnings = append(aggregate.Warnings, row.Warnings...)
		if row.Status == fetchlog.StatusError {
			errored++
		}
		if aggregate.ErrorDetail == "" && row.ErrorDetail != "" {
			aggregate.ErrorDetail = row.ErrorDetail
		}
	}

	aggregate.Succeeded += int(succeeded.Load())
	aggregate.Failed += int(failed.Load()) + errored
	aggregate.Skipped += int(skipped.Load())
	aggregate.finish()

	return aggregate, ctx.Err()
}

func (s *SyncService) dropMalformed(ctx context.Context, outcome *Outcome, malformed []MalformedRecordError) {
	for _, item := range malformed {
		outcome.recordFailure(item.Error())
		s.logger.WarnContext(ctx, "dropping malformed record", "kind", item.Kind, "remote_id", item.RemoteID, "field", item.Field)
	}
}

func (s *SyncService) resolveSeason(ctx context.Context, season string) (string, error) {
	if strings.TrimSpace(season) != "" {
		return strings.TrimSpace(season), nil
	}

	resolved, err := s.provider.CurrentSeason(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve current season: %w", err)
	}

	return resolved, nil
}

// appendAudit writes the single fetch_log row for an operation. A failed
// audit write never rolls back reconciled data; it is logged and swallowed.
func (s *SyncService) appendAudit(ctx context.Context, outcome Outcome) {
	entry := fetchlog.Entry{
		FetchType:       outcome.FetchType,
		FetchDate:       s.now().UTC(),
		Status:          outcome.Status,
		RecordsFetched:  outcome.Succeeded,
		ErrorMessage:    outcome.ErrorDetail,
		DurationSeconds: outcome.Duration.Seconds(),
	}
	if _, err := s.fetchLogs.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "append fetch log entry failed", "fetch_type", outcome.FetchType, "error", err)
	}
}

func deriveStatus(succeeded, failed int) string {
	switch {
	case failed == 0:
		return fetchlog.StatusSuccess
	case succeeded > 0:
		return fetchlog.StatusPartial
	default:
		return fetchlog.StatusError
	}
}
