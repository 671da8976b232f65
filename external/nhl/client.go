package nhl

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/pucktrack/pucktrack/internal/platform/cache"
	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/platform/resilience"
	"github.com/pucktrack/pucktrack/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL        = "https://api-web.nhle.com/v1"
	regularSeasonGameType = 2

	baseRetryDelay = 500 * time.Millisecond
	maxRetryDelay  = 8 * time.Second
	maxBodyBytes   = 6 << 20

	seasonCacheTTL = time.Hour
	seasonCacheKey = "current_season"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RateLimitRPS   float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the public NHL API. It never mutates local state: every
// method fetches, validates, and maps remote payloads into transport records,
// returning malformed records separately so callers can count them as
// per-record failures.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	limiter        *rate.Limiter
	validate       *validator.Validate
	seasonCache    *cache.Store
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		limiter:        limiter,
		validate:       validator.New(),
		seasonCache:    cache.NewStore(seasonCacheTTL),
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.TeamRecord, []usecase.MalformedRecordError, error) {
	var envelope standingsEnvelope
	if err := c.doJSON(ctx, "/standings/now", &envelope); err != nil {
		return nil, nil, fmt.Errorf("fetch standings: %w", err)
	}

	records := make([]usecase.TeamRecord, 0, len(envelope.Standings))
	var malformed []usecase.MalformedRecordError
	seen := make(map[string]struct{}, len(envelope.Standings))

	for _, row := range envelope.Standings {
		rec := mapStandingToTeam(row)
		if _, dup := seen[rec.Abbreviation]; dup && rec.Abbreviation != "" {
			continue
		}

		if bad := c.checkRecord("team", rec.NHLID, rec); bad != nil {
			malformed = append(malformed, *bad)
			continue
		}

		seen[rec.Abbreviation] = struct{}{}
		records = append(records, rec)
	}

	return records, malformed, nil
}

func (c *Client) FetchRoster(ctx context.Context, teamAbbrev, season string) ([]usecase.PlayerRecord, []usecase.MalformedRecordError, error) {
	path := fmt.Sprintf("/roster/%s/%s", teamAbbrev, season)
	var envelope rosterEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, nil, fmt.Errorf("fetch roster team=%s season=%s: %w", teamAbbrev, season, err)
	}

	groups := [][]rosterPlayer{envelope.Forwards, envelope.Defensemen, envelope.Goalies}
	records := make([]usecase.PlayerRecord, 0, len(envelope.Forwards)+len(envelope.Defensemen)+len(envelope.Goalies))
	var malformed []usecase.MalformedRecordError

	for _, group := range groups {
		for _, item := range group {
			rec := mapRosterPlayer(item, teamAbbrev)
			if bad := c.checkRecord("player", rec.NHLID, rec); bad != nil {
				malformed = append(malformed, *bad)
				continue
			}
			records = append(records, rec)
		}
	}

	return records, malformed, nil
}

func (c *Client) FetchTeamStats(ctx context.Context, teamAbbrev, season string) (usecase.TeamStatRecord, error) {
	path := "/standings/" + season
	var envelope standingsEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return usecase.TeamStatRecord{}, fmt.Errorf("fetch standings season=%s: %w", season, err)
	}

	for _, row := range envelope.Standings {
		if row.TeamAbbrev.Value != teamAbbrev {
			continue
		}
		rec := mapStandingToTeamStats(row)
		if bad := c.checkRecord("team_stats", 0, rec); bad != nil {
			return usecase.TeamStatRecord{}, *bad
		}
		return rec, nil
	}

	return usecase.TeamStatRecord{}, fmt.Errorf("%w: no standings row for team %s season %s", usecase.ErrNotFound, teamAbbrev, season)
}

func (c *Client) FetchPlayerLanding(ctx context.Context, playerNHLID int64) (usecase.PlayerDetailRecord, error) {
	path := fmt.Sprintf("/player/%d/landing", playerNHLID)
	var envelope playerLandingEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return usecase.PlayerDetailRecord{}, fmt.Errorf("fetch player landing nhl_id=%d: %w", playerNHLID, err)
	}

	detail := mapPlayerLanding(envelope)
	if bad := c.checkRecord("player", detail.NHLID, detail.PlayerRecord); bad != nil {
		return usecase.PlayerDetailRecord{}, *bad
	}

	return detail, nil
}

func (c *Client) FetchSchedule(ctx context.Context, date time.Time) ([]usecase.GameRecord, []usecase.MalformedRecordError, error) {
	path := "/schedule/" + date.Format("2006-01-02")
	var envelope scheduleEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, nil, fmt.Errorf("fetch schedule date=%s: %w", date.Format("2006-01-02"), err)
	}

	var records []usecase.GameRecord
	var malformed []usecase.MalformedRecordError

	for _, day := range envelope.GameWeek {
		for _, item := range day.Games {
			rec := mapScheduleGame(item)
			if bad := c.checkRecord("game", rec.NHLID, rec); bad != nil {
				malformed = append(malformed, *bad)
				continue
			}
			records = append(records, rec)
		}
	}

	return records, malformed, nil
}

// CurrentSeason reads the season id from the live standings, falling back to
// the October-rollover date rule when the remote is unreachable. A remote
// answer is cached for an hour so fetch-all does not hit the standings twice;
// the date-derived fallback is never cached, so the next call retries the
// standings.
func (c *Client) CurrentSeason(ctx context.Context) (string, error) {
	season, err := c.seasonCache.GetOrLoad(ctx, seasonCacheKey, func(ctx context.Context) (any, error) {
		return c.lookupCurrentSeason(ctx)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "standings unavailable, deriving season from date", "error", err)
		return seasonFromDate(time.Now().UTC()), nil
	}

	return season.(string), nil
}

func (c *Client) lookupCurrentSeason(ctx context.Context) (any, error) {
	var envelope standingsEnvelope
	if err := c.doJSON(ctx, "/standings/now", &envelope); err != nil {
		return nil, err
	}

	for _, row := range envelope.Standings {
		if row.SeasonID > 0 {
			return fmt.Sprintf("%d", row.SeasonID), nil
		}
	}

	return seasonFromDate(time.Now().UTC()), nil
}

// checkRecord runs required-field validation and converts the first failure
// into a MalformedRecordError.
func (c *Client) checkRecord(kind string, remoteID int64, rec any) *usecase.MalformedRecordError {
	err := c.validate.Struct(rec)
	if err == nil {
		return nil
	}

	field := "unknown"
	var invalid validator.ValidationErrors
	if stderrors.As(err, &invalid) && len(invalid) > 0 {
		field = invalid[0].Field()
	}

	return &usecase.MalformedRecordError{Kind: kind, RemoteID: remoteID, Field: field}
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "nhl circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: nhl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, usecase.ErrTransientFetch) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode nhl payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("user-agent", "pucktrack/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", usecase.ErrTransientFetch, err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", usecase.ErrTransientFetch, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: nhl api status=404 body=%s", usecase.ErrNotFound, abbreviateBody(raw))
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: nhl api status=%d body=%s", usecase.ErrTransientFetch, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("nhl api status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(retryDelay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: nhl api request failed", usecase.ErrTransientFetch)
	}
	c.logger.WarnContext(ctx, "nhl api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(body, maxBodyBytes)); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

// retryDelay doubles per attempt, capped so a long retry budget cannot stall
// a scheduled run.
func retryDelay(attempt int) time.Duration {
	delay := baseRetryDelay << uint(attempt)
	if delay > maxRetryDelay || delay <= 0 {
		return maxRetryDelay
	}
	return delay
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func seasonFromDate(today time.Time) string {
	// The NHL season rolls over in October.
	if today.Month() >= time.October {
		return fmt.Sprintf("%d%d", today.Year(), today.Year()+1)
	}
	return fmt.Sprintf("%d%d", today.Year()-1, today.Year())
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
