package nhl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/platform/resilience"
	"github.com/pucktrack/pucktrack/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler, maxRetries int) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
	return client, server
}

const standingsPayload = `{
  "standings": [
    {
      "seasonId": 20232024,
      "teamAbbrev": {"default": "TOR"},
      "teamName": {"default": "Toronto Maple Leafs"},
      "teamCommonName": {"default": "Maple Leafs"},
      "placeName": {"default": "Toronto"},
      "teamLogo": "https://assets.nhle.com/logos/nhl/svg/10.svg",
      "conferenceName": "Eastern",
      "divisionName": "Atlantic",
      "gamesPlayed": 82, "wins": 46, "losses": 26, "otLosses": 10,
      "points": 102, "pointPctg": 0.622,
      "goalFor": 303, "goalAgainst": 263, "goalDifferential": 40
    },
    {
      "seasonId": 20232024,
      "teamAbbrev": "BOS",
      "teamName": "Boston Bruins",
      "placeName": "Boston",
      "teamLogo": "https://assets.nhle.com/logos/nhl/svg/6.svg",
      "conferenceName": "Eastern",
      "divisionName": "Atlantic",
      "gamesPlayed": 82, "wins": 47, "losses": 20, "otLosses": 15,
      "points": 109, "pointPctg": 0.665,
      "goalFor": 267, "goalAgainst": 224, "goalDifferential": 43
    },
    {
      "seasonId": 20232024,
      "teamAbbrev": {"default": "XXX"},
      "teamName": {"default": "Phantom Club"},
      "placeName": {"default": "Nowhere"},
      "teamLogo": "not-a-logo-url"
    }
  ]
}`

func TestFetchTeams_ParsesStandings(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/standings/now" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(standingsPayload))
	}), 0)

	records, malformed, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 teams, got=%d", len(records))
	}
	if len(malformed) != 1 {
		t.Fatalf("expected 1 malformed record, got=%d", len(malformed))
	}

	tor := records[0]
	if tor.NHLID != 10 {
		t.Fatalf("expected nhl_id=10 from logo url, got=%d", tor.NHLID)
	}
	if tor.Name != "Toronto Maple Leafs" || tor.Abbreviation != "TOR" || tor.City != "Toronto" {
		t.Fatalf("unexpected TOR mapping: %+v", tor)
	}
	if tor.Conference != "Eastern" || tor.Division != "Atlantic" {
		t.Fatalf("unexpected TOR conference/division: %+v", tor)
	}

	// Second row exercises the plain-string name shape.
	bos := records[1]
	if bos.NHLID != 6 || bos.Name != "Boston Bruins" || bos.Abbreviation != "BOS" {
		t.Fatalf("unexpected BOS mapping: %+v", bos)
	}

	if malformed[0].Field != "NHLID" {
		t.Fatalf("expected NHLID validation failure, got field=%s", malformed[0].Field)
	}
}

func TestFetchRoster_FlattensPositionGroups(t *testing.T) {
	t.Parallel()

	payload := `{
	  "forwards": [{"id": 8479318, "firstName": {"default": "Auston"}, "lastName": {"default": "Matthews"}, "sweaterNumber": 34, "positionCode": "C", "shootsCatches": "L", "heightInInches": 75, "weightInPounds": 215, "birthDate": "1997-09-17", "birthCity": {"default": "San Ramon"}, "birthCountry": "USA"}],
	  "defensemen": [{"id": 8480157, "firstName": {"default": "Jake"}, "lastName": {"default": "McCabe"}, "positionCode": "D"}],
	  "goalies": [{"id": 8479361, "firstName": {"default": "Joseph"}, "lastName": {"default": "Woll"}, "positionCode": "G"}, {"id": 8470000, "firstName": {"default": ""}, "lastName": {"default": "Nameless"}}]
	}`

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roster/TOR/20232024" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(payload))
	}), 0)

	records, malformed, err := client.FetchRoster(context.Background(), "TOR", "20232024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 players, got=%d", len(records))
	}
	if len(malformed) != 1 {
		t.Fatalf("expected 1 malformed player, got=%d", len(malformed))
	}
	if malformed[0].Field != "FirstName" {
		t.Fatalf("expected FirstName failure, got=%s", malformed[0].Field)
	}

	first := records[0]
	if first.NHLID != 8479318 || first.FirstName != "Auston" || first.LastName != "Matthews" {
		t.Fatalf("unexpected first player: %+v", first)
	}
	if first.JerseyNumber == nil || *first.JerseyNumber != 34 {
		t.Fatalf("expected jersey 34, got=%v", first.JerseyNumber)
	}
	if first.BirthDate == nil || first.BirthDate.Format("2006-01-02") != "1997-09-17" {
		t.Fatalf("expected birth date 1997-09-17, got=%v", first.BirthDate)
	}
	if first.TeamAbbreviation != "TOR" {
		t.Fatalf("expected team abbreviation TOR, got=%s", first.TeamAbbreviation)
	}

	// Order is forwards, defensemen, goalies.
	if records[1].Position != "D" || records[2].Position != "G" {
		t.Fatalf("unexpected positional order: %+v", records)
	}
}

func TestFetchTeamStats_MatchesAbbreviation(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/standings/20232024" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(standingsPayload))
	}), 0)

	rec, err := client.FetchTeamStats(context.Background(), "BOS", "20232024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Wins != 47 || rec.Points != 109 || rec.GoalDifferential != 43 {
		t.Fatalf("unexpected BOS stats: %+v", rec)
	}
	if rec.PointPct == nil || *rec.PointPct != 0.665 {
		t.Fatalf("expected point pct 0.665, got=%v", rec.PointPct)
	}

	if _, err := client.FetchTeamStats(context.Background(), "ZZZ", "20232024"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got=%v", err)
	}
}

func TestFetchPlayerLanding_FiltersSeasonTotals(t *testing.T) {
	t.Parallel()

	payload := `{
	  "playerId": 8479318,
	  "firstName": {"default": "Auston"},
	  "lastName": {"default": "Matthews"},
	  "position": "C",
	  "currentTeamAbbrev": "TOR",
	  "seasonTotals": [
	    {"season": 20232024, "gameTypeId": 2, "leagueAbbrev": "NHL", "gamesPlayed": 81, "goals": 69, "assists": 38, "points": 107, "shootingPctg": 0.197, "avgToi": "20:44"},
	    {"season": 20232024, "gameTypeId": 3, "leagueAbbrev": "NHL", "gamesPlayed": 7, "goals": 1},
	    {"season": 20152016, "gameTypeId": 2, "leagueAbbrev": "NL", "gamesPlayed": 36, "goals": 24}
	  ]
	}`

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/player/8479318/landing" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(payload))
	}), 0)

	detail, err := client.FetchPlayerLanding(context.Background(), 8479318)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.SeasonTotals) != 1 {
		t.Fatalf("expected only the NHL regular-season row, got=%d", len(detail.SeasonTotals))
	}

	total := detail.SeasonTotals[0]
	if total.Season != "20232024" || total.Goals != 69 || total.Points != 107 {
		t.Fatalf("unexpected season total: %+v", total)
	}
	if total.TimeOnIcePerGame == nil || *total.TimeOnIcePerGame < 20.7 || *total.TimeOnIcePerGame > 20.8 {
		t.Fatalf("expected avg toi ~20.73 minutes, got=%v", total.TimeOnIcePerGame)
	}
}

func TestFetchSchedule_MapsGames(t *testing.T) {
	t.Parallel()

	payload := `{
	  "gameWeek": [
	    {"date": "2024-01-10", "games": [
	      {"id": 2023020712, "season": 20232024, "gameType": 2, "startTimeUTC": "2024-01-11T00:00:00Z", "gameState": "FUT", "venue": {"default": "Scotiabank Arena"}, "homeTeam": {"abbrev": "TOR"}, "awayTeam": {"abbrev": "BOS"}},
	      {"id": 2023020713, "season": 20232024, "gameType": 2, "startTimeUTC": "2024-01-11T02:00:00Z", "gameState": "OFF", "venue": {"default": "Rogers Arena"}, "homeTeam": {"abbrev": "VAN", "score": 4}, "awayTeam": {"abbrev": "CGY", "score": 3}}
	    ]}
	  ]
	}`

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schedule/2024-01-10" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(payload))
	}), 0)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	records, malformed, err := client.FetchSchedule(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(malformed) != 0 {
		t.Fatalf("expected no malformed games, got=%d", len(malformed))
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 games, got=%d", len(records))
	}

	finished := records[1]
	if finished.HomeScore == nil || *finished.HomeScore != 4 || finished.AwayScore == nil || *finished.AwayScore != 3 {
		t.Fatalf("unexpected scores: %+v", finished)
	}
	if finished.GameState != "OFF" || finished.Venue != "Rogers Arena" {
		t.Fatalf("unexpected game mapping: %+v", finished)
	}
}

func TestExecuteRequest_RetriesTransientStatuses(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(standingsPayload))
	}), 3)

	records, _, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got=%v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 teams, got=%d", len(records))
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got=%d", calls.Load())
	}
}

func TestExecuteRequest_DoesNotRetryNotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}), 3)

	_, _, err := client.FetchRoster(context.Background(), "ZZZ", "20232024")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt on 404, got=%d", calls.Load())
	}
}

func TestExecuteRequest_ExhaustsRetriesAsTransient(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}), 1)

	_, _, err := client.FetchTeams(context.Background())
	if !errors.Is(err, usecase.ErrTransientFetch) {
		t.Fatalf("expected ErrTransientFetch, got=%v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts with MaxRetries=1, got=%d", calls.Load())
	}
}

func TestCircuitBreaker_RejectsAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Timeout:    time.Second,
		MaxRetries: 0,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, _, err := client.FetchTeams(ctx); err == nil {
			t.Fatal("expected failure against broken upstream")
		}
	}

	_, _, err := client.FetchTeams(ctx)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got=%v", err)
	}
}

func TestCurrentSeason_CachedAcrossCalls(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(standingsPayload))
	})
	client, _ := newTestClient(t, handler, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		season, err := client.CurrentSeason(ctx)
		if err != nil {
			t.Fatalf("current season: %v", err)
		}
		if season != "20232024" {
			t.Fatalf("expected 20232024, got=%s", season)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one standings request, got=%d", got)
	}
}

func TestCurrentSeason_FallbackNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(standingsPayload))
	})
	client, _ := newTestClient(t, handler, 0)
	ctx := context.Background()

	// The outage answer comes from the date rule and must not stick.
	season, err := client.CurrentSeason(ctx)
	if err != nil {
		t.Fatalf("current season during outage: %v", err)
	}
	if want := seasonFromDate(time.Now().UTC()); season != want {
		t.Fatalf("expected date-derived season %s, got=%s", want, season)
	}

	season, err = client.CurrentSeason(ctx)
	if err != nil {
		t.Fatalf("current season after recovery: %v", err)
	}
	if season != "20232024" {
		t.Fatalf("expected remote season after recovery, got=%s", season)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected a retry against the standings, got %d requests", got)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if client.baseURL != "https://api-web.nhle.com/v1" {
		t.Fatalf("unexpected default base url: %s", client.baseURL)
	}
}

func TestSeasonFromDate(t *testing.T) {
	t.Parallel()

	october := time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)
	if got := seasonFromDate(october); got != "20232024" {
		t.Fatalf("expected 20232024, got=%s", got)
	}

	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if got := seasonFromDate(march); got != "20232024" {
		t.Fatalf("expected 20232024, got=%s", got)
	}
}

func TestParseTimeOnIce(t *testing.T) {
	t.Parallel()

	if got := parseTimeOnIce("18:30"); got == nil || *got != 18.5 {
		t.Fatalf("expected 18.5, got=%v", got)
	}
	if got := parseTimeOnIce(""); got != nil {
		t.Fatalf("expected nil for empty input, got=%v", got)
	}
	if got := parseTimeOnIce("garbage"); got != nil {
		t.Fatalf("expected nil for garbage input, got=%v", got)
	}
}
