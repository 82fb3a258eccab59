package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/cache"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

type stubProvider struct {
	scoreboard      ExternalScoreboard
	scoreboardErr   error
	scoreboardCalls atomic.Int32

	summary     ExternalGameSummary
	summaryErr  error
	summaryByID map[string]ExternalGameSummary
}

func (s *stubProvider) FetchScoreboard(_ context.Context, _ string) (ExternalScoreboard, error) {
	s.scoreboardCalls.Add(1)
	return s.scoreboard, s.scoreboardErr
}

func (s *stubProvider) FetchGameSummary(_ context.Context, gameID string) (ExternalGameSummary, error) {
	if s.summaryByID != nil {
		return s.summaryByID[gameID], s.summaryErr
	}
	return s.summary, s.summaryErr
}

func scoreboardEvent(id, state string, period, homeScore, awayScore int) ExternalEvent {
	return ExternalEvent{
		ID:          id,
		StatusState: state,
		StatusText:  "",
		Period:      period,
		StartsAt:    time.Date(2025, time.December, 25, 20, 0, 0, 0, time.UTC),
		Competitors: []ExternalCompetitor{
			{ID: id + "-h", DisplayName: "Oklahoma City Thunder", Abbreviation: "OKC", HomeAway: "home", Record: "20-5", Score: intPtr(homeScore)},
			{ID: id + "-a", DisplayName: "Denver Nuggets", Abbreviation: "DEN", HomeAway: "away", Record: "18-7", Score: intPtr(awayScore)},
		},
	}
}

func intPtr(v int) *int { return &v }

func TestGetScoreboard_RejectsBadDate(t *testing.T) {
	t.Parallel()

	svc := NewScoreboardService(&stubProvider{}, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{})
	_, err := svc.GetScoreboard(context.Background(), "2025-12-25")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetScoreboard_NormalizesRanksAndCaches(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		scoreboard: ExternalScoreboard{
			Events: []ExternalEvent{
				scoreboardEvent("blowout", "post", 4, 130, 100),
				scoreboardEvent("close", "in", 4, 88, 85),
			},
		},
	}
	provider.scoreboard.Events[0].Completed = true

	svc := NewScoreboardService(provider, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{MaxWorkers: 2})

	board, err := svc.GetScoreboard(context.Background(), "20251225")
	if err != nil {
		t.Fatalf("get scoreboard: %v", err)
	}
	if len(board.Games) != 2 {
		t.Fatalf("games=%d", len(board.Games))
	}
	if board.Games[0].ID != "close" {
		t.Fatalf("live close game must rank first, got %q", board.Games[0].ID)
	}
	if board.Games[0].Status != game.StatusLive || board.Games[1].Status != game.StatusFinal {
		t.Fatalf("statuses=%s/%s", board.Games[0].Status, board.Games[1].Status)
	}
	if len(board.Featured) != 1 || board.Featured[0].ID != "close" {
		t.Fatalf("featured=%+v", board.Featured)
	}

	if _, err := svc.GetScoreboard(context.Background(), "20251225"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls := provider.scoreboardCalls.Load(); calls != 1 {
		t.Fatalf("cached date must not refetch, calls=%d", calls)
	}
}

func TestGetScoreboard_ReconcilesStaleScheduledStatus(t *testing.T) {
	t.Parallel()

	// Upstream still says pre-game while both teams have points on the board.
	provider := &stubProvider{
		scoreboard: ExternalScoreboard{
			Events: []ExternalEvent{scoreboardEvent("stale", "pre", 2, 45, 41)},
		},
	}

	svc := NewScoreboardService(provider, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{})
	board, err := svc.GetScoreboard(context.Background(), "20251225")
	if err != nil {
		t.Fatalf("get scoreboard: %v", err)
	}
	if board.Games[0].Status != game.StatusLive {
		t.Fatalf("status=%s want live", board.Games[0].Status)
	}
}

func TestGetScoreboard_MarqueeConfigApplied(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		scoreboard: ExternalScoreboard{
			Events: []ExternalEvent{scoreboardEvent("g1", "in", 3, 60, 40)},
		},
	}

	svc := NewScoreboardService(provider, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{
		Marquee: game.MarqueeConfig{Teams: []string{"OKC"}},
	})
	board, err := svc.GetScoreboard(context.Background(), "20251225")
	if err != nil {
		t.Fatalf("get scoreboard: %v", err)
	}
	if !board.Games[0].IsMarquee {
		t.Fatalf("configured marquee franchise not flagged: %+v", board.Games[0])
	}
	if got := game.Priority(board.Games[0]); got != game.PriorityLiveMarquee {
		t.Fatalf("priority=%d", got)
	}
}

func TestGetScoreboard_EmptyDayYieldsEmptyLists(t *testing.T) {
	t.Parallel()

	svc := NewScoreboardService(&stubProvider{}, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{})
	board, err := svc.GetScoreboard(context.Background(), "20250701")
	if err != nil {
		t.Fatalf("get scoreboard: %v", err)
	}
	if len(board.Games) != 0 || len(board.Featured) != 0 || len(board.Other) != 0 {
		t.Fatalf("expected empty lists: %+v", board)
	}
}

func TestGetScoreboard_ProviderErrorPropagates(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{scoreboardErr: errors.New("upstream down")}
	svc := NewScoreboardService(provider, cache.NewStore(time.Minute), logging.NewNop(), ScoreboardServiceConfig{})
	if _, err := svc.GetScoreboard(context.Background(), "20251225"); err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}
