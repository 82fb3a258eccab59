package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/cache"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

const scoreboardDateLayout = "20060102"

// Scoreboard is the ranked day view returned to callers. Games carries the
// full ranked order; Featured and Other are the capped display subsets.
type Scoreboard struct {
	Date     string      `json:"date"`
	Games    []game.Game `json:"games"`
	Featured []game.Game `json:"featured"`
	Other    []game.Game `json:"other"`
}

type ScoreboardServiceConfig struct {
	MaxWorkers int
	Marquee    game.MarqueeConfig
}

type ScoreboardService struct {
	provider   SportsDataProvider
	cache      *cache.Store
	logger     *logging.Logger
	marquee    game.MarqueeConfig
	maxWorkers int
}

func NewScoreboardService(provider SportsDataProvider, store *cache.Store, logger *logging.Logger, cfg ScoreboardServiceConfig) *ScoreboardService {
	if logger == nil {
		logger = logging.Default()
	}
	marquee := cfg.Marquee
	if len(marquee.Teams) == 0 && len(marquee.Matchups) == 0 {
		marquee = game.DefaultMarqueeConfig()
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = 4
	}
	return &ScoreboardService{
		provider:   provider,
		cache:      store,
		logger:     logger,
		marquee:    marquee,
		maxWorkers: workers,
	}
}

// GetScoreboard returns the normalized, ranked scoreboard for one date
// (YYYYMMDD). Results are cached per date; concurrent callers for the same
// date share a single upstream fetch.
func (s *ScoreboardService) GetScoreboard(ctx context.Context, date string) (Scoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.GetScoreboard")
	defer span.End()

	date = strings.TrimSpace(date)
	if _, err := time.Parse(scoreboardDateLayout, date); err != nil {
		return Scoreboard{}, fmt.Errorf("%w: date must be formatted YYYYMMDD", ErrInvalidInput)
	}
	if s.provider == nil {
		return Scoreboard{}, fmt.Errorf("%w: sports data provider is not configured", ErrDependencyUnavailable)
	}

	key := "scoreboard:" + date
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildScoreboard(ctx, date)
	})
	if err != nil {
		return Scoreboard{}, err
	}

	board, ok := value.(Scoreboard)
	if !ok {
		return Scoreboard{}, fmt.Errorf("unexpected cached scoreboard type %T", value)
	}
	return board, nil
}

func (s *ScoreboardService) buildScoreboard(ctx context.Context, date string) (Scoreboard, error) {
	raw, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		return Scoreboard{}, fmt.Errorf("fetch scoreboard date=%s: %w", date, err)
	}

	games, err := s.normalizeEvents(raw.Events)
	if err != nil {
		return Scoreboard{}, err
	}

	ranking := game.Rank(games)
	s.logger.InfoContext(ctx, "scoreboard built",
		"date", date,
		"games", len(ranking.All),
		"featured", len(ranking.Featured),
	)

	return Scoreboard{
		Date:     date,
		Games:    ranking.All,
		Featured: ranking.Featured,
		Other:    ranking.Other,
	}, nil
}

// normalizeEvents classifies every event on a bounded worker pool. Each
// worker writes into its own slot so the provider's ordering survives and
// the ranker's stable sort stays meaningful.
func (s *ScoreboardService) normalizeEvents(events []ExternalEvent) ([]game.Game, error) {
	if len(events) == 0 {
		return []game.Game{}, nil
	}

	workers := s.maxWorkers
	if workers > len(events) {
		workers = len(events)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create normalize pool: %w", err)
	}
	defer pool.Release()

	out := make([]game.Game, len(events))
	var wg sync.WaitGroup
	for i, event := range events {
		i, event := i, event
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = normalizeEvent(event, s.marquee)
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit normalize task: %w", err)
		}
	}
	wg.Wait()

	games := make([]game.Game, 0, len(out))
	for _, g := range out {
		if g.ID == "" {
			continue
		}
		games = append(games, g)
	}
	return games, nil
}
