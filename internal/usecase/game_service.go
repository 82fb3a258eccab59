package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/boxscore"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/injury"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/series"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/story"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/teamstats"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/cache"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

// GameDetail is the full single-game response: the classified game plus its
// derived sections. A section the upstream data cannot support is nil, never
// an empty placeholder.
type GameDetail struct {
	game.Game
	Boxscore       *boxscore.Boxscore         `json:"boxscore,omitempty"`
	TeamStatistics []teamstats.TeamStatistics `json:"teamStatistics,omitempty"`
	GameStory      *story.GameStory           `json:"gameStory,omitempty"`
	SeasonSeries   *series.SeasonSeries       `json:"seasonSeries,omitempty"`
	Injuries       *injury.GameInjuries       `json:"injuries,omitempty"`
}

type GameServiceConfig struct {
	Marquee game.MarqueeConfig
}

type GameService struct {
	provider  SportsDataProvider
	narrative NarrativeProvider
	cache     *cache.Store
	logger    *logging.Logger
	marquee   game.MarqueeConfig
}

func NewGameService(provider SportsDataProvider, narrative NarrativeProvider, store *cache.Store, logger *logging.Logger, cfg GameServiceConfig) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	marquee := cfg.Marquee
	if len(marquee.Teams) == 0 && len(marquee.Matchups) == 0 {
		marquee = game.DefaultMarqueeConfig()
	}
	return &GameService{
		provider:  provider,
		narrative: narrative,
		cache:     store,
		logger:    logger,
		marquee:   marquee,
	}
}

// GetGame returns the full detail view for one game. Results are cached per
// game id; concurrent callers share one upstream fetch.
func (s *GameService) GetGame(ctx context.Context, gameID string) (GameDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return GameDetail{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return GameDetail{}, fmt.Errorf("%w: sports data provider is not configured", ErrDependencyUnavailable)
	}

	key := "game:" + gameID
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildDetail(ctx, gameID)
	})
	if err != nil {
		return GameDetail{}, err
	}

	detail, ok := value.(GameDetail)
	if !ok {
		return GameDetail{}, fmt.Errorf("unexpected cached game type %T", value)
	}
	return detail, nil
}

func (s *GameService) buildDetail(ctx context.Context, gameID string) (GameDetail, error) {
	summary, err := s.provider.FetchGameSummary(ctx, gameID)
	if err != nil {
		return GameDetail{}, fmt.Errorf("fetch game summary id=%s: %w", gameID, err)
	}
	if summary.Event.ID == "" {
		return GameDetail{}, fmt.Errorf("%w: game %s", ErrNotFound, gameID)
	}

	detail := GameDetail{Game: normalizeEvent(summary.Event, s.marquee)}
	if err := detail.Game.Validate(); err != nil {
		return GameDetail{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	// The boxscore/statistics/story chain is ordered internally, the series
	// and injury sections are independent of it.
	var wg conc.WaitGroup
	wg.Go(func() {
		s.buildStatsSections(ctx, &detail, summary)
	})
	wg.Go(func() {
		detail.SeasonSeries = series.Reconcile(
			detail.ID,
			detail.Home.ID,
			detail.Away.ID,
			summary.SeriesTotalGames,
			mapSeriesEvents(summary.SeriesEvents),
		)
	})
	wg.Go(func() {
		detail.Injuries = injury.Group(mapInjuries(summary.Injuries), detail.Home.ID, detail.Away.ID)
	})
	wg.Wait()

	return detail, nil
}

// buildStatsSections assembles the boxscore, aggregates team statistics and
// generates the story. Each later step is skipped when the earlier one had
// nothing to work with.
func (s *GameService) buildStatsSections(ctx context.Context, detail *GameDetail, summary ExternalGameSummary) {
	blocks := mapStatBlocks(summary.StatBlocks, detail.Home.ID, detail.Away.ID)
	if len(blocks) > 0 {
		box := boxscore.Assemble(detail.Home.ID, detail.Away.ID, blocks)
		detail.Boxscore = &box
	}

	homeInput, homeOK := teamInput(detail.Home.ID, summary.TeamTotals, detail.Boxscore, true)
	awayInput, awayOK := teamInput(detail.Away.ID, summary.TeamTotals, detail.Boxscore, false)
	if !homeOK || !awayOK {
		return
	}

	stats, err := teamstats.Aggregate([]teamstats.TeamInput{homeInput, awayInput})
	if err != nil {
		s.logger.WarnContext(ctx, "aggregate team statistics failed", "game_id", detail.ID, "error", err)
		return
	}
	detail.TeamStatistics = stats

	box := boxscore.Boxscore{}
	if detail.Boxscore != nil {
		box = *detail.Boxscore
	}
	detail.GameStory = story.Generate(detail.Game, stats[0], stats[1], box)
	if detail.GameStory != nil {
		s.applyNarrative(ctx, detail, stats[0], stats[1])
	}
}

// applyNarrative swaps the deterministic summary for provider prose when
// the completion service answers. Any failure keeps the fallback.
func (s *GameService) applyNarrative(ctx context.Context, detail *GameDetail, home, away teamstats.TeamStatistics) {
	if s.narrative == nil {
		return
	}
	facts := story.BuildFacts(detail.Game, home, away)
	text, err := s.narrative.GenerateSummary(ctx, facts)
	if err != nil {
		s.logger.WarnContext(ctx, "narrative provider failed, keeping deterministic summary",
			"game_id", detail.ID,
			"error", err,
		)
		return
	}
	if text = strings.TrimSpace(text); text != "" {
		detail.GameStory.Summary = text
	}
}

// teamInput binds one side's totals and player lines. A side with neither
// totals nor a boxscore presence is unmatchable and disables the section.
func teamInput(teamID string, totals []ExternalTeamTotals, box *boxscore.Boxscore, home bool) (teamstats.TeamInput, bool) {
	input := teamstats.TeamInput{TeamID: teamID}
	for _, total := range totals {
		if total.TeamID != teamID {
			continue
		}
		for _, entry := range total.Entries {
			input.Totals = append(input.Totals, teamstats.StatEntry{
				Name:  entry.Name,
				Value: entry.Value,
			})
		}
	}
	if box != nil {
		side := box.Away
		if home {
			side = box.Home
		}
		input.Lines = side.PlayedLines()
	}
	return input, len(input.Totals) > 0 || len(input.Lines) > 0
}

func mapStatBlocks(blocks []ExternalStatBlock, homeTeamID, awayTeamID string) []boxscore.StatBlock {
	out := make([]boxscore.StatBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.TeamID != homeTeamID && block.TeamID != awayTeamID {
			continue
		}
		mapped := boxscore.StatBlock{
			TeamID: block.TeamID,
			Keys:   block.Keys,
		}
		for _, athlete := range block.Athletes {
			mapped.Athletes = append(mapped.Athletes, boxscore.Athlete{
				ID:         athlete.ID,
				Name:       athlete.Name,
				Jersey:     athlete.Jersey,
				Position:   athlete.Position,
				Starter:    athlete.Starter,
				DidNotPlay: athlete.DidNotPlay,
				DNPReason:  athlete.DNPReason,
				Stats:      athlete.Stats,
			})
		}
		out = append(out, mapped)
	}
	return out
}

func mapSeriesEvents(events []ExternalSeriesEvent) []series.Event {
	out := make([]series.Event, 0, len(events))
	for _, event := range events {
		out = append(out, series.Event{
			GameID:       event.GameID,
			HomeTeamID:   event.HomeTeamID,
			AwayTeamID:   event.AwayTeamID,
			HomeScore:    event.HomeScore,
			AwayScore:    event.AwayScore,
			Completed:    event.Completed,
			WinnerTeamID: event.WinnerTeamID,
			ScheduledAt:  event.ScheduledAt,
			StatusText:   event.StatusText,
		})
	}
	return out
}

func mapInjuries(items []ExternalInjury) []injury.Item {
	out := make([]injury.Item, 0, len(items))
	for _, item := range items {
		mapped := injury.Item{
			AthleteID: item.AthleteID,
			Name:      item.Name,
			Position:  item.Position,
			TeamID:    item.TeamID,
			Status:    item.Status,
		}
		if item.DetailType != "" || item.DetailLocation != "" || item.DetailText != "" || item.DetailSide != "" || item.ReturnDate != "" {
			mapped.Detail = &injury.Detail{
				Type:       item.DetailType,
				Location:   item.DetailLocation,
				Detail:     item.DetailText,
				Side:       item.DetailSide,
				ReturnDate: item.ReturnDate,
			}
		}
		out = append(out, mapped)
	}
	return out
}
