package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/story"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/cache"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

type stubNarrative struct {
	text  string
	err   error
	facts *story.GameFacts
}

func (s *stubNarrative) GenerateSummary(_ context.Context, facts story.GameFacts) (string, error) {
	s.facts = &facts
	return s.text, s.err
}

func finalSummary() ExternalGameSummary {
	event := scoreboardEvent("g1", "post", 4, 112, 104)
	event.Completed = true
	return ExternalGameSummary{
		Event: event,
		StatBlocks: []ExternalStatBlock{
			{
				TeamID: "g1-h",
				Keys:   []string{"points", "rebounds", "assists"},
				Athletes: []ExternalAthleteLine{
					{ID: "h1", Name: "Home Star", Starter: true, Stats: []any{34, 11, 6}},
					{ID: "h2", Name: "Home Bench", Stats: []any{12, 3, 2}},
				},
			},
			{
				TeamID: "g1-a",
				Keys:   []string{"points", "rebounds", "assists"},
				Athletes: []ExternalAthleteLine{
					{ID: "a1", Name: "Away Star", Starter: true, Stats: []any{30, 5, 4}},
				},
			},
		},
		TeamTotals: []ExternalTeamTotals{
			{TeamID: "g1-h", Entries: []ExternalStatEntry{
				{Name: "points", Value: "112"},
				{Name: "totalRebounds", Value: "48"},
			}},
			{TeamID: "g1-a", Entries: []ExternalStatEntry{
				{Name: "points", Value: "104"},
				{Name: "totalRebounds", Value: "40"},
			}},
		},
		SeriesTotalGames: 4,
		SeriesEvents: []ExternalSeriesEvent{
			{GameID: "g1", HomeTeamID: "g1-h", AwayTeamID: "g1-a", ScheduledAt: time.Now()},
			{GameID: "earlier", HomeTeamID: "g1-a", AwayTeamID: "g1-h", Completed: true, WinnerTeamID: "g1-h", ScheduledAt: time.Now().AddDate(0, -1, 0)},
		},
		Injuries: []ExternalInjury{
			{AthleteID: "a9", Name: "Hurt Wing", TeamID: "g1-a", Status: "Out", DetailType: "Ankle", DetailText: "Sprain"},
		},
	}
}

func newGameService(provider SportsDataProvider, narrative NarrativeProvider) *GameService {
	return NewGameService(provider, narrative, cache.NewStore(time.Minute), logging.NewNop(), GameServiceConfig{})
}

func TestGetGame_RequiresID(t *testing.T) {
	t.Parallel()

	svc := newGameService(&stubProvider{}, nil)
	if _, err := svc.GetGame(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetGame_UnknownGame(t *testing.T) {
	t.Parallel()

	svc := newGameService(&stubProvider{}, nil)
	if _, err := svc.GetGame(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetGame_BuildsAllSections(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{summary: finalSummary()}
	svc := newGameService(provider, nil)

	detail, err := svc.GetGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}

	if detail.Status != game.StatusFinal {
		t.Fatalf("status=%s", detail.Status)
	}
	if detail.Boxscore == nil || len(detail.Boxscore.Home.Starters) != 1 || len(detail.Boxscore.Home.Bench) != 1 {
		t.Fatalf("boxscore=%+v", detail.Boxscore)
	}
	if len(detail.TeamStatistics) != 2 || detail.TeamStatistics[0].Points != 112 || detail.TeamStatistics[1].Points != 104 {
		t.Fatalf("team statistics=%+v", detail.TeamStatistics)
	}
	if detail.GameStory == nil || detail.GameStory.Summary == "" {
		t.Fatalf("story missing: %+v", detail.GameStory)
	}
	if detail.GameStory.MVP == nil || detail.GameStory.MVP.TeamID != "g1-h" {
		t.Fatalf("mvp must come from the winner: %+v", detail.GameStory.MVP)
	}
	if detail.SeasonSeries == nil || detail.SeasonSeries.HomeWins != 1 || detail.SeasonSeries.TotalGames != 4 {
		t.Fatalf("season series=%+v", detail.SeasonSeries)
	}
	if detail.SeasonSeries.Events[0].GameID != "g1" {
		t.Fatalf("current game must pin first: %+v", detail.SeasonSeries.Events)
	}
	if detail.Injuries == nil || len(detail.Injuries.Away) != 1 || detail.Injuries.Away[0].Status != "Ankle - Sprain" {
		t.Fatalf("injuries=%+v", detail.Injuries)
	}
}

func TestGetGame_SectionsOmittedWithoutData(t *testing.T) {
	t.Parallel()

	event := scoreboardEvent("g2", "pre", 0, 0, 0)
	event.Competitors[0].Score = nil
	event.Competitors[1].Score = nil
	provider := &stubProvider{summary: ExternalGameSummary{Event: event}}

	detail, err := newGameService(provider, nil).GetGame(context.Background(), "g2")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if detail.Boxscore != nil || detail.TeamStatistics != nil || detail.GameStory != nil {
		t.Fatalf("stat sections should be nil pre-game: %+v", detail)
	}
	if detail.SeasonSeries != nil || detail.Injuries != nil {
		t.Fatalf("series and injuries should be nil without data: %+v", detail)
	}
}

func TestGetGame_NarrativeReplacesSummary(t *testing.T) {
	t.Parallel()

	narrative := &stubNarrative{text: "An instant classic in Oklahoma City."}
	svc := newGameService(&stubProvider{summary: finalSummary()}, narrative)

	detail, err := svc.GetGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if detail.GameStory.Summary != "An instant classic in Oklahoma City." {
		t.Fatalf("summary=%q", detail.GameStory.Summary)
	}
	if narrative.facts == nil || narrative.facts.Final != "104-112" {
		t.Fatalf("facts snapshot=%+v", narrative.facts)
	}
}

func TestGetGame_NarrativeFailureKeepsFallback(t *testing.T) {
	t.Parallel()

	narrative := &stubNarrative{err: errors.New("completion service down")}
	svc := newGameService(&stubProvider{summary: finalSummary()}, narrative)

	detail, err := svc.GetGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if detail.GameStory == nil || detail.GameStory.Summary == "" {
		t.Fatalf("fallback summary must survive: %+v", detail.GameStory)
	}
	if !strings.Contains(detail.GameStory.Summary, "Thunder") {
		t.Fatalf("deterministic summary expected: %q", detail.GameStory.Summary)
	}
}
