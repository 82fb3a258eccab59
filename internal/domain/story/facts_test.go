package story

import (
	"reflect"
	"testing"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
)

func TestBuildFacts(t *testing.T) {
	t.Parallel()

	g := finalGame(118, 112)
	g.Period = 5
	g.Home.Periods = []game.Period{
		{Number: 1, Score: 30, Type: game.PeriodRegular},
		{Number: 2, Score: 28, Type: game.PeriodRegular},
		{Number: 3, Score: 25, Type: game.PeriodRegular},
		{Number: 4, Score: 22, Type: game.PeriodRegular},
		{Number: 5, Score: 13, Type: game.PeriodOvertime},
	}
	g.Away.Periods = []game.Period{
		{Number: 1, Score: 27, Type: game.PeriodRegular},
		{Number: 2, Score: 26, Type: game.PeriodRegular},
		{Number: 3, Score: 28, Type: game.PeriodRegular},
		{Number: 4, Score: 24, Type: game.PeriodRegular},
		{Number: 5, Score: 7, Type: game.PeriodOvertime},
	}

	home := statsWith("home-1", 118)
	home.FieldGoals.Percentage = "48.9"
	home.ThreePointers.Made = 14
	home.Rebounds = 50
	home.Turnovers = 11
	away := statsWith("away-1", 112)

	facts := BuildFacts(g, home, away)

	if facts.GameID != "g1" {
		t.Fatalf("game id=%q", facts.GameID)
	}
	if facts.Final != "112-118" {
		t.Fatalf("final score must render away first, got %q", facts.Final)
	}
	if facts.Halftime != "53-58" {
		t.Fatalf("halftime=%q", facts.Halftime)
	}
	if len(facts.Quarters) != 5 || facts.Quarters[0].Score != "27-30" {
		t.Fatalf("quarters=%+v", facts.Quarters)
	}
	if !reflect.DeepEqual(facts.OvertimePeriods, []int{5}) {
		t.Fatalf("overtime periods=%v", facts.OvertimePeriods)
	}
	if facts.Home.FieldGoalPct != "48.9" || facts.Home.ThreePointersMade != 14 {
		t.Fatalf("home facts=%+v", facts.Home)
	}
	if facts.Home.Name != "Thunder" || facts.Away.Name != "Nuggets" {
		t.Fatalf("team names lost: %+v / %+v", facts.Home, facts.Away)
	}
}

func TestBuildFacts_NoPeriodsNoHalftime(t *testing.T) {
	t.Parallel()

	facts := BuildFacts(finalGame(100, 90), statsWith("home-1", 100), statsWith("away-1", 90))
	if facts.Halftime != "" {
		t.Fatalf("halftime should be empty without period data, got %q", facts.Halftime)
	}
	if len(facts.Quarters) != 0 || len(facts.OvertimePeriods) != 0 {
		t.Fatalf("expected no quarter data: %+v", facts)
	}
}
