package story

import (
	"testing"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/boxscore"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
)

func intPtr(v int) *int { return &v }

func finalGame(homeScore, awayScore int) game.Game {
	return game.Game{
		ID:     "g1",
		Status: game.StatusFinal,
		Period: 4,
		Home:   game.Team{ID: "home-1", Name: "Thunder", Score: intPtr(homeScore)},
		Away:   game.Team{ID: "away-1", Name: "Nuggets", Score: intPtr(awayScore)},
	}
}

func TestImpactScore(t *testing.T) {
	t.Parallel()

	line := boxscore.PlayerLine{
		Points: 30, Rebounds: 10, Assists: 10, Steals: 2, Blocks: 1, Turnovers: 4,
	}
	// 30 + 12 + 15 + 6 + 3 - 4
	if got := ImpactScore(line); got != 62 {
		t.Fatalf("impact score=%v want 62", got)
	}
}

func TestSelectMVP_WinningTeamScope(t *testing.T) {
	t.Parallel()

	box := boxscore.Boxscore{
		Home: boxscore.TeamBoxscore{
			TeamID: "home-1",
			Starters: []boxscore.PlayerLine{
				{AthleteID: "h1", Name: "Home Star", Points: 25, Rebounds: 5},
			},
		},
		Away: boxscore.TeamBoxscore{
			TeamID: "away-1",
			Starters: []boxscore.PlayerLine{
				{AthleteID: "a1", Name: "Away Star", Points: 45, Rebounds: 12, Assists: 9},
			},
		},
	}

	mvp, ok := SelectMVP(finalGame(110, 102), box)
	if !ok {
		t.Fatalf("expected an mvp")
	}
	if mvp.TeamID != "home-1" || mvp.AthleteID != "h1" {
		t.Fatalf("mvp must come from the winning side, got %+v", mvp)
	}
}

func TestSelectMVP_WinnerWithoutPlayersWidensPool(t *testing.T) {
	t.Parallel()

	box := boxscore.Boxscore{
		Home: boxscore.TeamBoxscore{TeamID: "home-1"},
		Away: boxscore.TeamBoxscore{
			TeamID: "away-1",
			Bench: []boxscore.PlayerLine{
				{AthleteID: "a1", Name: "Only Player", Points: 12},
			},
		},
	}

	mvp, ok := SelectMVP(finalGame(98, 95), box)
	if !ok {
		t.Fatalf("expected pool to widen to both teams")
	}
	if mvp.AthleteID != "a1" {
		t.Fatalf("unexpected mvp: %+v", mvp)
	}
}

func TestSelectMVP_ExcludesDidNotPlay(t *testing.T) {
	t.Parallel()

	box := boxscore.Boxscore{
		Home: boxscore.TeamBoxscore{
			TeamID: "home-1",
			Bench: []boxscore.PlayerLine{
				{AthleteID: "h1", Name: "Role Player", Points: 8},
			},
			DidNotPlay: []boxscore.PlayerLine{
				{AthleteID: "h2", Name: "Injured Star", DidNotPlay: true, Points: 0},
			},
		},
		Away: boxscore.TeamBoxscore{TeamID: "away-1"},
	}

	mvp, ok := SelectMVP(finalGame(90, 80), box)
	if !ok || mvp.AthleteID != "h1" {
		t.Fatalf("did-not-play athletes must be ineligible, got %+v ok=%v", mvp, ok)
	}
}

func TestSelectMVP_TieBreaksOnPointsThenName(t *testing.T) {
	t.Parallel()

	// Both score 20 impact points; the 20-point scorer outranks the
	// rebounder, and equal lines fall back to name order.
	box := boxscore.Boxscore{
		Home: boxscore.TeamBoxscore{
			TeamID: "home-1",
			Starters: []boxscore.PlayerLine{
				{AthleteID: "h1", Name: "Zeke", Points: 8, Rebounds: 10},
				{AthleteID: "h2", Name: "Moses", Points: 20},
				{AthleteID: "h3", Name: "Adrian", Points: 20},
			},
		},
		Away: boxscore.TeamBoxscore{TeamID: "away-1"},
	}

	mvp, ok := SelectMVP(finalGame(100, 90), box)
	if !ok {
		t.Fatalf("expected an mvp")
	}
	if mvp.AthleteID != "h3" {
		t.Fatalf("tie-break should land on Adrian, got %+v", mvp)
	}
}

func TestSelectMVP_RoundsScore(t *testing.T) {
	t.Parallel()

	box := boxscore.Boxscore{
		Home: boxscore.TeamBoxscore{
			TeamID: "home-1",
			Starters: []boxscore.PlayerLine{
				{AthleteID: "h1", Name: "Star", Points: 10, Rebounds: 3, Assists: 1},
			},
		},
		Away: boxscore.TeamBoxscore{TeamID: "away-1"},
	}

	mvp, _ := SelectMVP(finalGame(100, 90), box)
	// 10 + 3.6 + 1.5 = 15.1
	if mvp.Score != 15.1 {
		t.Fatalf("score=%v want 15.1", mvp.Score)
	}
}
