package boxscore

import "testing"

func TestAssemble_ZipsKeysWithPositionalValues(t *testing.T) {
	t.Parallel()

	blocks := []StatBlock{{
		TeamID: "home-1",
		Keys:   []string{"points", "rebounds"},
		Athletes: []Athlete{{
			ID:    "p1",
			Name:  "Test Player",
			Stats: []any{24, 11},
		}},
	}}

	box := Assemble("home-1", "away-1", blocks)

	if len(box.Home.Bench) != 1 {
		t.Fatalf("expected athlete without starter flag in bench, got %d bench entries", len(box.Home.Bench))
	}
	line := box.Home.Bench[0]
	if line.Points != 24 || line.Rebounds != 11 {
		t.Fatalf("unexpected points/rebounds: %d/%d", line.Points, line.Rebounds)
	}
	if line.Assists != 0 {
		t.Fatalf("missing stat should default to 0, got %d", line.Assists)
	}
	if line.Starter || line.DidNotPlay {
		t.Fatalf("expected non-starter that played: %+v", line)
	}
	if line.FieldGoals.MadeAttempted != "0-0" {
		t.Fatalf("missing pair should default to 0-0, got %q", line.FieldGoals.MadeAttempted)
	}
	if line.Minutes != "-" {
		t.Fatalf("missing minutes should default to -, got %q", line.Minutes)
	}
}

func TestAssemble_SkipsNullPositions(t *testing.T) {
	t.Parallel()

	blocks := []StatBlock{{
		TeamID: "home-1",
		Keys:   []string{"points", "assists", "steals"},
		Athletes: []Athlete{{
			ID:    "p1",
			Stats: []any{"18", nil, "2"},
		}},
	}}

	line := Assemble("home-1", "away-1", blocks).Home.Bench[0]
	if line.Points != 18 || line.Assists != 0 || line.Steals != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestAssemble_CompoundKeysAndPercentages(t *testing.T) {
	t.Parallel()

	blocks := []StatBlock{{
		TeamID: "away-1",
		Keys: []string{
			"minutes",
			"fieldGoalsMade-fieldGoalsAttempted",
			"fieldGoalPct",
			"threePointersMade-threePointersAttempted",
			"plusMinus",
		},
		Athletes: []Athlete{{
			ID:      "p9",
			Starter: true,
			Stats:   []any{"34:12", "11-23", "47.8", "4-9", "+12"},
		}},
	}}

	box := Assemble("home-1", "away-1", blocks)
	if len(box.Away.Starters) != 1 {
		t.Fatalf("expected one away starter")
	}
	line := box.Away.Starters[0]
	if line.Minutes != "34:12" {
		t.Fatalf("minutes=%q", line.Minutes)
	}
	if line.FieldGoals.MadeAttempted != "11-23" || line.FieldGoals.Percentage != "47.8" {
		t.Fatalf("field goals=%+v", line.FieldGoals)
	}
	if line.ThreePointers.MadeAttempted != "4-9" || line.ThreePointers.Percentage != "" {
		t.Fatalf("three pointers=%+v", line.ThreePointers)
	}
	if line.PlusMinus != 12 {
		t.Fatalf("plus minus=%d", line.PlusMinus)
	}
}

func TestAssemble_DidNotPlayIsExclusive(t *testing.T) {
	t.Parallel()

	blocks := []StatBlock{{
		TeamID: "home-1",
		Keys:   []string{"points"},
		Athletes: []Athlete{
			{ID: "starter", Starter: true, Stats: []any{20}},
			{ID: "bench", Stats: []any{8}},
			{ID: "dnp-starter", Starter: true, DidNotPlay: true, DNPReason: "DNP-COACH'S DECISION"},
			{ID: "dnp-bench", DidNotPlay: true},
		},
	}}

	home := Assemble("home-1", "away-1", blocks).Home
	if len(home.Starters) != 1 || home.Starters[0].AthleteID != "starter" {
		t.Fatalf("unexpected starters: %+v", home.Starters)
	}
	if len(home.Bench) != 1 || home.Bench[0].AthleteID != "bench" {
		t.Fatalf("unexpected bench: %+v", home.Bench)
	}
	if len(home.DidNotPlay) != 2 {
		t.Fatalf("did-not-play must absorb flagged starters, got %+v", home.DidNotPlay)
	}
	if home.DidNotPlay[0].DNPReason != "DNP-COACH'S DECISION" {
		t.Fatalf("unexpected dnp reason: %q", home.DidNotPlay[0].DNPReason)
	}
}

func TestAssemble_MissingBlockYieldsEmptyPartitions(t *testing.T) {
	t.Parallel()

	box := Assemble("home-1", "away-1", []StatBlock{{
		TeamID: "away-1",
		Keys:   []string{"points"},
		Athletes: []Athlete{
			{ID: "p1", Starter: true, Stats: []any{30}},
		},
	}})

	if box.Home.TeamID != "home-1" {
		t.Fatalf("home team id lost: %q", box.Home.TeamID)
	}
	if len(box.Home.Starters) != 0 || len(box.Home.Bench) != 0 || len(box.Home.DidNotPlay) != 0 {
		t.Fatalf("missing home block should yield empty partitions: %+v", box.Home)
	}
	if len(box.Away.Starters) != 1 {
		t.Fatalf("away block should still be assembled")
	}
}
