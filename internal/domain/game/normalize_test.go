package game

import (
	"reflect"
	"testing"
)

func TestNormalizeTeam_FromCompetitor(t *testing.T) {
	t.Parallel()

	score := 112
	got := NormalizeTeam(TeamSource{Competitor: &Competitor{
		ID:           "25",
		DisplayName:  "Oklahoma City Thunder",
		Location:     "Oklahoma City",
		Abbreviation: "OKC",
		Record:       "57-25",
		Score:        &score,
		Linescores:   []int{28, 31, 25, 20, 8},
	}})

	if got.City != "Oklahoma City" || got.Name != "Thunder" {
		t.Fatalf("unexpected city/name: %q / %q", got.City, got.Name)
	}
	if got.Wins != 57 || got.Losses != 25 {
		t.Fatalf("unexpected record: %d-%d", got.Wins, got.Losses)
	}
	if got.Logo != "https://a.espncdn.com/i/teamlogos/nba/500/okc.png" {
		t.Fatalf("unexpected logo fallback: %q", got.Logo)
	}
	if len(got.Periods) != 5 {
		t.Fatalf("expected 5 periods, got %d", len(got.Periods))
	}
	if got.Periods[3].Type != PeriodRegular {
		t.Fatalf("period 4 type=%q want REGULAR", got.Periods[3].Type)
	}
	if got.Periods[4].Type != PeriodOvertime {
		t.Fatalf("period 5 type=%q want OVERTIME", got.Periods[4].Type)
	}
	if got.Score == nil || *got.Score != 112 {
		t.Fatalf("unexpected score: %v", got.Score)
	}
}

func TestNormalizeTeam_CanonicalIsIdempotent(t *testing.T) {
	t.Parallel()

	score := 99
	canonical := Team{
		ID:           "2",
		Name:         "Celtics",
		City:         "Boston",
		Abbreviation: "BOS",
		Logo:         "https://cdn.example.com/bos.png",
		Wins:         48,
		Losses:       20,
		Score:        &score,
		Periods:      []Period{{Number: 1, Score: 31, Type: PeriodRegular}},
	}

	once := NormalizeTeam(TeamSource{Canonical: &canonical})
	twice := NormalizeTeam(TeamSource{Canonical: &once})

	if !reflect.DeepEqual(once, canonical) || !reflect.DeepEqual(twice, canonical) {
		t.Fatalf("normalization of canonical team is not idempotent: %+v", twice)
	}
}

func TestNormalizeTeam_SingleTokenNameFallsBackToLocation(t *testing.T) {
	t.Parallel()

	got := NormalizeTeam(TeamSource{Competitor: &Competitor{
		ID:          "17",
		DisplayName: "Heat",
		Location:    "Miami",
	}})

	if got.City != "Miami" || got.Name != "Heat" {
		t.Fatalf("unexpected city/name: %q / %q", got.City, got.Name)
	}
}

func TestParseRecord_MalformedDefaultsToZero(t *testing.T) {
	t.Parallel()

	cases := map[string][2]int{
		"41-31":     {41, 31},
		" 12-3 ":    {12, 3},
		"":          {0, 0},
		"41":        {0, 0},
		"a-b":       {0, 0},
		"-5-3":      {0, 0},
		"41-31-0":   {0, 0},
		"noslashes": {0, 0},
	}
	for input, want := range cases {
		wins, losses := ParseRecord(input)
		if wins != want[0] || losses != want[1] {
			t.Fatalf("ParseRecord(%q)=%d-%d want %d-%d", input, wins, losses, want[0], want[1])
		}
	}
}
