package injury

import "testing"

func TestGroup_SplitsByTeamAndDropsOutsiders(t *testing.T) {
	t.Parallel()

	items := []Item{
		{AthleteID: "p1", Name: "Home Guard", TeamID: "home-1", Status: "Out"},
		{AthleteID: "p2", Name: "Away Wing", TeamID: "away-1", Status: "Day-To-Day"},
		{AthleteID: "p3", Name: "Unrelated", TeamID: "third-1", Status: "Out"},
	}

	got := Group(items, "home-1", "away-1")
	if got == nil {
		t.Fatalf("expected grouped injuries")
	}
	if len(got.Home) != 1 || got.Home[0].AthleteID != "p1" {
		t.Fatalf("home group=%+v", got.Home)
	}
	if len(got.Away) != 1 || got.Away[0].AthleteID != "p2" {
		t.Fatalf("away group=%+v", got.Away)
	}
}

func TestGroup_NilWhenNeitherSideMatches(t *testing.T) {
	t.Parallel()

	if got := Group(nil, "home-1", "away-1"); got != nil {
		t.Fatalf("empty list must yield nil, got %+v", got)
	}
	items := []Item{{AthleteID: "p1", TeamID: "third-1", Status: "Out"}}
	if got := Group(items, "home-1", "away-1"); got != nil {
		t.Fatalf("unmatchable list must yield nil, got %+v", got)
	}
}

func TestGroup_StatusLineFromStructuredDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "full detail",
			item: Item{
				TeamID: "home-1", Status: "Out",
				Detail: &Detail{
					Type: "Knee", Location: "MCL", Detail: "Sprain",
					Side: "Left", ReturnDate: "Nov 15",
				},
			},
			want: "Knee - MCL - Sprain (Left), expected return Nov 15",
		},
		{
			name: "partial detail",
			item: Item{
				TeamID: "home-1", Status: "Day-To-Day",
				Detail: &Detail{Type: "Ankle", Detail: "Soreness"},
			},
			want: "Ankle - Soreness",
		},
		{
			name: "empty detail falls back to status",
			item: Item{TeamID: "home-1", Status: "Questionable", Detail: &Detail{}},
			want: "Questionable",
		},
		{
			name: "no detail falls back to status",
			item: Item{TeamID: "home-1", Status: "Out"},
			want: "Out",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Group([]Item{tc.item}, "home-1", "away-1")
			if got == nil || len(got.Home) != 1 {
				t.Fatalf("expected one home report")
			}
			if got.Home[0].Status != tc.want {
				t.Fatalf("status=%q want %q", got.Home[0].Status, tc.want)
			}
		})
	}
}
