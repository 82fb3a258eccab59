package game

import "strings"

// Competitor is the raw nested team+competitor shape upstream scoreboards
// carry. All fields are optional; absent values are defaulted during
// normalization.
type Competitor struct {
	ID           string
	DisplayName  string
	Location     string
	Abbreviation string
	Logo         string
	Record       string
	Score        *int
	Linescores   []int
}

// TeamSource is a tagged union over the upstream team shapes the normalizer
// accepts. Exactly one variant is set; probing optional fields across shapes
// is deliberately avoided.
type TeamSource struct {
	// Competitor is the nested scoreboard/summary representation.
	Competitor *Competitor
	// Canonical is a team that already went through normalization.
	Canonical *Team
}

// NormalizeTeam adapts any supported upstream team variant into the one
// canonical Team shape. Normalizing an already-canonical team is idempotent.
func NormalizeTeam(src TeamSource) Team {
	if src.Canonical != nil {
		return *src.Canonical
	}
	if src.Competitor == nil {
		return Team{}
	}

	c := src.Competitor
	wins, losses := ParseRecord(c.Record)
	city, name := SplitDisplayName(c.DisplayName, c.Location)

	logo := strings.TrimSpace(c.Logo)
	if logo == "" {
		logo = DefaultLogo(c.Abbreviation)
	}

	periods := make([]Period, 0, len(c.Linescores))
	for i, score := range c.Linescores {
		number := i + 1
		periods = append(periods, Period{
			Number: number,
			Score:  score,
			Type:   PeriodType(number),
		})
	}

	return Team{
		ID:           strings.TrimSpace(c.ID),
		Name:         name,
		City:         city,
		Abbreviation: strings.TrimSpace(c.Abbreviation),
		Logo:         logo,
		Wins:         wins,
		Losses:       losses,
		Score:        c.Score,
		Periods:      periods,
	}
}

// SplitDisplayName splits a team display name into city and nickname: the
// last whitespace-delimited token is the nickname, everything before it the
// city ("Oklahoma City Thunder" -> "Oklahoma City", "Thunder"). A
// single-token display name keeps the whole value as the nickname and falls
// back to the supplied location for the city.
func SplitDisplayName(displayName, location string) (city, name string) {
	tokens := strings.Fields(strings.TrimSpace(displayName))
	switch len(tokens) {
	case 0:
		return strings.TrimSpace(location), ""
	case 1:
		return strings.TrimSpace(location), tokens[0]
	default:
		return strings.Join(tokens[:len(tokens)-1], " "), tokens[len(tokens)-1]
	}
}
