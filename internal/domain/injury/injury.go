package injury

import "strings"

// Detail is the structured breakdown some upstream reports attach to an
// injury. Every field is optional.
type Detail struct {
	Type       string `json:"type,omitempty"`
	Location   string `json:"location,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Side       string `json:"side,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
}

// Item is one raw injury report entry.
type Item struct {
	AthleteID string  `json:"athleteId"`
	Name      string  `json:"name"`
	Position  string  `json:"position,omitempty"`
	TeamID    string  `json:"teamId"`
	Status    string  `json:"status"`
	Detail    *Detail `json:"detail,omitempty"`
}

// Report is one grouped injury with its human-readable status line.
type Report struct {
	AthleteID string `json:"athleteId"`
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	Status    string `json:"status"`
}

// GameInjuries holds the injury reports of the current game's two sides.
type GameInjuries struct {
	Home []Report `json:"home"`
	Away []Report `json:"away"`
}

// Group splits a flat injury list between the current game's two teams.
// Entries for any other team are dropped. When neither side has a report
// the result is nil so callers can omit the section entirely.
func Group(items []Item, homeTeamID, awayTeamID string) *GameInjuries {
	out := &GameInjuries{}
	for _, item := range items {
		report := Report{
			AthleteID: item.AthleteID,
			Name:      item.Name,
			Position:  item.Position,
			Status:    statusLine(item),
		}
		switch item.TeamID {
		case homeTeamID:
			out.Home = append(out.Home, report)
		case awayTeamID:
			out.Away = append(out.Away, report)
		}
	}
	if len(out.Home) == 0 && len(out.Away) == 0 {
		return nil
	}
	return out
}

// statusLine renders the structured detail when present, e.g.
// "Knee - Sprain (Left), expected return Nov 15". With no usable detail
// the bare status code stands.
func statusLine(item Item) string {
	d := item.Detail
	if d == nil {
		return item.Status
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{d.Type, d.Location, d.Detail} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	text := strings.Join(parts, " - ")
	if text == "" {
		return item.Status
	}
	if side := strings.TrimSpace(d.Side); side != "" {
		text += " (" + side + ")"
	}
	if ret := strings.TrimSpace(d.ReturnDate); ret != "" {
		text += ", expected return " + ret
	}
	return text
}
