package boxscore

// Shooting is one made-attempted pair ("11-23") plus the upstream
// percentage when it was supplied.
type Shooting struct {
	MadeAttempted string `json:"madeAttempted"`
	Percentage    string `json:"percentage,omitempty"`
}

// PlayerLine is one athlete's stat line for a single game.
type PlayerLine struct {
	AthleteID  string `json:"athleteId"`
	Name       string `json:"name"`
	Jersey     string `json:"jersey,omitempty"`
	Position   string `json:"position,omitempty"`
	Starter    bool   `json:"starter"`
	DidNotPlay bool   `json:"didNotPlay"`
	DNPReason  string `json:"dnpReason,omitempty"`

	Minutes           string `json:"minutes"`
	Points            int    `json:"points"`
	Rebounds          int    `json:"rebounds"`
	OffensiveRebounds int    `json:"offensiveRebounds"`
	DefensiveRebounds int    `json:"defensiveRebounds"`
	Assists           int    `json:"assists"`
	Steals            int    `json:"steals"`
	Blocks            int    `json:"blocks"`
	Turnovers         int    `json:"turnovers"`
	Fouls             int    `json:"fouls"`
	PlusMinus         int    `json:"plusMinus"`

	FieldGoals    Shooting `json:"fieldGoals"`
	ThreePointers Shooting `json:"threePointers"`
	FreeThrows    Shooting `json:"freeThrows"`
}

// TeamBoxscore partitions one team's athletes. DidNotPlay is exclusive: a
// flagged starter still lands there, not in Starters.
type TeamBoxscore struct {
	TeamID     string       `json:"teamId"`
	Starters   []PlayerLine `json:"starters"`
	Bench      []PlayerLine `json:"bench"`
	DidNotPlay []PlayerLine `json:"didNotPlay"`
}

// Boxscore is the assembled per-player view of one game.
type Boxscore struct {
	Home TeamBoxscore `json:"home"`
	Away TeamBoxscore `json:"away"`
}

// Players returns every line of a team, played or not.
func (t TeamBoxscore) Players() []PlayerLine {
	out := make([]PlayerLine, 0, len(t.Starters)+len(t.Bench)+len(t.DidNotPlay))
	out = append(out, t.Starters...)
	out = append(out, t.Bench...)
	out = append(out, t.DidNotPlay...)
	return out
}

// PlayedLines returns the lines of athletes that actually took the floor.
func (t TeamBoxscore) PlayedLines() []PlayerLine {
	out := make([]PlayerLine, 0, len(t.Starters)+len(t.Bench))
	out = append(out, t.Starters...)
	out = append(out, t.Bench...)
	return out
}
