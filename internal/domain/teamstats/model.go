package teamstats

// PercentageUndefined marks a percentage the upstream never supplied and
// that could not be derived. It is deliberately not "0": a team that went
// 0-for-12 and a team with no data must stay distinguishable.
const PercentageUndefined = "undefined"

// Split is one aggregated made-attempted pair with its percentage.
type Split struct {
	Made          int    `json:"made"`
	Attempted     int    `json:"attempted"`
	MadeAttempted string `json:"madeAttempted"`
	Percentage    string `json:"percentage"`
}

// TeamStatistics is one team's aggregated game totals.
type TeamStatistics struct {
	TeamID string `json:"teamId"`

	FieldGoals    Split `json:"fieldGoals"`
	ThreePointers Split `json:"threePointers"`
	FreeThrows    Split `json:"freeThrows"`

	Points            int `json:"points"`
	Rebounds          int `json:"rebounds"`
	OffensiveRebounds int `json:"offensiveRebounds"`
	DefensiveRebounds int `json:"defensiveRebounds"`
	Assists           int `json:"assists"`
	Steals            int `json:"steals"`
	Blocks            int `json:"blocks"`
	Turnovers         int `json:"turnovers"`
	Fouls             int `json:"fouls"`

	PointsInPaint   int    `json:"pointsInPaint"`
	FastBreakPoints int    `json:"fastBreakPoints"`
	LargestLead     int    `json:"largestLead"`
	LeadChanges     int    `json:"leadChanges"`
	LeadPercentage  string `json:"leadPercentage"`
	TechnicalFouls  int    `json:"technicalFouls"`
}
