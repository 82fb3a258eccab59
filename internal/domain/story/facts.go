package story

import (
	"fmt"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/teamstats"
)

// QuarterScore is one period's away-home score rendered as "28-25".
type QuarterScore struct {
	Period int    `json:"period"`
	Score  string `json:"score"`
}

// TeamFacts is the flattened statistical snapshot of one side.
type TeamFacts struct {
	TeamID            string `json:"teamId"`
	Name              string `json:"name"`
	Abbreviation      string `json:"abbreviation"`
	Points            int    `json:"points"`
	FieldGoalPct      string `json:"fieldGoalPct"`
	ThreePointersMade int    `json:"threePointersMade"`
	Rebounds          int    `json:"rebounds"`
	Turnovers         int    `json:"turnovers"`
}

// GameFacts is the unit-normalized snapshot handed to the narrative
// collaborator. It carries numbers and preformatted score strings only,
// never derived prose.
type GameFacts struct {
	GameID          string         `json:"gameId"`
	Away            TeamFacts      `json:"away"`
	Home            TeamFacts      `json:"home"`
	Quarters        []QuarterScore `json:"quarters"`
	Halftime        string         `json:"halftime"`
	OvertimePeriods []int          `json:"overtimePeriods,omitempty"`
	Final           string         `json:"final"`
}

// BuildFacts flattens a classified game and its aggregated team statistics
// into the narrative input snapshot. Scores are always rendered away first.
func BuildFacts(g game.Game, home, away teamstats.TeamStatistics) GameFacts {
	facts := GameFacts{
		GameID: g.ID,
		Away:   teamFacts(g.Away, away),
		Home:   teamFacts(g.Home, home),
		Final:  fmt.Sprintf("%d-%d", away.Points, home.Points),
	}

	periods := min(len(g.Away.Periods), len(g.Home.Periods))
	var awayHalf, homeHalf int
	for i := 0; i < periods; i++ {
		ap, hp := g.Away.Periods[i], g.Home.Periods[i]
		facts.Quarters = append(facts.Quarters, QuarterScore{
			Period: ap.Number,
			Score:  fmt.Sprintf("%d-%d", ap.Score, hp.Score),
		})
		if ap.Number <= 2 {
			awayHalf += ap.Score
			homeHalf += hp.Score
		}
		if ap.Type == game.PeriodOvertime {
			facts.OvertimePeriods = append(facts.OvertimePeriods, ap.Number)
		}
	}
	if periods >= 2 {
		facts.Halftime = fmt.Sprintf("%d-%d", awayHalf, homeHalf)
	}

	return facts
}

func teamFacts(team game.Team, stats teamstats.TeamStatistics) TeamFacts {
	return TeamFacts{
		TeamID:            team.ID,
		Name:              team.Name,
		Abbreviation:      team.Abbreviation,
		Points:            stats.Points,
		FieldGoalPct:      stats.FieldGoals.Percentage,
		ThreePointersMade: stats.ThreePointers.Made,
		Rebounds:          stats.Rebounds,
		Turnovers:         stats.Turnovers,
	}
}
