package story

import (
	"fmt"
	"strconv"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/boxscore"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/teamstats"
)

// Insight thresholds. Each insight fires only when its differential clears
// the bar; at most three survive, evaluated in declaration order.
const (
	maxInsights = 3

	fieldGoalPctGap    = 5.0
	threePointerGap    = 3
	turnoverGap        = 5
	reboundGap         = 10
	mvpHighlightImpact = 30.0
)

// GameStory is the short deterministic narrative for one finished game.
type GameStory struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
	MVP      *MVP     `json:"mvp,omitempty"`
}

// Generate builds the story for a game with a determinable winner. A tied
// or unfinished game yields nil.
func Generate(g game.Game, home, away teamstats.TeamStatistics, box boxscore.Boxscore) *GameStory {
	winner, ok := g.Winner()
	if !ok {
		return nil
	}

	winStats, loseStats := home, away
	loser := g.Away
	if winner.ID == g.Away.ID {
		winStats, loseStats = away, home
		loser = g.Home
	}

	out := &GameStory{
		Summary:  summarize(winner, loser, winStats.Points, loseStats.Points),
		Insights: []string{},
	}

	if mvp, found := SelectMVP(g, box); found {
		out.MVP = &mvp
	}

	out.Insights = buildInsights(winner, loser, winStats, loseStats, out.MVP)
	return out
}

// summarize uses the same margin bands as the competitiveness classifier,
// computed here from aggregated points so the story stands alone.
func summarize(winner, loser game.Team, winPoints, losePoints int) string {
	margin := winPoints - losePoints
	score := fmt.Sprintf("%d-%d", winPoints, losePoints)

	switch {
	case margin <= 3:
		return fmt.Sprintf("%s edged %s %s in a game that went down to the wire.", winner.Name, loser.Name, score)
	case margin <= 7:
		return fmt.Sprintf("%s held off %s %s in a tight finish.", winner.Name, loser.Name, score)
	case margin <= 15:
		return fmt.Sprintf("%s beat %s %s.", winner.Name, loser.Name, score)
	default:
		return fmt.Sprintf("%s ran away from %s %s.", winner.Name, loser.Name, score)
	}
}

func buildInsights(winner, loser game.Team, winStats, loseStats teamstats.TeamStatistics, mvp *MVP) []string {
	insights := make([]string, 0, maxInsights)
	add := func(insight string) {
		if len(insights) < maxInsights {
			insights = append(insights, insight)
		}
	}

	if winPct, losePct, ok := percentages(winStats.FieldGoals, loseStats.FieldGoals); ok {
		if winPct-losePct > fieldGoalPctGap {
			add(fmt.Sprintf("%s shot %.1f%% from the field to %s's %.1f%%.",
				winner.Name, winPct, loser.Name, losePct))
		}
	}

	if gap := winStats.ThreePointers.Made - loseStats.ThreePointers.Made; gap > threePointerGap {
		add(fmt.Sprintf("%s made %d three-pointers, %d more than %s.",
			winner.Name, winStats.ThreePointers.Made, gap, loser.Name))
	}

	if gap := loseStats.Turnovers - winStats.Turnovers; gap > turnoverGap {
		add(fmt.Sprintf("%s forced %s into %d turnovers while committing only %d.",
			winner.Name, loser.Name, loseStats.Turnovers, winStats.Turnovers))
	}

	if gap := winStats.Rebounds - loseStats.Rebounds; gap > reboundGap {
		add(fmt.Sprintf("%s won the glass %d-%d.",
			winner.Name, winStats.Rebounds, loseStats.Rebounds))
	}

	if mvp != nil && mvp.Score > mvpHighlightImpact && standoutLine(mvp.Line) {
		add(fmt.Sprintf("%s finished with %d points, %d rebounds and %d assists.",
			mvp.Name, mvp.Line.Points, mvp.Line.Rebounds, mvp.Line.Assists))
	}

	if len(insights) == 0 {
		insights = append(insights, fmt.Sprintf("%s took care of business against %s.", winner.Name, loser.Name))
	}
	return insights
}

func standoutLine(line boxscore.PlayerLine) bool {
	return line.Points >= 30 || line.Rebounds >= 10 || line.Assists >= 10
}

// percentages parses both sides' shooting percentage; an undefined value on
// either side disables the comparison.
func percentages(win, lose teamstats.Split) (float64, float64, bool) {
	w, err := strconv.ParseFloat(win.Percentage, 64)
	if err != nil {
		return 0, 0, false
	}
	l, err := strconv.ParseFloat(lose.Percentage, 64)
	if err != nil {
		return 0, 0, false
	}
	return w, l, true
}
