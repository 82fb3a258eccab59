package story

import (
	"math"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/boxscore"
	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
)

// Impact score weights. Rebounds and playmaking count above raw scoring,
// defensive events count triple, turnovers subtract at face value.
const (
	weightRebounds = 1.2
	weightAssists  = 1.5
	weightSteals   = 3.0
	weightBlocks   = 3.0
)

// MVP is the single standout performance of one game.
type MVP struct {
	AthleteID string              `json:"athleteId"`
	Name      string              `json:"name"`
	TeamID    string              `json:"teamId"`
	Score     float64             `json:"impactScore"`
	Line      boxscore.PlayerLine `json:"line"`
}

// ImpactScore computes the weighted single-game metric for one stat line.
func ImpactScore(line boxscore.PlayerLine) float64 {
	return float64(line.Points) +
		weightRebounds*float64(line.Rebounds) +
		weightAssists*float64(line.Assists) +
		weightSteals*float64(line.Steals) +
		weightBlocks*float64(line.Blocks) -
		float64(line.Turnovers)
}

type candidate struct {
	teamID string
	line   boxscore.PlayerLine
	score  float64
}

// SelectMVP picks the standout player of a game. With a strict winner the
// pool is the winning team's players that took the floor; a tied game, or a
// winning side with no eligible players, widens the pool to both teams.
// Ties break on higher points, then alphabetical name, so selection never
// depends on input order.
func SelectMVP(g game.Game, box boxscore.Boxscore) (MVP, bool) {
	pool := eligiblePool(g, box)
	if len(pool) == 0 {
		return MVP{}, false
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if beats(c, best) {
			best = c
		}
	}

	return MVP{
		AthleteID: best.line.AthleteID,
		Name:      best.line.Name,
		TeamID:    best.teamID,
		Score:     math.Round(best.score*10) / 10,
		Line:      best.line,
	}, true
}

func eligiblePool(g game.Game, box boxscore.Boxscore) []candidate {
	if winner, ok := g.Winner(); ok {
		var side boxscore.TeamBoxscore
		switch winner.ID {
		case box.Home.TeamID:
			side = box.Home
		case box.Away.TeamID:
			side = box.Away
		default:
			return candidates(box.Home, box.Away)
		}
		if pool := candidates(side); len(pool) > 0 {
			return pool
		}
	}
	return candidates(box.Home, box.Away)
}

func candidates(teams ...boxscore.TeamBoxscore) []candidate {
	var out []candidate
	for _, team := range teams {
		for _, line := range team.PlayedLines() {
			if line.DidNotPlay {
				continue
			}
			out = append(out, candidate{
				teamID: team.TeamID,
				line:   line,
				score:  ImpactScore(line),
			})
		}
	}
	return out
}

func beats(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.line.Points != b.line.Points {
		return a.line.Points > b.line.Points
	}
	return a.line.Name < b.line.Name
}
