package game

import "strings"

const (
	CompetitivenessClassic     = "classic"
	CompetitivenessClose       = "close"
	CompetitivenessComfortable = "comfortable"
	CompetitivenessBlowout     = "blowout"

	closeGameMargin = 5
)

// Classify fills every derived field of a game from its base fields. It is
// the only place derived flags are computed; callers must not set them by
// hand.
func Classify(g Game) Game {
	g.IsOvertime = isOvertime(g)
	g.ScoreDifference = scoreDifference(g)
	g.IsClosest = g.Status != StatusScheduled &&
		g.ScoreDifference != nil && *g.ScoreDifference <= closeGameMargin
	g.Competitiveness = classifyCompetitiveness(g)
	return g
}

func isOvertime(g Game) bool {
	if g.Period > regulationPeriods {
		return true
	}
	return strings.Contains(strings.ToUpper(g.StatusText), "OT")
}

// scoreDifference is defined only for games that have started: a scheduled
// game, or a 0-0 scoreline, would otherwise look like a 0-point game.
func scoreDifference(g Game) *int {
	if g.Status == StatusScheduled {
		return nil
	}
	if g.Home.Score == nil || g.Away.Score == nil {
		return nil
	}
	if *g.Home.Score == 0 && *g.Away.Score == 0 {
		return nil
	}
	diff := *g.Away.Score - *g.Home.Score
	if diff < 0 {
		diff = -diff
	}
	return &diff
}

func classifyCompetitiveness(g Game) *Competitiveness {
	if g.Status != StatusFinal || g.ScoreDifference == nil {
		return nil
	}
	margin := *g.ScoreDifference

	// Any overtime final was by definition decided late.
	if g.IsOvertime {
		return &Competitiveness{Type: CompetitivenessClassic, FinalMargin: margin}
	}

	switch {
	case margin <= 3:
		return &Competitiveness{Type: CompetitivenessClassic, FinalMargin: margin}
	case margin <= 7:
		return &Competitiveness{Type: CompetitivenessClose, FinalMargin: margin}
	case margin <= 15:
		return &Competitiveness{Type: CompetitivenessComfortable, FinalMargin: margin}
	default:
		return &Competitiveness{Type: CompetitivenessBlowout, FinalMargin: margin}
	}
}
