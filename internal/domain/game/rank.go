package game

import "sort"

// Display priorities, lowest first. Live marquee games lead, finished
// non-notable games trail.
const (
	PriorityLiveMarquee  = 1
	PriorityLiveClosest  = 2
	PriorityLiveOvertime = 3
	PriorityLive         = 4
	PriorityClosest      = 5
	PriorityOvertime     = 6
	PriorityScheduled    = 7
	PriorityFinal        = 8

	maxFeaturedGames = 3
	maxOtherGames    = 4
)

// Ranking is the total display ordering over a set of games plus the
// truncated featured/other views most callers render. All carries the full
// ordered list for callers that paginate themselves.
type Ranking struct {
	All      []Game `json:"all"`
	Featured []Game `json:"featured"`
	Other    []Game `json:"other"`
}

// Priority assigns the integer display priority of a single classified game.
func Priority(g Game) int {
	live := g.Status == StatusLive
	switch {
	case live && g.IsMarquee:
		return PriorityLiveMarquee
	case live && g.IsClosest:
		return PriorityLiveClosest
	case live && g.IsOvertime:
		return PriorityLiveOvertime
	case live:
		return PriorityLive
	case g.IsClosest:
		return PriorityClosest
	case g.IsOvertime:
		return PriorityOvertime
	case g.Status == StatusScheduled:
		return PriorityScheduled
	default:
		return PriorityFinal
	}
}

// Rank orders games by priority, then ascending score difference where both
// differences are defined, preserving input order otherwise. Stability is a
// correctness property here: callers re-running the ranker on identical
// input must observe an identical sequence.
func Rank(games []Game) Ranking {
	ranked := make([]Game, len(games))
	copy(ranked, games)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := Priority(ranked[i]), Priority(ranked[j])
		if pi != pj {
			return pi < pj
		}
		di, dj := ranked[i].ScoreDifference, ranked[j].ScoreDifference
		if di != nil && dj != nil && *di != *dj {
			return *di < *dj
		}
		return false
	})

	featured := make([]Game, 0, maxFeaturedGames)
	other := make([]Game, 0, maxOtherGames)
	for _, g := range ranked {
		if len(featured) < maxFeaturedGames && isFeaturedPriority(Priority(g)) {
			featured = append(featured, g)
			continue
		}
		if len(other) < maxOtherGames {
			other = append(other, g)
		}
	}

	return Ranking{All: ranked, Featured: featured, Other: other}
}

func isFeaturedPriority(priority int) bool {
	switch priority {
	case PriorityLiveMarquee, PriorityLiveClosest, PriorityLiveOvertime, PriorityClosest, PriorityOvertime:
		return true
	default:
		return false
	}
}
