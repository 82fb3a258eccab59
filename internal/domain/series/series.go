package series

import (
	"sort"
	"time"
)

// Event is one head-to-head meeting from the raw series history. The
// recorded winner travels as a team identifier because an event may be
// incomplete and score comparison would misreport it.
type Event struct {
	GameID       string    `json:"gameId"`
	HomeTeamID   string    `json:"homeTeamId"`
	AwayTeamID   string    `json:"awayTeamId"`
	HomeScore    *int      `json:"homeScore,omitempty"`
	AwayScore    *int      `json:"awayScore,omitempty"`
	Completed    bool      `json:"completed"`
	WinnerTeamID string    `json:"winnerTeamId,omitempty"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	StatusText   string    `json:"statusText,omitempty"`
}

// SeasonSeries is the recomputed head-to-head record for the current
// matchup. Win counts come from completed events with a resolvable winner
// only; TotalGames carries the upstream-declared competition count, which
// may exceed the resolvable events.
type SeasonSeries struct {
	HomeWins   int     `json:"homeWins"`
	AwayWins   int     `json:"awayWins"`
	TotalGames int     `json:"totalGames"`
	Events     []Event `json:"events"`
}

// Reconcile recomputes the series record for the current game's two teams.
// HomeWins and AwayWins are relative to the current game's orientation, not
// each historical event's. Events involving any other team are discarded;
// when nothing matches the matchup the series is nil. The upstream series
// score string is never consulted.
func Reconcile(currentGameID, homeTeamID, awayTeamID string, declaredTotal int, events []Event) *SeasonSeries {
	matched := make([]Event, 0, len(events))
	for _, event := range events {
		if sameMatchup(event, homeTeamID, awayTeamID) {
			matched = append(matched, event)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	out := &SeasonSeries{Events: matched}
	for _, event := range matched {
		if !event.Completed {
			continue
		}
		switch event.WinnerTeamID {
		case homeTeamID:
			out.HomeWins++
		case awayTeamID:
			out.AwayWins++
		}
	}

	out.TotalGames = declaredTotal
	if out.TotalGames <= 0 {
		out.TotalGames = len(matched)
	}

	sort.SliceStable(out.Events, func(i, j int) bool {
		a, b := out.Events[i], out.Events[j]
		if a.GameID == currentGameID != (b.GameID == currentGameID) {
			return a.GameID == currentGameID
		}
		return a.ScheduledAt.Before(b.ScheduledAt)
	})

	return out
}

func sameMatchup(event Event, homeTeamID, awayTeamID string) bool {
	return (event.HomeTeamID == homeTeamID && event.AwayTeamID == awayTeamID) ||
		(event.HomeTeamID == awayTeamID && event.AwayTeamID == homeTeamID)
}
