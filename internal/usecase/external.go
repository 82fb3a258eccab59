package usecase

import (
	"context"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/story"
)

// ExternalCompetitor is one side of an upstream event. Every field is
// optional; Score stays nil until the provider reports one.
type ExternalCompetitor struct {
	ID           string
	DisplayName  string
	Location     string
	Abbreviation string
	Logo         string
	Record       string
	HomeAway     string
	Winner       bool
	Score        *int
	Linescores   []int
}

// ExternalLeader is a per-team statistical leader attached to an event.
type ExternalLeader struct {
	TeamID    string
	AthleteID string
	Name      string
	Headshot  string
	Category  string
	Value     float64
}

// ExternalEvent is one upstream scoreboard row before normalization.
type ExternalEvent struct {
	ID          string
	StatusState string
	StatusText  string
	Completed   bool
	Period      int
	Clock       string
	StartsAt    time.Time
	Competitors []ExternalCompetitor
	Leaders     []ExternalLeader
}

// ExternalScoreboard is the provider's day view.
type ExternalScoreboard struct {
	Date   string
	Events []ExternalEvent
}

// ExternalAthleteLine is one raw athlete row inside a stat block. Stats are
// positionally aligned to the owning block's Keys; nil marks an undefined
// position.
type ExternalAthleteLine struct {
	ID         string
	Name       string
	Jersey     string
	Position   string
	Starter    bool
	DidNotPlay bool
	DNPReason  string
	Stats      []any
}

// ExternalStatBlock is one team's raw boxscore block.
type ExternalStatBlock struct {
	TeamID   string
	Keys     []string
	Athletes []ExternalAthleteLine
}

// ExternalStatEntry is one named team total. Compound made-attempted pairs
// arrive as hyphenated name/value pairs.
type ExternalStatEntry struct {
	Name  string
	Value string
}

// ExternalTeamTotals carries one team's upstream stat totals.
type ExternalTeamTotals struct {
	TeamID  string
	Entries []ExternalStatEntry
}

// ExternalSeriesEvent is one raw head-to-head meeting from the provider's
// season-series block.
type ExternalSeriesEvent struct {
	GameID       string
	HomeTeamID   string
	AwayTeamID   string
	HomeScore    *int
	AwayScore    *int
	Completed    bool
	WinnerTeamID string
	ScheduledAt  time.Time
	StatusText   string
}

// ExternalInjury is one raw injury report row.
type ExternalInjury struct {
	AthleteID      string
	Name           string
	Position       string
	TeamID         string
	Status         string
	DetailType     string
	DetailLocation string
	DetailText     string
	DetailSide     string
	ReturnDate     string
}

// ExternalGameSummary is everything the provider returns for a single game.
type ExternalGameSummary struct {
	Event            ExternalEvent
	StatBlocks       []ExternalStatBlock
	TeamTotals       []ExternalTeamTotals
	SeriesTotalGames int
	SeriesEvents     []ExternalSeriesEvent
	Injuries         []ExternalInjury
}

// SportsDataProvider fetches raw upstream payloads. Implementations own
// transport concerns (retries, timeouts, breakers); the services treat every
// nested field of the result as optional.
type SportsDataProvider interface {
	FetchScoreboard(ctx context.Context, date string) (ExternalScoreboard, error)
	FetchGameSummary(ctx context.Context, gameID string) (ExternalGameSummary, error)
}

// NarrativeProvider turns a facts snapshot into free-text prose. The
// deterministic story generator covers for it when it fails.
type NarrativeProvider interface {
	GenerateSummary(ctx context.Context, facts story.GameFacts) (string, error)
}
