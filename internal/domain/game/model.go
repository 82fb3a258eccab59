package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinal     Status = "final"
)

const (
	PeriodRegular  = "REGULAR"
	PeriodOvertime = "OVERTIME"

	// regulationPeriods is the number of quarters in a regulation game.
	regulationPeriods = 4

	logoTemplate = "https://a.espncdn.com/i/teamlogos/nba/500/%s.png"
)

// Period is one quarter (or overtime frame) of a team's scoring line.
type Period struct {
	Number int    `json:"period"`
	Score  int    `json:"score"`
	Type   string `json:"type"`
}

// Team is the canonical team shape every downstream consumer relies on,
// regardless of which upstream variant it was normalized from.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Abbreviation string   `json:"abbreviation"`
	Logo         string   `json:"logo"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Score        *int     `json:"score"`
	Periods      []Period `json:"periods"`
}

// Leader is the per-team statistical leader summary carried on scoreboard rows.
type Leader struct {
	AthleteID string  `json:"athleteId"`
	Name      string  `json:"name"`
	Headshot  string  `json:"headshot,omitempty"`
	Category  string  `json:"category"`
	Value     float64 `json:"value"`
}

// Competitiveness classifies how contested a finished game was.
type Competitiveness struct {
	Type        string `json:"type"`
	FinalMargin int    `json:"finalMargin"`
}

// Game is one canonical matchup. Derived fields (IsOvertime, IsClosest,
// ScoreDifference, Competitiveness) are pure functions of the remaining
// fields and are filled by Classify; they are never mutated independently.
type Game struct {
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	StatusText  string    `json:"statusText,omitempty"`
	Period      int       `json:"period"`
	Clock       string    `json:"clock,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`

	Home Team `json:"home"`
	Away Team `json:"away"`

	HomeLeader *Leader `json:"homeLeader,omitempty"`
	AwayLeader *Leader `json:"awayLeader,omitempty"`

	IsOvertime      bool             `json:"isOvertime"`
	IsClosest       bool             `json:"isClosest"`
	IsMarquee       bool             `json:"isMarquee"`
	ScoreDifference *int             `json:"scoreDifference,omitempty"`
	Competitiveness *Competitiveness `json:"competitiveness,omitempty"`
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.Home.ID == "" || g.Away.ID == "" {
		return fmt.Errorf("game %s: both team ids are required", g.ID)
	}
	return nil
}

// Winner returns the winning team and true when the game finished with a
// strict winner. Scheduled, live and tied games have no winner.
func (g Game) Winner() (Team, bool) {
	if g.Status != StatusFinal || g.Home.Score == nil || g.Away.Score == nil {
		return Team{}, false
	}
	switch {
	case *g.Home.Score > *g.Away.Score:
		return g.Home, true
	case *g.Away.Score > *g.Home.Score:
		return g.Away, true
	default:
		return Team{}, false
	}
}

// ParseRecord splits an upstream "W-L" record string. Malformed input
// yields 0-0 rather than an error.
func ParseRecord(record string) (wins, losses int) {
	parts := strings.SplitN(strings.TrimSpace(record), "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	l, errL := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errL != nil || w < 0 || l < 0 {
		return 0, 0
	}
	return w, l
}

// PeriodType tags a period number as regulation or overtime.
func PeriodType(number int) string {
	if number > regulationPeriods {
		return PeriodOvertime
	}
	return PeriodRegular
}

// DefaultLogo is the deterministic CDN fallback used when upstream does not
// supply a logo URL.
func DefaultLogo(abbreviation string) string {
	return fmt.Sprintf(logoTemplate, strings.ToLower(strings.TrimSpace(abbreviation)))
}
