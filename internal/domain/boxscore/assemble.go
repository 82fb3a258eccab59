package boxscore

import (
	"strconv"
	"strings"
)

// Upstream stat key names. Compound keys carry a made-attempted pair as a
// hyphenated value ("11-23").
const (
	keyMinutes       = "minutes"
	keyPoints        = "points"
	keyRebounds      = "rebounds"
	keyOffRebounds   = "offensiveRebounds"
	keyDefRebounds   = "defensiveRebounds"
	keyAssists       = "assists"
	keySteals        = "steals"
	keyBlocks        = "blocks"
	keyTurnovers     = "turnovers"
	keyFouls         = "fouls"
	keyPlusMinus     = "plusMinus"
	keyFieldGoals    = "fieldGoalsMade-fieldGoalsAttempted"
	keyThreePointers = "threePointersMade-threePointersAttempted"
	keyFreeThrows    = "freeThrowsMade-freeThrowsAttempted"
	keyFieldGoalPct  = "fieldGoalPct"
	keyThreePointPct = "threePointPct"
	keyFreeThrowPct  = "freeThrowPct"

	emptyPair = "0-0"
)

// StatBlock is one team's raw boxscore block: a key list plus athletes
// whose stat values are positionally aligned to those keys. Nil values mark
// positions the upstream left undefined.
type StatBlock struct {
	TeamID   string
	Keys     []string
	Athletes []Athlete
}

// Athlete is one raw athlete entry inside a StatBlock.
type Athlete struct {
	ID         string
	Name       string
	Jersey     string
	Position   string
	Starter    bool
	DidNotPlay bool
	DNPReason  string
	Stats      []any
}

// Assemble converts raw per-team stat blocks into partitioned team
// boxscores. The first block is treated as home when blocks carry no usable
// team ids; callers normally pass blocks already resolved against the
// current game. A missing or empty block yields a team with all three
// partitions empty rather than a failed response.
func Assemble(homeTeamID, awayTeamID string, blocks []StatBlock) Boxscore {
	box := Boxscore{
		Home: emptyTeamBoxscore(homeTeamID),
		Away: emptyTeamBoxscore(awayTeamID),
	}

	for _, block := range blocks {
		assembled := assembleTeam(block)
		switch block.TeamID {
		case homeTeamID:
			box.Home = assembled
		case awayTeamID:
			box.Away = assembled
		}
	}

	return box
}

func emptyTeamBoxscore(teamID string) TeamBoxscore {
	return TeamBoxscore{
		TeamID:     teamID,
		Starters:   []PlayerLine{},
		Bench:      []PlayerLine{},
		DidNotPlay: []PlayerLine{},
	}
}

func assembleTeam(block StatBlock) TeamBoxscore {
	out := emptyTeamBoxscore(block.TeamID)

	for _, athlete := range block.Athletes {
		line := buildLine(block.Keys, athlete)
		switch {
		case line.DidNotPlay:
			out.DidNotPlay = append(out.DidNotPlay, line)
		case line.Starter:
			out.Starters = append(out.Starters, line)
		default:
			out.Bench = append(out.Bench, line)
		}
	}

	return out
}

func buildLine(keys []string, athlete Athlete) PlayerLine {
	values := zipStats(keys, athlete.Stats)

	line := PlayerLine{
		AthleteID:  athlete.ID,
		Name:       athlete.Name,
		Jersey:     athlete.Jersey,
		Position:   athlete.Position,
		Starter:    athlete.Starter,
		DidNotPlay: athlete.DidNotPlay,
		DNPReason:  athlete.DNPReason,

		Minutes:   stringStat(values, keyMinutes, "-"),
		Points:    intStat(values, keyPoints),
		Rebounds:  intStat(values, keyRebounds),
		Assists:   intStat(values, keyAssists),
		Steals:    intStat(values, keySteals),
		Blocks:    intStat(values, keyBlocks),
		Turnovers: intStat(values, keyTurnovers),
		Fouls:     intStat(values, keyFouls),
		PlusMinus: intStat(values, keyPlusMinus),

		OffensiveRebounds: intStat(values, keyOffRebounds),
		DefensiveRebounds: intStat(values, keyDefRebounds),

		FieldGoals: Shooting{
			MadeAttempted: pairStat(values, keyFieldGoals),
			Percentage:    stringStat(values, keyFieldGoalPct, ""),
		},
		ThreePointers: Shooting{
			MadeAttempted: pairStat(values, keyThreePointers),
			Percentage:    stringStat(values, keyThreePointPct, ""),
		},
		FreeThrows: Shooting{
			MadeAttempted: pairStat(values, keyFreeThrows),
			Percentage:    stringStat(values, keyFreeThrowPct, ""),
		},
	}

	return line
}

// zipStats pairs stat keys with the athlete's positional values, skipping
// positions the upstream left undefined or null.
func zipStats(keys []string, stats []any) map[string]any {
	out := make(map[string]any, len(keys))
	for i, key := range keys {
		if i >= len(stats) {
			break
		}
		if stats[i] == nil {
			continue
		}
		out[key] = stats[i]
	}
	return out
}

func intStat(values map[string]any, key string) int {
	v, ok := values[key]
	if !ok {
		return 0
	}
	switch value := v.(type) {
	case int:
		return value
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(value, "+")))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func stringStat(values map[string]any, key, fallback string) string {
	v, ok := values[key]
	if !ok {
		return fallback
	}
	switch value := v.(type) {
	case string:
		if strings.TrimSpace(value) == "" {
			return fallback
		}
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fallback
	}
}

func pairStat(values map[string]any, key string) string {
	raw := stringStat(values, key, emptyPair)
	if !strings.Contains(raw, "-") {
		return emptyPair
	}
	return raw
}
