package teamstats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/boxscore"
)

// StatEntry is one named upstream team total. Compound entries encode a
// made-attempted pair as a hyphenated name with a hyphenated value, e.g.
// name "fieldGoalsMade-fieldGoalsAttempted" with value "11-23".
type StatEntry struct {
	Name  string
	Value string
}

// TeamInput carries everything the aggregator may draw on for one team:
// upstream totals when present, the team's player lines as fallback.
type TeamInput struct {
	TeamID string
	Totals []StatEntry
	Lines  []boxscore.PlayerLine
}

// Aggregate derives per-team statistics for every supplied team. Upstream
// totals are preferred; summing player lines is the fallback used only when
// totals are entirely absent. An empty team list is a caller bug, not an
// upstream data problem.
func Aggregate(teams []TeamInput) ([]TeamStatistics, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("teamstats: aggregate requires at least one team")
	}

	out := make([]TeamStatistics, 0, len(teams))
	for _, team := range teams {
		if len(team.Totals) > 0 {
			out = append(out, fromTotals(team.TeamID, team.Totals))
			continue
		}
		out = append(out, fromPlayerLines(team.TeamID, team.Lines))
	}
	return out, nil
}

func fromTotals(teamID string, totals []StatEntry) TeamStatistics {
	stats := emptyStatistics(teamID)

	for _, entry := range totals {
		name := strings.TrimSpace(entry.Name)
		value := strings.TrimSpace(entry.Value)

		if made, attempted, ok := splitCompound(name, value); ok {
			switch name {
			case "fieldGoalsMade-fieldGoalsAttempted":
				stats.FieldGoals = buildSplit(made, attempted, stats.FieldGoals.Percentage)
			case "threePointFieldGoalsMade-threePointFieldGoalsAttempted",
				"threePointersMade-threePointersAttempted":
				stats.ThreePointers = buildSplit(made, attempted, stats.ThreePointers.Percentage)
			case "freeThrowsMade-freeThrowsAttempted":
				stats.FreeThrows = buildSplit(made, attempted, stats.FreeThrows.Percentage)
			}
			continue
		}

		switch name {
		case "fieldGoalPct":
			stats.FieldGoals.Percentage = orUndefined(value)
		case "threePointFieldGoalPct", "threePointPct":
			stats.ThreePointers.Percentage = orUndefined(value)
		case "freeThrowPct":
			stats.FreeThrows.Percentage = orUndefined(value)
		case "points":
			stats.Points = parseInt(value)
		case "totalRebounds", "rebounds":
			stats.Rebounds = parseInt(value)
		case "offensiveRebounds":
			stats.OffensiveRebounds = parseInt(value)
		case "defensiveRebounds":
			stats.DefensiveRebounds = parseInt(value)
		case "assists":
			stats.Assists = parseInt(value)
		case "steals":
			stats.Steals = parseInt(value)
		case "blocks":
			stats.Blocks = parseInt(value)
		case "turnovers", "totalTurnovers":
			stats.Turnovers = parseInt(value)
		case "fouls", "totalFouls":
			stats.Fouls = parseInt(value)
		case "pointsInPaint":
			stats.PointsInPaint = parseInt(value)
		case "fastBreakPoints":
			stats.FastBreakPoints = parseInt(value)
		case "largestLead":
			stats.LargestLead = parseInt(value)
		case "leadChanges":
			stats.LeadChanges = parseInt(value)
		case "leadPercentage":
			stats.LeadPercentage = orUndefined(value)
		case "technicalFouls":
			stats.TechnicalFouls = parseInt(value)
		}
	}

	return stats
}

// fromPlayerLines sums a team's player lines. Percentages are derived from
// the summed pairs where attempts exist; with zero attempts there is no
// basis for a percentage and it stays undefined.
func fromPlayerLines(teamID string, lines []boxscore.PlayerLine) TeamStatistics {
	stats := emptyStatistics(teamID)

	var fgMade, fgAtt, tpMade, tpAtt, ftMade, ftAtt int
	for _, line := range lines {
		if line.DidNotPlay {
			continue
		}
		stats.Points += line.Points
		stats.Rebounds += line.Rebounds
		stats.OffensiveRebounds += line.OffensiveRebounds
		stats.DefensiveRebounds += line.DefensiveRebounds
		stats.Assists += line.Assists
		stats.Steals += line.Steals
		stats.Blocks += line.Blocks
		stats.Turnovers += line.Turnovers
		stats.Fouls += line.Fouls

		made, attempted := parsePair(line.FieldGoals.MadeAttempted)
		fgMade += made
		fgAtt += attempted
		made, attempted = parsePair(line.ThreePointers.MadeAttempted)
		tpMade += made
		tpAtt += attempted
		made, attempted = parsePair(line.FreeThrows.MadeAttempted)
		ftMade += made
		ftAtt += attempted
	}

	stats.FieldGoals = buildSplit(fgMade, fgAtt, derivePercentage(fgMade, fgAtt))
	stats.ThreePointers = buildSplit(tpMade, tpAtt, derivePercentage(tpMade, tpAtt))
	stats.FreeThrows = buildSplit(ftMade, ftAtt, derivePercentage(ftMade, ftAtt))

	return stats
}

func emptyStatistics(teamID string) TeamStatistics {
	return TeamStatistics{
		TeamID:         teamID,
		FieldGoals:     buildSplit(0, 0, PercentageUndefined),
		ThreePointers:  buildSplit(0, 0, PercentageUndefined),
		FreeThrows:     buildSplit(0, 0, PercentageUndefined),
		LeadPercentage: PercentageUndefined,
	}
}

func buildSplit(made, attempted int, percentage string) Split {
	if strings.TrimSpace(percentage) == "" {
		percentage = PercentageUndefined
	}
	return Split{
		Made:          made,
		Attempted:     attempted,
		MadeAttempted: fmt.Sprintf("%d-%d", made, attempted),
		Percentage:    percentage,
	}
}

// splitCompound decomposes a hyphenated compound entry positionally: the
// first name component pairs with the first value component.
func splitCompound(name, value string) (made, attempted int, ok bool) {
	if !strings.Contains(name, "-") {
		return 0, 0, false
	}
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	return parseInt(parts[0]), parseInt(parts[1]), true
}

func derivePercentage(made, attempted int) string {
	if attempted <= 0 {
		return PercentageUndefined
	}
	return strconv.FormatFloat(float64(made)/float64(attempted)*100, 'f', 1, 64)
}

func parsePair(raw string) (made, attempted int) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	return parseInt(parts[0]), parseInt(parts[1])
}

func parseInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

func orUndefined(value string) string {
	if strings.TrimSpace(value) == "" {
		return PercentageUndefined
	}
	return value
}
