package espn

import (
	"strconv"
	"strings"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/usecase"
)

// Provider payload shapes. Everything is pointer-heavy and loosely typed on
// purpose: any nested field can be missing and the mapping must default
// rather than fail.

type scoreboardEnvelope struct {
	Events []eventItem `json:"events"`
}

type summaryEnvelope struct {
	Header       headerItem      `json:"header"`
	Boxscore     boxscoreItem    `json:"boxscore"`
	Injuries     []injuryGroup   `json:"injuries"`
	SeasonSeries []seasonsSeries `json:"seasonseries"`
}

type headerItem struct {
	ID           string      `json:"id"`
	Competitions []eventItem `json:"competitions"`
}

type eventItem struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Status       *statusItem       `json:"status"`
	StatusType   *statusTypeItem   `json:"statusType"`
	Competitions []competitionItem `json:"competitions"`
	Competitors  []competitorItem  `json:"competitors"`
}

type competitionItem struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Status      *statusItem      `json:"status"`
	Competitors []competitorItem `json:"competitors"`
	Leaders     []leaderGroup    `json:"leaders"`
}

type statusItem struct {
	Clock        float64         `json:"clock"`
	DisplayClock string          `json:"displayClock"`
	Period       int             `json:"period"`
	Type         *statusTypeItem `json:"type"`
}

type statusTypeItem struct {
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

type competitorItem struct {
	ID         string          `json:"id"`
	HomeAway   string          `json:"homeAway"`
	Winner     bool            `json:"winner"`
	Score      string          `json:"score"`
	Team       *teamItem       `json:"team"`
	Records    []recordItem    `json:"records"`
	Linescores []linescoreItem `json:"linescores"`
}

type teamItem struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
}

type recordItem struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type linescoreItem struct {
	Value float64 `json:"value"`
}

type leaderGroup struct {
	Team    *teamItem     `json:"team"`
	Leaders []leaderEntry `json:"leaders"`
}

type leaderEntry struct {
	DisplayName string        `json:"displayName"`
	ShortName   string        `json:"shortDisplayName"`
	Leaders     []leaderValue `json:"leaders"`
}

type leaderValue struct {
	Value   float64      `json:"value"`
	Athlete *athleteItem `json:"athlete"`
}

type athleteItem struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"displayName"`
	Jersey      string        `json:"jersey"`
	Headshot    string        `json:"headshot"`
	Position    *positionItem `json:"position"`
}

type positionItem struct {
	Abbreviation string `json:"abbreviation"`
}

type boxscoreItem struct {
	Teams   []teamStatisticsItem `json:"teams"`
	Players []playerBlockItem    `json:"players"`
}

type teamStatisticsItem struct {
	Team       *teamItem       `json:"team"`
	Statistics []statEntryItem `json:"statistics"`
}

type statEntryItem struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}

type playerBlockItem struct {
	Team       *teamItem        `json:"team"`
	Statistics []playerStatItem `json:"statistics"`
}

type playerStatItem struct {
	Names    []string          `json:"names"`
	Keys     []string          `json:"keys"`
	Athletes []playerLineEntry `json:"athletes"`
}

type playerLineEntry struct {
	Athlete    *athleteItem `json:"athlete"`
	Starter    bool         `json:"starter"`
	DidNotPlay bool         `json:"didNotPlay"`
	Reason     string       `json:"reason"`
	Stats      []any        `json:"stats"`
}

type injuryGroup struct {
	Team     *teamItem     `json:"team"`
	Injuries []injuryEntry `json:"injuries"`
}

type injuryEntry struct {
	Status  string         `json:"status"`
	Athlete *athleteItem   `json:"athlete"`
	Details *injuryDetails `json:"details"`
}

type injuryDetails struct {
	Type       string `json:"type"`
	Location   string `json:"location"`
	Detail     string `json:"detail"`
	Side       string `json:"side"`
	ReturnDate string `json:"returnDate"`
}

type seasonsSeries struct {
	TotalCompetitions int         `json:"totalCompetitions"`
	Events            []eventItem `json:"events"`
}

func mapScoreboard(date string, envelope scoreboardEnvelope) usecase.ExternalScoreboard {
	out := usecase.ExternalScoreboard{Date: date}
	for _, event := range envelope.Events {
		mapped := mapEvent(event)
		if mapped.ID == "" {
			continue
		}
		out.Events = append(out.Events, mapped)
	}
	return out
}

func mapEvent(event eventItem) usecase.ExternalEvent {
	out := usecase.ExternalEvent{ID: event.ID}

	competition := competitionItem{
		Date:        event.Date,
		Status:      event.Status,
		Competitors: event.Competitors,
	}
	if len(event.Competitions) > 0 {
		competition = event.Competitions[0]
		if competition.Date == "" {
			competition.Date = event.Date
		}
		if competition.Status == nil {
			competition.Status = event.Status
		}
	}

	if parsed := parseEventDate(competition.Date); parsed != nil {
		out.StartsAt = *parsed
	}

	statusType := event.StatusType
	if competition.Status != nil {
		out.Period = competition.Status.Period
		out.Clock = competition.Status.DisplayClock
		if competition.Status.Type != nil {
			statusType = competition.Status.Type
		}
	}
	if statusType != nil {
		out.StatusState = statusType.State
		out.Completed = statusType.Completed
		out.StatusText = firstNonEmpty(statusType.ShortDetail, statusType.Description)
	}

	for _, competitor := range competition.Competitors {
		out.Competitors = append(out.Competitors, mapCompetitor(competitor))
	}
	out.Leaders = mapLeaders(competition.Leaders)
	return out
}

func mapCompetitor(competitor competitorItem) usecase.ExternalCompetitor {
	out := usecase.ExternalCompetitor{
		ID:       competitor.ID,
		HomeAway: competitor.HomeAway,
		Winner:   competitor.Winner,
		Score:    parseScore(competitor.Score),
	}
	if competitor.Team != nil {
		if out.ID == "" {
			out.ID = competitor.Team.ID
		}
		out.DisplayName = competitor.Team.DisplayName
		out.Location = competitor.Team.Location
		out.Abbreviation = competitor.Team.Abbreviation
		out.Logo = competitor.Team.Logo
	}
	for _, record := range competitor.Records {
		if strings.EqualFold(record.Type, "total") || out.Record == "" {
			out.Record = record.Summary
		}
	}
	for _, linescore := range competitor.Linescores {
		out.Linescores = append(out.Linescores, int(linescore.Value))
	}
	return out
}

func mapLeaders(groups []leaderGroup) []usecase.ExternalLeader {
	out := make([]usecase.ExternalLeader, 0, len(groups))
	for _, group := range groups {
		if group.Team == nil {
			continue
		}
		for _, category := range group.Leaders {
			if len(category.Leaders) == 0 || category.Leaders[0].Athlete == nil {
				continue
			}
			top := category.Leaders[0]
			out = append(out, usecase.ExternalLeader{
				TeamID:    group.Team.ID,
				AthleteID: top.Athlete.ID,
				Name:      top.Athlete.DisplayName,
				Headshot:  top.Athlete.Headshot,
				Category:  firstNonEmpty(category.ShortName, category.DisplayName),
				Value:     top.Value,
			})
		}
	}
	return out
}

func mapSummary(gameID string, envelope summaryEnvelope) usecase.ExternalGameSummary {
	out := usecase.ExternalGameSummary{}

	for _, competition := range envelope.Header.Competitions {
		event := mapEvent(eventItem{
			ID:           firstNonEmpty(competition.ID, envelope.Header.ID, gameID),
			Date:         competition.Date,
			Status:       competition.Status,
			Competitors:  competition.Competitors,
			Competitions: nil,
		})
		if event.ID != "" {
			out.Event = event
			break
		}
	}

	for _, block := range envelope.Boxscore.Players {
		if block.Team == nil || len(block.Statistics) == 0 {
			continue
		}
		stats := block.Statistics[0]
		keys := stats.Keys
		if len(keys) == 0 {
			keys = stats.Names
		}
		mapped := usecase.ExternalStatBlock{
			TeamID: block.Team.ID,
			Keys:   keys,
		}
		for _, entry := range stats.Athletes {
			line := usecase.ExternalAthleteLine{
				Starter:    entry.Starter,
				DidNotPlay: entry.DidNotPlay,
				DNPReason:  entry.Reason,
				Stats:      entry.Stats,
			}
			if entry.Athlete != nil {
				line.ID = entry.Athlete.ID
				line.Name = entry.Athlete.DisplayName
				line.Jersey = entry.Athlete.Jersey
				if entry.Athlete.Position != nil {
					line.Position = entry.Athlete.Position.Abbreviation
				}
			}
			mapped.Athletes = append(mapped.Athletes, line)
		}
		out.StatBlocks = append(out.StatBlocks, mapped)
	}

	for _, team := range envelope.Boxscore.Teams {
		if team.Team == nil {
			continue
		}
		totals := usecase.ExternalTeamTotals{TeamID: team.Team.ID}
		for _, entry := range team.Statistics {
			totals.Entries = append(totals.Entries, usecase.ExternalStatEntry{
				Name:  entry.Name,
				Value: entry.DisplayValue,
			})
		}
		out.TeamTotals = append(out.TeamTotals, totals)
	}

	for _, group := range envelope.Injuries {
		if group.Team == nil {
			continue
		}
		for _, entry := range group.Injuries {
			mapped := usecase.ExternalInjury{
				TeamID: group.Team.ID,
				Status: entry.Status,
			}
			if entry.Athlete != nil {
				mapped.AthleteID = entry.Athlete.ID
				mapped.Name = entry.Athlete.DisplayName
				if entry.Athlete.Position != nil {
					mapped.Position = entry.Athlete.Position.Abbreviation
				}
			}
			if entry.Details != nil {
				mapped.DetailType = entry.Details.Type
				mapped.DetailLocation = entry.Details.Location
				mapped.DetailText = entry.Details.Detail
				mapped.DetailSide = entry.Details.Side
				mapped.ReturnDate = entry.Details.ReturnDate
			}
			out.Injuries = append(out.Injuries, mapped)
		}
	}

	for _, block := range envelope.SeasonSeries {
		if out.SeriesTotalGames == 0 {
			out.SeriesTotalGames = block.TotalCompetitions
		}
		for _, event := range block.Events {
			out.SeriesEvents = append(out.SeriesEvents, mapSeriesEvent(event))
		}
	}

	return out
}

func mapSeriesEvent(event eventItem) usecase.ExternalSeriesEvent {
	out := usecase.ExternalSeriesEvent{GameID: event.ID}
	if parsed := parseEventDate(event.Date); parsed != nil {
		out.ScheduledAt = *parsed
	}
	if event.StatusType != nil {
		out.Completed = event.StatusType.Completed
		out.StatusText = firstNonEmpty(event.StatusType.ShortDetail, event.StatusType.Description)
	}
	for _, competitor := range event.Competitors {
		id := competitor.ID
		if id == "" && competitor.Team != nil {
			id = competitor.Team.ID
		}
		switch strings.ToLower(strings.TrimSpace(competitor.HomeAway)) {
		case "home":
			out.HomeTeamID = id
			out.HomeScore = parseScore(competitor.Score)
		case "away":
			out.AwayTeamID = id
			out.AwayScore = parseScore(competitor.Score)
		}
		if competitor.Winner {
			out.WinnerTeamID = id
		}
	}
	return out
}

func parseScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func parseEventDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	layouts := []string{
		"2006-01-02T15:04Z07:00",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			value := parsed.UTC()
			return &value
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
