package usecase

import (
	"strings"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/game"
)

// normalizeEvent converts one raw upstream event into a classified
// canonical game. Status is reconciled against score evidence before the
// derived flags are computed.
func normalizeEvent(event ExternalEvent, marquee game.MarqueeConfig) game.Game {
	rawHome, rawAway := splitCompetitors(event.Competitors)
	home := externalCompetitorToGameInput(rawHome)
	away := externalCompetitorToGameInput(rawAway)

	g := game.Game{
		ID:          event.ID,
		StatusText:  event.StatusText,
		Period:      event.Period,
		Clock:       event.Clock,
		ScheduledAt: event.StartsAt,
		Home:        game.NormalizeTeam(game.TeamSource{Competitor: &home}),
		Away:        game.NormalizeTeam(game.TeamSource{Competitor: &away}),
	}

	reported := game.ParseStatus(event.StatusState)
	g.Status = game.ReconcileStatus(reported, event.Completed, g.Home.Score, g.Away.Score)
	g.HomeLeader = eventLeader(event.Leaders, g.Home.ID)
	g.AwayLeader = eventLeader(event.Leaders, g.Away.ID)
	g.IsMarquee = marquee.IsMarquee(g.Away.Abbreviation, g.Home.Abbreviation)

	return game.Classify(g)
}

// splitCompetitors resolves the home and away sides from the upstream
// homeAway marker, falling back to the provider's home-first ordering when
// the marker is missing.
func splitCompetitors(competitors []ExternalCompetitor) (home, away ExternalCompetitor) {
	for _, competitor := range competitors {
		switch strings.ToLower(strings.TrimSpace(competitor.HomeAway)) {
		case "home":
			home = competitor
		case "away":
			away = competitor
		}
	}
	if home.ID == "" && away.ID == "" && len(competitors) >= 2 {
		home, away = competitors[0], competitors[1]
	}
	return home, away
}

func eventLeader(leaders []ExternalLeader, teamID string) *game.Leader {
	if teamID == "" {
		return nil
	}
	for _, leader := range leaders {
		if leader.TeamID != teamID || leader.AthleteID == "" {
			continue
		}
		return &game.Leader{
			AthleteID: leader.AthleteID,
			Name:      leader.Name,
			Headshot:  leader.Headshot,
			Category:  leader.Category,
			Value:     leader.Value,
		}
	}
	return nil
}

func externalCompetitorToGameInput(competitor ExternalCompetitor) game.Competitor {
	return game.Competitor{
		ID:           competitor.ID,
		DisplayName:  competitor.DisplayName,
		Location:     competitor.Location,
		Abbreviation: competitor.Abbreviation,
		Logo:         competitor.Logo,
		Record:       competitor.Record,
		Score:        competitor.Score,
		Linescores:   competitor.Linescores,
	}
}
