package game

import "strings"

// MarqueeConfig is the editorial list of franchises and matchup pairs that
// are always worth surfacing, independent of either team's record. It is
// injected configuration, not a hardwired constant.
type MarqueeConfig struct {
	Teams    []string
	Matchups [][2]string
}

// DefaultMarqueeConfig returns the editorial defaults used when no override
// is configured.
func DefaultMarqueeConfig() MarqueeConfig {
	return MarqueeConfig{
		Teams: []string{"LAL", "GSW", "BOS", "NYK"},
		Matchups: [][2]string{
			{"LAL", "BOS"},
			{"LAL", "GSW"},
			{"LAL", "LAC"},
			{"BOS", "PHI"},
			{"GSW", "CLE"},
			{"NYK", "BKN"},
		},
	}
}

// IsMarquee reports whether the away/home pairing is editorially
// significant: either team is an always-marquee franchise, or the unordered
// pair matches a configured matchup.
func (c MarqueeConfig) IsMarquee(awayAbbr, homeAbbr string) bool {
	away := strings.ToUpper(strings.TrimSpace(awayAbbr))
	home := strings.ToUpper(strings.TrimSpace(homeAbbr))
	if away == "" && home == "" {
		return false
	}

	for _, team := range c.Teams {
		abbr := strings.ToUpper(strings.TrimSpace(team))
		if abbr == "" {
			continue
		}
		if abbr == away || abbr == home {
			return true
		}
	}

	for _, pair := range c.Matchups {
		first := strings.ToUpper(strings.TrimSpace(pair[0]))
		second := strings.ToUpper(strings.TrimSpace(pair[1]))
		if first == "" || second == "" {
			continue
		}
		if (first == away && second == home) || (first == home && second == away) {
			return true
		}
	}

	return false
}
