package game

import "strings"

// ParseStatus maps an upstream status state/name onto the canonical enum.
// Unknown codes default to scheduled.
func ParseStatus(state string) Status {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "in", "live", "halftime", "end of period":
		return StatusLive
	case "post", "final", "full-time":
		return StatusFinal
	case "pre", "scheduled":
		return StatusScheduled
	default:
		return StatusScheduled
	}
}

// ReconcileStatus corrects an upstream-reported status against score
// evidence. Upstream enumerations are unreliable: a "scheduled" code can
// persist after scoring begins. When both scores are present and at least
// one is nonzero the game cannot still be scheduled; it is live unless the
// upstream completed flag says otherwise. A 0-0 scoreline is ambiguous
// between "not started" and a true 0-0, so in that case the reported status
// is trusted verbatim.
func ReconcileStatus(reported Status, completed bool, homeScore, awayScore *int) Status {
	if homeScore == nil || awayScore == nil {
		return reported
	}
	if *homeScore == 0 && *awayScore == 0 {
		return reported
	}
	if reported != StatusScheduled {
		return reported
	}
	if completed {
		return StatusFinal
	}
	return StatusLive
}
