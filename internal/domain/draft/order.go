package draft

import "github.com/squaredcircle/fantasy-wrestling/internal/domain/league"

// BuildOrder sequences a draft from a round-one ordering. Snake drafts
// reverse the round-one order on even rounds; linear drafts repeat it
// every round. Overall picks are numbered sequentially from 1.
func BuildOrder(leagueID string, roundOne []string, rounds int, style league.DraftStyle) []OrderEntry {
	if len(roundOne) == 0 || rounds <= 0 {
		return nil
	}

	entries := make([]OrderEntry, 0, len(roundOne)*rounds)
	overall := 1
	for round := 1; round <= rounds; round++ {
		order := roundOne
		if style == league.DraftStyleSnake && round%2 == 0 {
			order = reversed(roundOne)
		}
		for slot, userID := range order {
			entries = append(entries, OrderEntry{
				LeagueID:    leagueID,
				OverallPick: overall,
				Round:       round,
				PickInRound: slot + 1,
				UserID:      userID,
			})
			overall++
		}
	}

	return entries
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
