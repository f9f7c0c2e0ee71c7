package draft

import (
	"cmp"
	"slices"
)

// BoardEntry pairs a player with their averaged scout rank.
type BoardEntry struct {
	PlayerID    int64
	AverageRank float64
	Ranked      bool
}

// BigBoard orders entries by average rank ascending with unranked players
// last. Equal ranks keep input order. A limit <= 0 keeps every entry.
func BigBoard(entries []BoardEntry, limit int) []BoardEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b BoardEntry) int {
		switch {
		case a.Ranked && !b.Ranked:
			return -1
		case !a.Ranked && b.Ranked:
			return 1
		case !a.Ranked && !b.Ranked:
			return 0
		default:
			return cmp.Compare(a.AverageRank, b.AverageRank)
		}
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
