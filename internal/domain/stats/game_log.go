package stats

import (
	"sort"
	"time"
)

// SortGameLogsByDateDesc returns a copy of logs ordered newest game first.
func SortGameLogsByDateDesc(logs []GameLog) []GameLog {
	out := append([]GameLog(nil), logs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// GameLogSeasons returns the distinct seasons in logs, newest first.
func GameLogSeasons(logs []GameLog) []int {
	seen := make(map[int]struct{}, len(logs))
	out := make([]int, 0)
	for _, g := range logs {
		if _, ok := seen[g.Season]; ok {
			continue
		}
		seen[g.Season] = struct{}{}
		out = append(out, g.Season)
	}
	sortSeasonsDesc(out)
	return out
}

func FilterGameLogsBySeason(logs []GameLog, season int) []GameLog {
	out := make([]GameLog, 0, len(logs))
	for _, g := range logs {
		if g.Season == season {
			out = append(out, g)
		}
	}
	return out
}

var gameDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseGameDate accepts the date layouts found in box score exports.
func ParseGameDate(raw string) (time.Time, bool) {
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
