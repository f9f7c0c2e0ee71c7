package stats

import "sort"

// StatRank is one player's position for one stat among every player's most
// recent season.
type StatRank struct {
	Stat  StatKey
	Value float64
	Rank  int
	Total int
}

// LatestSeasonLogs picks each player's most recent season row. When a player
// has several rows for that season the first one in input order wins.
func LatestSeasonLogs(logs []SeasonLog) map[int64]SeasonLog {
	out := make(map[int64]SeasonLog)
	for _, l := range logs {
		current, ok := out[l.PlayerID]
		if !ok || l.Season > current.Season {
			out[l.PlayerID] = l
		}
	}
	return out
}

// RankStat ranks playerID's latest-season value for stat against every
// player's latest-season value, highest first. Equal values all receive the
// rank of the first of them in the sorted list; ties are not broken further.
func RankStat(logs []SeasonLog, playerID int64, stat StatKey) (StatRank, bool) {
	latest := LatestSeasonLogs(logs)
	own, ok := latest[playerID]
	if !ok {
		return StatRank{}, false
	}

	values := make([]float64, 0, len(latest))
	for _, l := range latest {
		values = append(values, stat.valueOf(l))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	target := stat.valueOf(own)
	rank := 0
	for i, v := range values {
		if v == target {
			rank = i + 1
			break
		}
	}

	return StatRank{
		Stat:  stat,
		Value: target,
		Rank:  rank,
		Total: len(values),
	}, true
}
