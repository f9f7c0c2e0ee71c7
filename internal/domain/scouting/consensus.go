package scouting

import "math"

// Consensus describes how one scout's rank compares to the average rank.
// Lower rank numbers are better.
type Consensus string

const (
	ConsensusAbove    Consensus = "above"
	ConsensusBelow    Consensus = "below"
	ConsensusNeutral  Consensus = "neutral"
	ConsensusUnranked Consensus = "unranked"
)

type ScoutOpinion struct {
	Scout     Scout
	Rank      *int
	Consensus Consensus
}

// AverageRank is the mean of the non-nil ranks rounded to two decimals. ok is
// false when no scout ranked the player.
func AverageRank(r ScoutRanking) (avg float64, ok bool) {
	sum := 0
	count := 0
	for _, scout := range Scouts {
		rank := r.Rank(scout)
		if rank == nil {
			continue
		}
		sum += *rank
		count++
	}
	if count == 0 {
		return 0, false
	}

	return roundTo(float64(sum)/float64(count), 2), true
}

// Classify labels every scout's rank against avg.
func Classify(r ScoutRanking, avg float64) []ScoutOpinion {
	out := make([]ScoutOpinion, 0, len(Scouts))
	for _, scout := range Scouts {
		rank := r.Rank(scout)
		out = append(out, ScoutOpinion{
			Scout:     scout,
			Rank:      rank,
			Consensus: compareToConsensus(rank, avg),
		})
	}
	return out
}

func compareToConsensus(rank *int, avg float64) Consensus {
	if rank == nil {
		return ConsensusUnranked
	}
	value := float64(*rank)
	switch {
	case value < avg:
		return ConsensusAbove
	case value > avg:
		return ConsensusBelow
	default:
		return ConsensusNeutral
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
