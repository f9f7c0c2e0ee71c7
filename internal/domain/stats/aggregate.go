package stats

import (
	"fmt"
	"math"
	"sort"
)

// accumulator sums season rows. Counts (GP, GS, W, L) are summed as-is; rate
// fields are summed after multiplying by a caller chosen weight.
type accumulator struct {
	rows int

	gp, gs, wins, losses float64

	mp, pts, ast, stl, blk, tov, pf float64
	orb, drb, trb                   float64

	fgm, fga, fg2m, fg2a, tpm, tpa, ftm, fta float64
}

func (a *accumulator) add(l SeasonLog, weight float64) {
	a.rows++

	a.gp += l.GP
	a.gs += l.GS
	a.wins += l.Wins
	a.losses += l.Losses

	a.mp += l.MP * weight
	a.pts += l.PTS * weight
	a.ast += l.AST * weight
	a.stl += l.STL * weight
	a.blk += l.BLK * weight
	a.tov += l.TOV * weight
	a.pf += l.PF * weight
	a.orb += l.ORB * weight
	a.drb += l.DRB * weight
	a.trb += l.TRB * weight

	a.fgm += l.FGM * weight
	a.fga += l.FGA * weight
	a.fg2m += l.FG2M * weight
	a.fg2a += l.FG2A * weight
	a.tpm += l.ThreePM * weight
	a.tpa += l.ThreePA * weight
	a.ftm += l.FTM * weight
	a.fta += l.FTA * weight
}

// rates divides every summed rate field by divisor and derives percentages
// from the made/attempt sums. Percentages do not depend on divisor.
func (a *accumulator) rates(divisor float64) SeasonLog {
	return SeasonLog{
		MP:  perUnit(a.mp, divisor),
		PTS: perUnit(a.pts, divisor),
		AST: perUnit(a.ast, divisor),
		STL: perUnit(a.stl, divisor),
		BLK: perUnit(a.blk, divisor),
		TOV: perUnit(a.tov, divisor),
		PF:  perUnit(a.pf, divisor),
		ORB: perUnit(a.orb, divisor),
		DRB: perUnit(a.drb, divisor),
		TRB: perUnit(a.trb, divisor),

		FGM:     perUnit(a.fgm, divisor),
		FGA:     perUnit(a.fga, divisor),
		FG2M:    perUnit(a.fg2m, divisor),
		FG2A:    perUnit(a.fg2a, divisor),
		ThreePM: perUnit(a.tpm, divisor),
		ThreePA: perUnit(a.tpa, divisor),
		FTM:     perUnit(a.ftm, divisor),
		FTA:     perUnit(a.fta, divisor),

		FGPct:    Percentage(a.fgm, a.fga),
		FG2Pct:   Percentage(a.fg2m, a.fg2a),
		ThreePct: Percentage(a.tpm, a.tpa),
		FTPct:    Percentage(a.ftm, a.fta),
		EFGPct:   Percentage(a.fgm+0.5*a.tpm, a.fga),
	}
}

// Percentage returns made/attempted*100, or NaN when nothing was attempted.
func Percentage(made, attempted float64) float64 {
	if attempted == 0 {
		return math.NaN()
	}
	return made / attempted * 100
}

func perUnit(total, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	return total / divisor
}

type seasonKey struct {
	playerID int64
	season   int
	team     string
}

// CombineSeasonLogs merges rows sharing player, season and team into one row
// per group, keeping the order in which groups first appear. Single-row groups
// are returned untouched.
func CombineSeasonLogs(logs []SeasonLog) []SeasonLog {
	order := make([]seasonKey, 0, len(logs))
	groups := make(map[seasonKey][]SeasonLog, len(logs))
	for _, l := range logs {
		key := seasonKey{playerID: l.PlayerID, season: l.Season, team: l.Team}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], l)
	}

	out := make([]SeasonLog, 0, len(order))
	for _, key := range order {
		rows := groups[key]
		if len(rows) == 1 {
			out = append(out, rows[0])
			continue
		}
		out = append(out, combineRows(rows))
	}

	return out
}

func combineRows(rows []SeasonLog) SeasonLog {
	var acc accumulator
	for _, row := range rows {
		acc.add(row, row.GP)
	}

	out := acc.rates(acc.gp)
	out.PlayerID = rows[0].PlayerID
	out.Season = rows[0].Season
	out.Team = rows[0].Team
	out.League = LeagueCombined
	out.Age = rows[0].Age
	out.GP = acc.gp
	out.GS = acc.gs
	out.Wins = acc.wins
	out.Losses = acc.losses

	return out
}

// DraftClassAverage returns the simple per-row mean of every season log played
// in league during season. Only LeagueNCAA is accepted.
func DraftClassAverage(logs []SeasonLog, season int, league string) (SeasonLog, error) {
	if league != LeagueNCAA {
		return SeasonLog{}, fmt.Errorf("%w: %q", ErrUnsupportedLeague, league)
	}

	var acc accumulator
	for _, l := range logs {
		if l.Season != season || l.League != league {
			continue
		}
		acc.add(l, 1)
	}
	if acc.rows == 0 {
		return SeasonLog{}, fmt.Errorf("%w: season=%d league=%s", ErrNoDraftClassData, season, league)
	}

	n := float64(acc.rows)
	out := acc.rates(n)
	out.PlayerID = DraftClassPlayerID
	out.Season = season
	out.Team = DraftClassTeam
	out.League = league
	out.Age = DraftClassAge
	out.GP = acc.gp / n
	out.GS = acc.gs / n
	out.Wins = acc.wins / n
	out.Losses = acc.losses / n

	return out, nil
}

// Seasons returns the distinct seasons present in logs, newest first.
func Seasons(logs []SeasonLog) []int {
	seen := make(map[int]struct{}, len(logs))
	out := make([]int, 0)
	for _, l := range logs {
		if _, ok := seen[l.Season]; ok {
			continue
		}
		seen[l.Season] = struct{}{}
		out = append(out, l.Season)
	}
	sortSeasonsDesc(out)
	return out
}

func sortSeasonsDesc(seasons []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(seasons)))
}
