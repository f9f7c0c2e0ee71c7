package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const epsilon = 0.005

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCombineSeasonLogs_RederivesRatesFromTotals(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 7, Season: 2024, Team: "Duke", League: "NCAA", GP: 10, GS: 8, PTS: 20, FGM: 5, FGA: 10, Wins: 7, Losses: 3},
		{PlayerID: 7, Season: 2024, Team: "Duke", League: "NIT", GP: 5, GS: 5, PTS: 10, FGM: 3, FGA: 10, Wins: 4, Losses: 1},
	}

	got := CombineSeasonLogs(logs)
	if len(got) != 1 {
		t.Fatalf("expected 1 combined row, got %d", len(got))
	}

	row := got[0]
	if row.GP != 15 {
		t.Fatalf("unexpected GP: got=%v want=15", row.GP)
	}
	if !approxEqual(row.PTS, 16.67) {
		t.Fatalf("unexpected PTS: got=%.4f want=16.67", row.PTS)
	}
	if !approxEqual(row.FGPct, 43.33) {
		t.Fatalf("unexpected FG%%: got=%.4f want=43.33", row.FGPct)
	}
	if row.GS != 13 || row.Wins != 11 || row.Losses != 4 {
		t.Fatalf("expected summed totals, got GS=%v W=%v L=%v", row.GS, row.Wins, row.Losses)
	}
	if row.League != LeagueCombined {
		t.Fatalf("expected combined league tag, got %q", row.League)
	}
}

func TestCombineSeasonLogs_PercentageIsNotAverageOfPercentages(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "Kansas", League: "NCAA", GP: 10, FGM: 5, FGA: 10, FGPct: 50, ThreePM: 1, ThreePA: 4, FTM: 2, FTA: 2},
		{PlayerID: 1, Season: 2025, Team: "Kansas", League: "CBI", GP: 5, FGM: 3, FGA: 10, FGPct: 30, ThreePM: 2, ThreePA: 4, FTM: 1, FTA: 4},
	}

	row := CombineSeasonLogs(logs)[0]
	if approxEqual(row.FGPct, 40) {
		t.Fatalf("FG%% must not be the mean of input percentages")
	}
	if !approxEqual(row.FGPct, 43.33) {
		t.Fatalf("unexpected FG%%: got=%.4f", row.FGPct)
	}
	// 3P: (1*10 + 2*5) / (4*10 + 4*5) = 20/60
	if !approxEqual(row.ThreePct, 33.33) {
		t.Fatalf("unexpected 3P%%: got=%.4f", row.ThreePct)
	}
	// FT: (2*10 + 1*5) / (2*10 + 4*5) = 25/40
	if !approxEqual(row.FTPct, 62.5) {
		t.Fatalf("unexpected FT%%: got=%.4f", row.FTPct)
	}
	// eFG: (65 + 0.5*20) / 150
	if !approxEqual(row.EFGPct, 50) {
		t.Fatalf("unexpected eFG%%: got=%.4f", row.EFGPct)
	}
}

func TestCombineSeasonLogs_SingleRowPassesThrough(t *testing.T) {
	original := SeasonLog{
		PlayerID: 3, Season: 2023, Team: "Real Madrid", League: "ACB",
		GP: 7, GS: 2, MP: 13.333333333, PTS: 6.1, FGM: 2.2, FGA: 5.3, FGPct: 41.509433962,
		Age: "19",
	}
	other := SeasonLog{PlayerID: 3, Season: 2024, Team: "Real Madrid", League: "ACB", GP: 30, PTS: 9}

	got := CombineSeasonLogs([]SeasonLog{original, other})
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], original) {
		t.Fatalf("single row was modified:\nwant: %+v\ngot:  %+v", original, got[0])
	}
}

func TestCombineSeasonLogs_KeepsFirstAppearanceOrder(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "B", League: "NCAA", GP: 1},
		{PlayerID: 1, Season: 2024, Team: "A", League: "NCAA", GP: 1},
		{PlayerID: 1, Season: 2025, Team: "B", League: "NIT", GP: 1},
	}

	got := CombineSeasonLogs(logs)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Season != 2025 || got[1].Season != 2024 {
		t.Fatalf("unexpected order: %d, %d", got[0].Season, got[1].Season)
	}
}

func TestCombineSeasonLogs_ZeroAttemptsYieldNaN(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "A", League: "NCAA", GP: 2, FGM: 1, FGA: 2},
		{PlayerID: 1, Season: 2025, Team: "A", League: "NIT", GP: 1, FGM: 1, FGA: 1},
	}

	row := CombineSeasonLogs(logs)[0]
	if !math.IsNaN(row.ThreePct) {
		t.Fatalf("expected NaN 3P%% with zero attempts, got %v", row.ThreePct)
	}
	if math.IsNaN(row.FGPct) {
		t.Fatalf("expected numeric FG%%")
	}
}

func TestDraftClassAverage_SimpleMeanOverRows(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "A", League: LeagueNCAA, GP: 30, PTS: 20, FGM: 8, FGA: 16, ThreePM: 2, ThreePA: 5, FTM: 2, FTA: 3},
		{PlayerID: 2, Season: 2025, Team: "B", League: LeagueNCAA, GP: 10, PTS: 10, FGM: 4, FGA: 10, ThreePM: 1, ThreePA: 5, FTM: 1, FTA: 1},
		{PlayerID: 2, Season: 2025, Team: "C", League: LeagueNCAA, GP: 20, PTS: 6, FGM: 2, FGA: 4, ThreePM: 0, ThreePA: 0, FTM: 1, FTA: 2},
		{PlayerID: 3, Season: 2025, Team: "Mega", League: "ABA", GP: 25, PTS: 40},
		{PlayerID: 4, Season: 2024, Team: "D", League: LeagueNCAA, GP: 25, PTS: 40},
	}

	got, err := DraftClassAverage(logs, 2025, LeagueNCAA)
	if err != nil {
		t.Fatalf("draft class average: %v", err)
	}

	if got.PlayerID != DraftClassPlayerID || got.Team != DraftClassTeam || got.League != LeagueNCAA {
		t.Fatalf("unexpected identity: %+v", got)
	}
	// Denominator is three rows, not two players, and GP does not weight the mean.
	if !approxEqual(got.PTS, 12) {
		t.Fatalf("unexpected PTS mean: got=%.4f want=12", got.PTS)
	}
	if !approxEqual(got.GP, 20) {
		t.Fatalf("unexpected GP mean: got=%.4f want=20", got.GP)
	}
	if !approxEqual(got.FGPct, 14.0/30.0*100) {
		t.Fatalf("unexpected FG%%: got=%.4f", got.FGPct)
	}
	if !approxEqual(got.ThreePct, 30) {
		t.Fatalf("unexpected 3P%%: got=%.4f", got.ThreePct)
	}
	if !approxEqual(got.FTPct, 4.0/6.0*100) {
		t.Fatalf("unexpected FT%%: got=%.4f", got.FTPct)
	}
}

func TestDraftClassAverage_IsIdempotent(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "A", League: LeagueNCAA, GP: 30, PTS: 17.3, FGM: 6.1, FGA: 13.9, FG2M: 4.9, FG2A: 9.8, ThreePM: 1.2, ThreePA: 4.1, FTM: 3.9, FTA: 5.2},
		{PlayerID: 2, Season: 2025, Team: "B", League: LeagueNCAA, GP: 28, PTS: 11.9, FGM: 4.4, FGA: 9.7, FG2M: 3.1, FG2A: 6.0, ThreePM: 1.3, ThreePA: 3.7, FTM: 1.8, FTA: 2.6},
	}

	first, err := DraftClassAverage(logs, 2025, LeagueNCAA)
	if err != nil {
		t.Fatalf("first average: %v", err)
	}
	second, err := DraftClassAverage(logs, 2025, LeagueNCAA)
	if err != nil {
		t.Fatalf("second average: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDraftClassAverage_EmptySeasonFails(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2025, Team: "Mega", League: "ABA", GP: 10, PTS: 10},
	}

	got, err := DraftClassAverage(logs, 2025, LeagueNCAA)
	if !errors.Is(err, ErrNoDraftClassData) {
		t.Fatalf("expected ErrNoDraftClassData, got %v", err)
	}
	if got != (SeasonLog{}) {
		t.Fatalf("expected zero value on failure, got %+v", got)
	}
}

func TestDraftClassAverage_RejectsOtherLeagues(t *testing.T) {
	logs := []SeasonLog{{PlayerID: 1, Season: 2025, Team: "Mega", League: "ABA", GP: 10}}

	if _, err := DraftClassAverage(logs, 2025, "ABA"); !errors.Is(err, ErrUnsupportedLeague) {
		t.Fatalf("expected ErrUnsupportedLeague, got %v", err)
	}
}

func TestSeasons_NewestFirst(t *testing.T) {
	logs := []SeasonLog{{Season: 2023}, {Season: 2025}, {Season: 2024}, {Season: 2025}}

	got := Seasons(logs)
	want := []int{2025, 2024, 2023}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected seasons: got=%v want=%v", got, want)
	}
}
