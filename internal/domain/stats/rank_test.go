package stats

import (
	"reflect"
	"testing"
	"time"
)

func TestRankStat(t *testing.T) {
	logs := []SeasonLog{
		{PlayerID: 1, Season: 2024, PTS: 30},
		{PlayerID: 1, Season: 2025, PTS: 12, AST: 5},
		{PlayerID: 2, Season: 2025, PTS: 18, AST: 2},
		{PlayerID: 3, Season: 2025, PTS: 12, AST: 7},
		{PlayerID: 4, Season: 2025, PTS: 9, AST: 1},
		{PlayerID: 4, Season: 2025, PTS: 25, AST: 9},
	}

	tests := []struct {
		name      string
		playerID  int64
		stat      StatKey
		wantRank  int
		wantValue float64
	}{
		{name: "uses latest season", playerID: 1, stat: StatPoints, wantRank: 2, wantValue: 12},
		{name: "ties share the best index", playerID: 3, stat: StatPoints, wantRank: 2, wantValue: 12},
		{name: "best value", playerID: 2, stat: StatPoints, wantRank: 1, wantValue: 18},
		{name: "first row of latest season wins", playerID: 4, stat: StatPoints, wantRank: 4, wantValue: 9},
		{name: "other stat", playerID: 3, stat: StatAssists, wantRank: 1, wantValue: 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := RankStat(logs, tc.playerID, tc.stat)
			if !ok {
				t.Fatalf("expected rank for player %d", tc.playerID)
			}
			if got.Rank != tc.wantRank {
				t.Fatalf("unexpected rank: got=%d want=%d", got.Rank, tc.wantRank)
			}
			if got.Value != tc.wantValue {
				t.Fatalf("unexpected value: got=%v want=%v", got.Value, tc.wantValue)
			}
			if got.Total != 4 {
				t.Fatalf("unexpected total: got=%d want=4", got.Total)
			}
		})
	}
}

func TestRankStat_PlayerWithoutLogs(t *testing.T) {
	logs := []SeasonLog{{PlayerID: 1, Season: 2025, PTS: 10}}

	if _, ok := RankStat(logs, 99, StatPoints); ok {
		t.Fatalf("expected no rank for unknown player")
	}
}

func TestParseStatKey(t *testing.T) {
	if got, err := ParseStatKey("REB"); err != nil || got != StatRebounds {
		t.Fatalf("expected REB alias to map to TRB, got %q err=%v", got, err)
	}
	if _, err := ParseStatKey("FG%"); err == nil {
		t.Fatalf("expected error for unsupported stat")
	}
}

func TestGameLogs_SortAndSeasons(t *testing.T) {
	day := func(s string) time.Time {
		v, ok := ParseGameDate(s)
		if !ok {
			t.Fatalf("parse date %q", s)
		}
		return v
	}
	logs := []GameLog{
		{GameID: 1, Season: 2024, Date: day("2024-01-03")},
		{GameID: 2, Season: 2025, Date: day("2025-02-01 00:00:00")},
		{GameID: 3, Season: 2025, Date: day("2024-11-20T19:00:00Z")},
	}

	sorted := SortGameLogsByDateDesc(logs)
	ids := []int64{sorted[0].GameID, sorted[1].GameID, sorted[2].GameID}
	if !reflect.DeepEqual(ids, []int64{2, 3, 1}) {
		t.Fatalf("unexpected order: %v", ids)
	}
	if logs[0].GameID != 1 {
		t.Fatalf("input slice must not be reordered")
	}

	if got := GameLogSeasons(logs); !reflect.DeepEqual(got, []int{2025, 2024}) {
		t.Fatalf("unexpected seasons: %v", got)
	}
	if got := FilterGameLogsBySeason(logs, 2025); len(got) != 2 {
		t.Fatalf("expected 2 games in 2025, got %d", len(got))
	}
}

func TestGameLog_Score(t *testing.T) {
	home := true
	g := GameLog{IsHome: &home, HomeTeamPts: 80, VisitorTeamPts: 70}
	if team, opp := g.Score(); team != 80 || opp != 70 {
		t.Fatalf("unexpected home score: %d-%d", team, opp)
	}

	g.IsHome = nil
	if team, opp := g.Score(); team != 70 || opp != 80 {
		t.Fatalf("unexpected away score: %d-%d", team, opp)
	}
}
