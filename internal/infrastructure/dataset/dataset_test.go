package dataset

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleDocument = `{
  "bio": [
    {"playerId": 1, "name": "Cooper Flagg", "firstName": "Cooper", "lastName": "Flagg", "height": 81, "weight": 205,
     "highSchool": null, "homeTown": "Newport", "homeCountry": "USA", "nationality": "USA", "photoUrl": null,
     "currentTeam": "Duke", "league": "NCAA", "leagueType": "NCAA"}
  ],
  "measurements": [
    {"playerId": 1, "wingspan": 84.5, "reach": null}
  ],
  "game_logs": [
    {"playerId": 1, "gameId": 10, "date": "2024-11-04 00:00:00", "season": 2025, "league": "NCAA", "team": "Duke",
     "opponent": "Maine", "isHome": 1, "homeTeamPts": 96, "visitorTeamPts": 62, "pts": 18,
     "fga": 10, "fgm": 7, "fg%": 70.0, "fta": 0, "ftm": 0, "ft%": null, "tpa": 2, "tpm": 1, "tp%": 50.0}
  ],
  "seasonLogs": [
    {"playerId": 1, "Season": 2025, "Team": "Duke", "League": "NCAA", "age": 18, "GP": 37, "GS": 37,
     "PTS": 19.2, "FGA": 14.4, "FGM": 6.9, "FG%": 48.1, "3PA": 4.1, "3PM": 1.4, "3P%": null, "FT": 4.0, "FTA": 4.9, "FTP": 84.0,
     "w": 35, "l": 4}
  ],
  "scoutRankings": [
    {"playerId": 1, "ESPN Rank": 1, "Sam Vecenie Rank": 1, "Kevin O'Connor Rank": null, "Kyle Boone Rank": 2, "Gary Parrish Rank": null}
  ],
  "scoutingReports": [
    {"playerId": 1, "scout": "Internal", "reportId": "r-1", "report": "Two-way engine."}
  ]
}`

func TestDecode(t *testing.T) {
	ds, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(ds.Prospects) != 1 || ds.Prospects[0].Name != "Cooper Flagg" || ds.Prospects[0].HighSchool != "" {
		t.Fatalf("unexpected prospects: %+v", ds.Prospects)
	}
	if m := ds.Measurements[0]; m.Wingspan == nil || *m.Wingspan != 84.5 || m.Reach != nil {
		t.Fatalf("unexpected measurement: %+v", m)
	}

	g := ds.GameLogs[0]
	if g.IsHome == nil || !*g.IsHome {
		t.Fatalf("expected numeric isHome to decode as true")
	}
	if g.FTPct != nil {
		t.Fatalf("expected null ft%% to stay nil")
	}
	if g.Date.Year() != 2024 || g.Date.Month() != 11 {
		t.Fatalf("unexpected game date: %v", g.Date)
	}

	s := ds.SeasonLogs[0]
	if s.Age != "18" {
		t.Fatalf("expected numeric age to decode as text, got %q", s.Age)
	}
	if !math.IsNaN(s.ThreePct) {
		t.Fatalf("expected null 3P%% to decode as NaN, got %v", s.ThreePct)
	}
	if s.FTM != 4.0 || s.Wins != 35 {
		t.Fatalf("unexpected season log: %+v", s)
	}

	r := ds.Rankings[0]
	if r.ESPN == nil || *r.ESPN != 1 || r.KevinOConnor != nil {
		t.Fatalf("unexpected ranking: %+v", r)
	}
	if ds.Reports[0].Body != "Two-way engine." {
		t.Fatalf("unexpected report: %+v", ds.Reports[0])
	}
}

func TestDecode_InvalidRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing player id", raw: `{"bio": [{"name": "x"}]}`},
		{name: "made above attempts", raw: `{"game_logs": [{"playerId": 1, "gameId": 1, "date": "2024-01-01", "season": 2024, "fga": 1, "fgm": 2}]}`},
		{name: "bad date", raw: `{"game_logs": [{"playerId": 1, "gameId": 1, "date": "yesterday", "season": 2024}]}`},
		{name: "zero rank", raw: `{"scoutRankings": [{"playerId": 1, "ESPN Rank": 0}]}`},
		{name: "duplicate bio", raw: `{"bio": [{"playerId": 1, "name": "a"}, {"playerId": 1, "name": "b"}]}`},
		{name: "not json", raw: `{`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.raw))
			if !errors.Is(err, ErrInvalidDataset) {
				t.Fatalf("expected ErrInvalidDataset, got %v", err)
			}
		})
	}
}

func TestDecodeDraftOrder(t *testing.T) {
	raw := `[{"pick": 1, "team": "Dallas Mavericks", "gm": "Nico Harrison", "contact": "https://www.mavs.com"},
	         {"pick": 2, "team": "San Antonio Spurs"}]`

	order, err := DecodeDraftOrder([]byte(raw))
	if err != nil {
		t.Fatalf("decode draft order: %v", err)
	}
	if len(order) != 2 || order[0].GM != "Nico Harrison" {
		t.Fatalf("unexpected order: %+v", order)
	}

	if _, err := DecodeDraftOrder([]byte(`[{"pick": 1, "team": "A"}, {"pick": 1, "team": "B"}]`)); !errors.Is(err, ErrInvalidDataset) {
		t.Fatalf("expected ErrInvalidDataset for duplicate pick, got %v", err)
	}
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "prospects.json")
	orderPath := filepath.Join(dir, "order.json")
	if err := os.WriteFile(dataPath, []byte(sampleDocument), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	if err := os.WriteFile(orderPath, []byte(`[{"pick": 1, "team": "Dallas Mavericks"}]`), 0o600); err != nil {
		t.Fatalf("write order: %v", err)
	}

	ds, err := FileSource{DatasetPath: dataPath, DraftOrderPath: orderPath}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.DraftOrder) != 1 || len(ds.Prospects) != 1 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}

	if _, err := (FileSource{DatasetPath: filepath.Join(dir, "missing.json")}).Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
