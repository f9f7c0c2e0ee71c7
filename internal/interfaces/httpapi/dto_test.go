package httpapi

import (
	"math"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

func TestFinitePtr(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		wantNil bool
	}{
		{name: "nan", in: math.NaN(), wantNil: true},
		{name: "positive infinity", in: math.Inf(1), wantNil: true},
		{name: "negative infinity", in: math.Inf(-1), wantNil: true},
		{name: "zero", in: 0},
		{name: "finite", in: 43.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := finitePtr(tc.in)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil for %v, got %v", tc.in, *got)
				}
				return
			}
			if got == nil || *got != tc.in {
				t.Fatalf("expected %v, got %v", tc.in, got)
			}
		})
	}
}

func TestSeasonLogToDTO_EncodesNonFinitePercentagesAsNull(t *testing.T) {
	row := stats.SeasonLog{
		PlayerID: 7,
		Season:   2025,
		Team:     "Duke",
		League:   stats.LeagueNCAA,
		FGPct:    50,
		ThreePct: math.NaN(),
		FTPct:    math.Inf(1),
		EFGPct:   math.NaN(),
		FG2Pct:   math.NaN(),
	}

	raw, err := sonic.Marshal(seasonLogToDTO(row))
	if err != nil {
		t.Fatalf("marshal season log dto: %v", err)
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal season log dto: %v", err)
	}
	for _, key := range []string{"three_pct", "ft_pct", "efg_pct", "fg2_pct"} {
		v, ok := decoded[key]
		if !ok {
			t.Fatalf("expected %s key in %s", key, raw)
		}
		if v != nil {
			t.Fatalf("expected %s null, got %v", key, v)
		}
	}
	if decoded["fg_pct"] != float64(50) {
		t.Fatalf("expected fg_pct 50, got %v", decoded["fg_pct"])
	}
}
