package stats

import (
	"errors"
	"fmt"
	"time"
)

const (
	// LeagueNCAA is the only league the draft-class average accepts.
	LeagueNCAA = "NCAA"
	// LeagueCombined tags a season row merged from several league rows.
	LeagueCombined = "Combined"

	// DraftClassPlayerID, DraftClassTeam and DraftClassAge identify the
	// synthetic row returned by DraftClassAverage.
	DraftClassPlayerID = int64(-1)
	DraftClassTeam     = "Draft Class Average"
	DraftClassAge      = "Average"
)

var (
	ErrNoDraftClassData  = errors.New("no draft class data for season")
	ErrUnsupportedLeague = errors.New("unsupported draft class league")
	ErrUnknownStat       = errors.New("unknown stat key")
)

// SeasonLog is one season on one team in one league. GP, GS, Wins and Losses
// are totals; shooting percentages are 0..100; every other number is per game.
type SeasonLog struct {
	PlayerID int64
	Season   int
	Team     string
	League   string
	Age      string

	GP     float64
	GS     float64
	Wins   float64
	Losses float64

	MP  float64
	PTS float64
	AST float64
	STL float64
	BLK float64
	TOV float64
	PF  float64
	ORB float64
	DRB float64
	TRB float64

	FGM     float64
	FGA     float64
	FG2M    float64
	FG2A    float64
	ThreePM float64
	ThreePA float64
	FTM     float64
	FTA     float64

	FGPct    float64
	FG2Pct   float64
	ThreePct float64
	FTPct    float64
	EFGPct   float64
}

func (l SeasonLog) Validate() error {
	if l.PlayerID <= 0 {
		return fmt.Errorf("season log player id must be greater than zero")
	}
	if l.Season <= 0 {
		return fmt.Errorf("season log season must be greater than zero")
	}
	if l.League == "" {
		return fmt.Errorf("season log league is required")
	}
	if l.GP < 0 || l.GS < 0 {
		return fmt.Errorf("season log games must not be negative")
	}

	return nil
}

// GameLog is a single game box score line.
type GameLog struct {
	PlayerID       int64
	GameID         int64
	Date           time.Time
	Season         int
	League         string
	Team           string
	TeamID         int64
	Opponent       string
	OpponentID     int64
	IsHome         *bool
	HomeTeamPts    int
	VisitorTeamPts int
	GP             int
	GS             int
	TimePlayed     string

	PTS       int
	AST       int
	REB       int
	DREB      int
	OREB      int
	STL       int
	BLK       int
	PF        int
	TOV       int
	PlusMinus int

	FGM   int
	FGA   int
	FGPct *float64
	TPM   int
	TPA   int
	TPPct *float64
	FTM   int
	FTA   int
	FTPct *float64
}

// Score returns the final score from the player's team perspective. Games with
// unknown venue are reported as away games.
func (g GameLog) Score() (team int, opponent int) {
	if g.IsHome != nil && *g.IsHome {
		return g.HomeTeamPts, g.VisitorTeamPts
	}
	return g.VisitorTeamPts, g.HomeTeamPts
}

// StatKey names a per-game stat that can be ranked across the roster.
type StatKey string

const (
	StatPoints   StatKey = "PTS"
	StatAssists  StatKey = "AST"
	StatRebounds StatKey = "TRB"
	StatBlocks   StatKey = "BLK"
	StatSteals   StatKey = "STL"
)

// RankableStats lists every stat RankStat accepts, in display order.
var RankableStats = []StatKey{StatPoints, StatAssists, StatRebounds, StatBlocks, StatSteals}

func ParseStatKey(raw string) (StatKey, error) {
	key := StatKey(raw)
	switch key {
	case StatPoints, StatAssists, StatRebounds, StatBlocks, StatSteals:
		return key, nil
	case "REB":
		return StatRebounds, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStat, raw)
	}
}

func (k StatKey) valueOf(l SeasonLog) float64 {
	switch k {
	case StatPoints:
		return l.PTS
	case StatAssists:
		return l.AST
	case StatRebounds:
		return l.TRB
	case StatBlocks:
		return l.BLK
	case StatSteals:
		return l.STL
	default:
		return 0
	}
}
