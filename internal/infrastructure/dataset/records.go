package dataset

import (
	"bytes"
	"math"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

type document struct {
	Bio             []bioRecord            `json:"bio"`
	Measurements    []measurementRecord    `json:"measurements"`
	GameLogs        []gameLogRecord        `json:"game_logs"`
	SeasonLogs      []seasonLogRecord      `json:"seasonLogs"`
	ScoutRankings   []scoutRankingRecord   `json:"scoutRankings"`
	ScoutingReports []scoutingReportRecord `json:"scoutingReports"`
}

type bioRecord struct {
	PlayerID        int64   `json:"playerId" validate:"required,gt=0"`
	Name            string  `json:"name" validate:"required"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	BirthDate       string  `json:"birthDate"`
	Height          float64 `json:"height" validate:"gte=0"`
	Weight          float64 `json:"weight" validate:"gte=0"`
	HighSchool      *string `json:"highSchool"`
	HighSchoolState *string `json:"highSchoolState"`
	HomeTown        string  `json:"homeTown"`
	HomeState       *string `json:"homeState"`
	HomeCountry     string  `json:"homeCountry"`
	Nationality     string  `json:"nationality"`
	PhotoURL        *string `json:"photoUrl"`
	CurrentTeam     string  `json:"currentTeam"`
	League          string  `json:"league"`
	LeagueType      string  `json:"leagueType"`
}

func (r bioRecord) toDomain() prospect.Prospect {
	return prospect.Prospect{
		PlayerID:        r.PlayerID,
		Name:            r.Name,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		BirthDate:       r.BirthDate,
		Height:          r.Height,
		Weight:          r.Weight,
		HighSchool:      deref(r.HighSchool),
		HighSchoolState: deref(r.HighSchoolState),
		HomeTown:        r.HomeTown,
		HomeState:       deref(r.HomeState),
		HomeCountry:     r.HomeCountry,
		Nationality:     r.Nationality,
		PhotoURL:        deref(r.PhotoURL),
		CurrentTeam:     r.CurrentTeam,
		League:          r.League,
		LeagueType:      r.LeagueType,
	}
}

type measurementRecord struct {
	PlayerID       int64    `json:"playerId" validate:"required,gt=0"`
	HeightNoShoes  *float64 `json:"heightNoShoes"`
	HeightShoes    *float64 `json:"heightShoes"`
	Wingspan       *float64 `json:"wingspan"`
	Reach          *float64 `json:"reach"`
	MaxVertical    *float64 `json:"maxVertical"`
	NoStepVertical *float64 `json:"noStepVertical"`
	Weight         *float64 `json:"weight"`
	BodyFat        *float64 `json:"bodyFat"`
	HandLength     *float64 `json:"handLength"`
	HandWidth      *float64 `json:"handWidth"`
	Agility        *float64 `json:"agility"`
	Sprint         *float64 `json:"sprint"`
	ShuttleLeft    *float64 `json:"shuttleLeft"`
	ShuttleRight   *float64 `json:"shuttleRight"`
	ShuttleBest    *float64 `json:"shuttleBest"`
}

func (r measurementRecord) toDomain() prospect.Measurement {
	return prospect.Measurement{
		PlayerID:       r.PlayerID,
		HeightNoShoes:  r.HeightNoShoes,
		HeightShoes:    r.HeightShoes,
		Wingspan:       r.Wingspan,
		Reach:          r.Reach,
		MaxVertical:    r.MaxVertical,
		NoStepVertical: r.NoStepVertical,
		Weight:         r.Weight,
		BodyFat:        r.BodyFat,
		HandLength:     r.HandLength,
		HandWidth:      r.HandWidth,
		Agility:        r.Agility,
		Sprint:         r.Sprint,
		ShuttleLeft:    r.ShuttleLeft,
		ShuttleRight:   r.ShuttleRight,
		ShuttleBest:    r.ShuttleBest,
	}
}

type gameLogRecord struct {
	PlayerID       int64    `json:"playerId" validate:"required,gt=0"`
	GameID         int64    `json:"gameId" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	Season         int      `json:"season" validate:"required,gt=0"`
	League         string   `json:"league"`
	Team           string   `json:"team"`
	TeamID         int64    `json:"teamId"`
	Opponent       string   `json:"opponent"`
	OpponentID     int64    `json:"opponentId"`
	IsHome         nullBool `json:"isHome"`
	HomeTeamPts    int      `json:"homeTeamPts"`
	VisitorTeamPts int      `json:"visitorTeamPts"`
	GP             int      `json:"gp"`
	GS             int      `json:"gs"`
	PTS            int      `json:"pts"`
	AST            int      `json:"ast"`
	REB            int      `json:"reb"`
	DREB           int      `json:"dreb"`
	OREB           int      `json:"oreb"`
	STL            int      `json:"stl"`
	BLK            int      `json:"blk"`
	PF             int      `json:"pf"`
	TOV            int      `json:"tov"`
	PlusMinus      int      `json:"plusMinus"`
	TimePlayed     string   `json:"timePlayed"`
	FGA            int      `json:"fga" validate:"gte=0"`
	FGM            int      `json:"fgm" validate:"gte=0,ltefield=FGA"`
	FGPct          *float64 `json:"fg%"`
	FTA            int      `json:"fta" validate:"gte=0"`
	FTM            int      `json:"ftm" validate:"gte=0,ltefield=FTA"`
	FTPct          *float64 `json:"ft%"`
	TPA            int      `json:"tpa" validate:"gte=0"`
	TPM            int      `json:"tpm" validate:"gte=0,ltefield=TPA"`
	TPPct          *float64 `json:"tp%"`
}

func (r gameLogRecord) toDomain() (stats.GameLog, bool) {
	date, ok := stats.ParseGameDate(r.Date)
	if !ok {
		return stats.GameLog{}, false
	}

	return stats.GameLog{
		PlayerID:       r.PlayerID,
		GameID:         r.GameID,
		Date:           date,
		Season:         r.Season,
		League:         r.League,
		Team:           r.Team,
		TeamID:         r.TeamID,
		Opponent:       r.Opponent,
		OpponentID:     r.OpponentID,
		IsHome:         r.IsHome.ptr(),
		HomeTeamPts:    r.HomeTeamPts,
		VisitorTeamPts: r.VisitorTeamPts,
		GP:             r.GP,
		GS:             r.GS,
		TimePlayed:     r.TimePlayed,
		PTS:            r.PTS,
		AST:            r.AST,
		REB:            r.REB,
		DREB:           r.DREB,
		OREB:           r.OREB,
		STL:            r.STL,
		BLK:            r.BLK,
		PF:             r.PF,
		TOV:            r.TOV,
		PlusMinus:      r.PlusMinus,
		FGM:            r.FGM,
		FGA:            r.FGA,
		FGPct:          r.FGPct,
		TPM:            r.TPM,
		TPA:            r.TPA,
		TPPct:          r.TPPct,
		FTM:            r.FTM,
		FTA:            r.FTA,
		FTPct:          r.FTPct,
	}, true
}

type seasonLogRecord struct {
	PlayerID int64    `json:"playerId" validate:"required,gt=0"`
	Season   int      `json:"Season" validate:"required,gt=0"`
	Team     string   `json:"Team"`
	League   string   `json:"League" validate:"required"`
	Age      flexText `json:"age"`
	GP       float64  `json:"GP" validate:"gte=0"`
	GS       float64  `json:"GS" validate:"gte=0"`
	Wins     float64  `json:"w"`
	Losses   float64  `json:"l"`
	MP       float64  `json:"MP"`
	PTS      float64  `json:"PTS"`
	AST      float64  `json:"AST"`
	STL      float64  `json:"STL"`
	BLK      float64  `json:"BLK"`
	TOV      float64  `json:"TOV"`
	PF       float64  `json:"PF"`
	ORB      float64  `json:"ORB"`
	DRB      float64  `json:"DRB"`
	TRB      float64  `json:"TRB"`
	FGM      float64  `json:"FGM"`
	FGA      float64  `json:"FGA"`
	FGPct    *float64 `json:"FG%"`
	FG2M     float64  `json:"FG2M"`
	FG2A     float64  `json:"FG2A"`
	FG2Pct   *float64 `json:"FG2%"`
	ThreePM  float64  `json:"3PM"`
	ThreePA  float64  `json:"3PA"`
	ThreePct *float64 `json:"3P%"`
	FTM      float64  `json:"FT"`
	FTA      float64  `json:"FTA"`
	FTPct    *float64 `json:"FTP"`
	EFGPct   *float64 `json:"eFG%"`
}

func (r seasonLogRecord) toDomain() stats.SeasonLog {
	return stats.SeasonLog{
		PlayerID: r.PlayerID,
		Season:   r.Season,
		Team:     r.Team,
		League:   r.League,
		Age:      string(r.Age),
		GP:       r.GP,
		GS:       r.GS,
		Wins:     r.Wins,
		Losses:   r.Losses,
		MP:       r.MP,
		PTS:      r.PTS,
		AST:      r.AST,
		STL:      r.STL,
		BLK:      r.BLK,
		TOV:      r.TOV,
		PF:       r.PF,
		ORB:      r.ORB,
		DRB:      r.DRB,
		TRB:      r.TRB,
		FGM:      r.FGM,
		FGA:      r.FGA,
		FG2M:     r.FG2M,
		FG2A:     r.FG2A,
		ThreePM:  r.ThreePM,
		ThreePA:  r.ThreePA,
		FTM:      r.FTM,
		FTA:      r.FTA,
		FGPct:    orNaN(r.FGPct),
		FG2Pct:   orNaN(r.FG2Pct),
		ThreePct: orNaN(r.ThreePct),
		FTPct:    orNaN(r.FTPct),
		EFGPct:   orNaN(r.EFGPct),
	}
}

type scoutRankingRecord struct {
	PlayerID     int64 `json:"playerId" validate:"required,gt=0"`
	ESPN         *int  `json:"ESPN Rank"`
	SamVecenie   *int  `json:"Sam Vecenie Rank"`
	KevinOConnor *int  `json:"Kevin O'Connor Rank"`
	KyleBoone    *int  `json:"Kyle Boone Rank"`
	GaryParrish  *int  `json:"Gary Parrish Rank"`
}

func (r scoutRankingRecord) toDomain() scouting.ScoutRanking {
	return scouting.ScoutRanking{
		PlayerID:     r.PlayerID,
		ESPN:         r.ESPN,
		SamVecenie:   r.SamVecenie,
		KevinOConnor: r.KevinOConnor,
		KyleBoone:    r.KyleBoone,
		GaryParrish:  r.GaryParrish,
	}
}

type scoutingReportRecord struct {
	ReportID string `json:"reportId" validate:"required"`
	PlayerID int64  `json:"playerId" validate:"required,gt=0"`
	Scout    string `json:"scout" validate:"required"`
	Report   string `json:"report"`
}

func (r scoutingReportRecord) toDomain() scouting.Report {
	return scouting.Report{
		ReportID: r.ReportID,
		PlayerID: r.PlayerID,
		Scout:    r.Scout,
		Body:     r.Report,
	}
}

type draftSlotRecord struct {
	Pick    int    `json:"pick" validate:"required,gt=0"`
	Team    string `json:"team" validate:"required"`
	GM      string `json:"gm"`
	Contact string `json:"contact" validate:"omitempty,url"`
}

func (r draftSlotRecord) toDomain() draft.Slot {
	return draft.Slot{Pick: r.Pick, Team: r.Team, GM: r.GM, Contact: r.Contact}
}

// nullBool accepts true, false, 1, 0 and null.
type nullBool struct {
	Valid bool
	Value bool
}

func (b *nullBool) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "null", "":
		*b = nullBool{}
		return nil
	case "true", "1":
		*b = nullBool{Valid: true, Value: true}
		return nil
	case "false", "0":
		*b = nullBool{Valid: true, Value: false}
		return nil
	}

	var v float64
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return err
	}
	*b = nullBool{Valid: true, Value: v != 0}
	return nil
}

func (b nullBool) ptr() *bool {
	if !b.Valid {
		return nil
	}
	v := b.Value
	return &v
}

// flexText accepts either a JSON string or a JSON number.
type flexText string

func (t *flexText) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		*t = ""
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := sonic.Unmarshal(raw, &s); err != nil {
			return err
		}
		*t = flexText(s)
		return nil
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return err
	}
	*t = flexText(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
