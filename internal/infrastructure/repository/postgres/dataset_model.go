package postgres

import (
	"database/sql"
	"math"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

type prospectTableModel struct {
	PlayerID        int64          `db:"player_id"`
	Name            string         `db:"name"`
	FirstName       string         `db:"first_name"`
	LastName        string         `db:"last_name"`
	BirthDate       string         `db:"birth_date"`
	Height          float64        `db:"height"`
	Weight          float64        `db:"weight"`
	HighSchool      sql.NullString `db:"high_school"`
	HighSchoolState sql.NullString `db:"high_school_state"`
	HomeTown        string         `db:"home_town"`
	HomeState       sql.NullString `db:"home_state"`
	HomeCountry     string         `db:"home_country"`
	Nationality     string         `db:"nationality"`
	PhotoURL        sql.NullString `db:"photo_url"`
	CurrentTeam     string         `db:"current_team"`
	League          string         `db:"league"`
	LeagueType      string         `db:"league_type"`
}

func (m prospectTableModel) toDomain() prospect.Prospect {
	return prospect.Prospect{
		PlayerID:        m.PlayerID,
		Name:            m.Name,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		BirthDate:       m.BirthDate,
		Height:          m.Height,
		Weight:          m.Weight,
		HighSchool:      m.HighSchool.String,
		HighSchoolState: m.HighSchoolState.String,
		HomeTown:        m.HomeTown,
		HomeState:       m.HomeState.String,
		HomeCountry:     m.HomeCountry,
		Nationality:     m.Nationality,
		PhotoURL:        m.PhotoURL.String,
		CurrentTeam:     m.CurrentTeam,
		League:          m.League,
		LeagueType:      m.LeagueType,
	}
}

func prospectRow(p prospect.Prospect) prospectTableModel {
	return prospectTableModel{
		PlayerID:        p.PlayerID,
		Name:            p.Name,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		BirthDate:       p.BirthDate,
		Height:          p.Height,
		Weight:          p.Weight,
		HighSchool:      nullString(p.HighSchool),
		HighSchoolState: nullString(p.HighSchoolState),
		HomeTown:        p.HomeTown,
		HomeState:       nullString(p.HomeState),
		HomeCountry:     p.HomeCountry,
		Nationality:     p.Nationality,
		PhotoURL:        nullString(p.PhotoURL),
		CurrentTeam:     p.CurrentTeam,
		League:          p.League,
		LeagueType:      p.LeagueType,
	}
}

type measurementTableModel struct {
	PlayerID       int64           `db:"player_id"`
	HeightNoShoes  sql.NullFloat64 `db:"height_no_shoes"`
	HeightShoes    sql.NullFloat64 `db:"height_shoes"`
	Wingspan       sql.NullFloat64 `db:"wingspan"`
	Reach          sql.NullFloat64 `db:"reach"`
	MaxVertical    sql.NullFloat64 `db:"max_vertical"`
	NoStepVertical sql.NullFloat64 `db:"no_step_vertical"`
	Weight         sql.NullFloat64 `db:"weight"`
	BodyFat        sql.NullFloat64 `db:"body_fat"`
	HandLength     sql.NullFloat64 `db:"hand_length"`
	HandWidth      sql.NullFloat64 `db:"hand_width"`
	Agility        sql.NullFloat64 `db:"agility"`
	Sprint         sql.NullFloat64 `db:"sprint"`
	ShuttleLeft    sql.NullFloat64 `db:"shuttle_left"`
	ShuttleRight   sql.NullFloat64 `db:"shuttle_right"`
	ShuttleBest    sql.NullFloat64 `db:"shuttle_best"`
}

func (m measurementTableModel) toDomain() prospect.Measurement {
	return prospect.Measurement{
		PlayerID:       m.PlayerID,
		HeightNoShoes:  floatPtr(m.HeightNoShoes),
		HeightShoes:    floatPtr(m.HeightShoes),
		Wingspan:       floatPtr(m.Wingspan),
		Reach:          floatPtr(m.Reach),
		MaxVertical:    floatPtr(m.MaxVertical),
		NoStepVertical: floatPtr(m.NoStepVertical),
		Weight:         floatPtr(m.Weight),
		BodyFat:        floatPtr(m.BodyFat),
		HandLength:     floatPtr(m.HandLength),
		HandWidth:      floatPtr(m.HandWidth),
		Agility:        floatPtr(m.Agility),
		Sprint:         floatPtr(m.Sprint),
		ShuttleLeft:    floatPtr(m.ShuttleLeft),
		ShuttleRight:   floatPtr(m.ShuttleRight),
		ShuttleBest:    floatPtr(m.ShuttleBest),
	}
}

func measurementRow(m prospect.Measurement) measurementTableModel {
	return measurementTableModel{
		PlayerID:       m.PlayerID,
		HeightNoShoes:  nullFloat(m.HeightNoShoes),
		HeightShoes:    nullFloat(m.HeightShoes),
		Wingspan:       nullFloat(m.Wingspan),
		Reach:          nullFloat(m.Reach),
		MaxVertical:    nullFloat(m.MaxVertical),
		NoStepVertical: nullFloat(m.NoStepVertical),
		Weight:         nullFloat(m.Weight),
		BodyFat:        nullFloat(m.BodyFat),
		HandLength:     nullFloat(m.HandLength),
		HandWidth:      nullFloat(m.HandWidth),
		Agility:        nullFloat(m.Agility),
		Sprint:         nullFloat(m.Sprint),
		ShuttleLeft:    nullFloat(m.ShuttleLeft),
		ShuttleRight:   nullFloat(m.ShuttleRight),
		ShuttleBest:    nullFloat(m.ShuttleBest),
	}
}

type gameLogTableModel struct {
	PlayerID       int64           `db:"player_id"`
	GameID         int64           `db:"game_id"`
	Date           time.Time       `db:"game_date"`
	Season         int             `db:"season"`
	League         string          `db:"league"`
	Team           string          `db:"team"`
	TeamID         int64           `db:"team_id"`
	Opponent       string          `db:"opponent"`
	OpponentID     int64           `db:"opponent_id"`
	IsHome         sql.NullBool    `db:"is_home"`
	HomeTeamPts    int             `db:"home_team_pts"`
	VisitorTeamPts int             `db:"visitor_team_pts"`
	GP             int             `db:"gp"`
	GS             int             `db:"gs"`
	TimePlayed     string          `db:"time_played"`
	PTS            int             `db:"pts"`
	AST            int             `db:"ast"`
	REB            int             `db:"reb"`
	DREB           int             `db:"dreb"`
	OREB           int             `db:"oreb"`
	STL            int             `db:"stl"`
	BLK            int             `db:"blk"`
	PF             int             `db:"pf"`
	TOV            int             `db:"tov"`
	PlusMinus      int             `db:"plus_minus"`
	FGM            int             `db:"fgm"`
	FGA            int             `db:"fga"`
	FGPct          sql.NullFloat64 `db:"fg_pct"`
	TPM            int             `db:"tpm"`
	TPA            int             `db:"tpa"`
	TPPct          sql.NullFloat64 `db:"tp_pct"`
	FTM            int             `db:"ftm"`
	FTA            int             `db:"fta"`
	FTPct          sql.NullFloat64 `db:"ft_pct"`
}

func (m gameLogTableModel) toDomain() stats.GameLog {
	var isHome *bool
	if m.IsHome.Valid {
		v := m.IsHome.Bool
		isHome = &v
	}

	return stats.GameLog{
		PlayerID:       m.PlayerID,
		GameID:         m.GameID,
		Date:           m.Date,
		Season:         m.Season,
		League:         m.League,
		Team:           m.Team,
		TeamID:         m.TeamID,
		Opponent:       m.Opponent,
		OpponentID:     m.OpponentID,
		IsHome:         isHome,
		HomeTeamPts:    m.HomeTeamPts,
		VisitorTeamPts: m.VisitorTeamPts,
		GP:             m.GP,
		GS:             m.GS,
		TimePlayed:     m.TimePlayed,
		PTS:            m.PTS,
		AST:            m.AST,
		REB:            m.REB,
		DREB:           m.DREB,
		OREB:           m.OREB,
		STL:            m.STL,
		BLK:            m.BLK,
		PF:             m.PF,
		TOV:            m.TOV,
		PlusMinus:      m.PlusMinus,
		FGM:            m.FGM,
		FGA:            m.FGA,
		FGPct:          floatPtr(m.FGPct),
		TPM:            m.TPM,
		TPA:            m.TPA,
		TPPct:          floatPtr(m.TPPct),
		FTM:            m.FTM,
		FTA:            m.FTA,
		FTPct:          floatPtr(m.FTPct),
	}
}

func gameLogRow(g stats.GameLog) gameLogTableModel {
	var isHome sql.NullBool
	if g.IsHome != nil {
		isHome = sql.NullBool{Bool: *g.IsHome, Valid: true}
	}

	return gameLogTableModel{
		PlayerID:       g.PlayerID,
		GameID:         g.GameID,
		Date:           g.Date,
		Season:         g.Season,
		League:         g.League,
		Team:           g.Team,
		TeamID:         g.TeamID,
		Opponent:       g.Opponent,
		OpponentID:     g.OpponentID,
		IsHome:         isHome,
		HomeTeamPts:    g.HomeTeamPts,
		VisitorTeamPts: g.VisitorTeamPts,
		GP:             g.GP,
		GS:             g.GS,
		TimePlayed:     g.TimePlayed,
		PTS:            g.PTS,
		AST:            g.AST,
		REB:            g.REB,
		DREB:           g.DREB,
		OREB:           g.OREB,
		STL:            g.STL,
		BLK:            g.BLK,
		PF:             g.PF,
		TOV:            g.TOV,
		PlusMinus:      g.PlusMinus,
		FGM:            g.FGM,
		FGA:            g.FGA,
		FGPct:          nullFloat(g.FGPct),
		TPM:            g.TPM,
		TPA:            g.TPA,
		TPPct:          nullFloat(g.TPPct),
		FTM:            g.FTM,
		FTA:            g.FTA,
		FTPct:          nullFloat(g.FTPct),
	}
}

type seasonLogTableModel struct {
	PlayerID int64           `db:"player_id"`
	Season   int             `db:"season"`
	Team     string          `db:"team"`
	League   string          `db:"league"`
	Age      string          `db:"age"`
	GP       float64         `db:"gp"`
	GS       float64         `db:"gs"`
	Wins     float64         `db:"wins"`
	Losses   float64         `db:"losses"`
	MP       float64         `db:"mp"`
	PTS      float64         `db:"pts"`
	AST      float64         `db:"ast"`
	STL      float64         `db:"stl"`
	BLK      float64         `db:"blk"`
	TOV      float64         `db:"tov"`
	PF       float64         `db:"pf"`
	ORB      float64         `db:"orb"`
	DRB      float64         `db:"drb"`
	TRB      float64         `db:"trb"`
	FGM      float64         `db:"fgm"`
	FGA      float64         `db:"fga"`
	FG2M     float64         `db:"fg2m"`
	FG2A     float64         `db:"fg2a"`
	ThreePM  float64         `db:"three_pm"`
	ThreePA  float64         `db:"three_pa"`
	FTM      float64         `db:"ftm"`
	FTA      float64         `db:"fta"`
	FGPct    sql.NullFloat64 `db:"fg_pct"`
	FG2Pct   sql.NullFloat64 `db:"fg2_pct"`
	ThreePct sql.NullFloat64 `db:"three_pct"`
	FTPct    sql.NullFloat64 `db:"ft_pct"`
	EFGPct   sql.NullFloat64 `db:"efg_pct"`
}

func (m seasonLogTableModel) toDomain() stats.SeasonLog {
	return stats.SeasonLog{
		PlayerID: m.PlayerID,
		Season:   m.Season,
		Team:     m.Team,
		League:   m.League,
		Age:      m.Age,
		GP:       m.GP,
		GS:       m.GS,
		Wins:     m.Wins,
		Losses:   m.Losses,
		MP:       m.MP,
		PTS:      m.PTS,
		AST:      m.AST,
		STL:      m.STL,
		BLK:      m.BLK,
		TOV:      m.TOV,
		PF:       m.PF,
		ORB:      m.ORB,
		DRB:      m.DRB,
		TRB:      m.TRB,
		FGM:      m.FGM,
		FGA:      m.FGA,
		FG2M:     m.FG2M,
		FG2A:     m.FG2A,
		ThreePM:  m.ThreePM,
		ThreePA:  m.ThreePA,
		FTM:      m.FTM,
		FTA:      m.FTA,
		FGPct:    floatOrNaN(m.FGPct),
		FG2Pct:   floatOrNaN(m.FG2Pct),
		ThreePct: floatOrNaN(m.ThreePct),
		FTPct:    floatOrNaN(m.FTPct),
		EFGPct:   floatOrNaN(m.EFGPct),
	}
}

func seasonLogRow(l stats.SeasonLog) seasonLogTableModel {
	return seasonLogTableModel{
		PlayerID: l.PlayerID,
		Season:   l.Season,
		Team:     l.Team,
		League:   l.League,
		Age:      l.Age,
		GP:       l.GP,
		GS:       l.GS,
		Wins:     l.Wins,
		Losses:   l.Losses,
		MP:       l.MP,
		PTS:      l.PTS,
		AST:      l.AST,
		STL:      l.STL,
		BLK:      l.BLK,
		TOV:      l.TOV,
		PF:       l.PF,
		ORB:      l.ORB,
		DRB:      l.DRB,
		TRB:      l.TRB,
		FGM:      l.FGM,
		FGA:      l.FGA,
		FG2M:     l.FG2M,
		FG2A:     l.FG2A,
		ThreePM:  l.ThreePM,
		ThreePA:  l.ThreePA,
		FTM:      l.FTM,
		FTA:      l.FTA,
		FGPct:    nullFloatNaN(l.FGPct),
		FG2Pct:   nullFloatNaN(l.FG2Pct),
		ThreePct: nullFloatNaN(l.ThreePct),
		FTPct:    nullFloatNaN(l.FTPct),
		EFGPct:   nullFloatNaN(l.EFGPct),
	}
}

type scoutRankingTableModel struct {
	PlayerID     int64         `db:"player_id"`
	ESPN         sql.NullInt64 `db:"espn_rank"`
	SamVecenie   sql.NullInt64 `db:"sam_vecenie_rank"`
	KevinOConnor sql.NullInt64 `db:"kevin_oconnor_rank"`
	KyleBoone    sql.NullInt64 `db:"kyle_boone_rank"`
	GaryParrish  sql.NullInt64 `db:"gary_parrish_rank"`
}

func (m scoutRankingTableModel) toDomain() scouting.ScoutRanking {
	return scouting.ScoutRanking{
		PlayerID:     m.PlayerID,
		ESPN:         intPtr(m.ESPN),
		SamVecenie:   intPtr(m.SamVecenie),
		KevinOConnor: intPtr(m.KevinOConnor),
		KyleBoone:    intPtr(m.KyleBoone),
		GaryParrish:  intPtr(m.GaryParrish),
	}
}

func scoutRankingRow(r scouting.ScoutRanking) scoutRankingTableModel {
	return scoutRankingTableModel{
		PlayerID:     r.PlayerID,
		ESPN:         nullInt(r.ESPN),
		SamVecenie:   nullInt(r.SamVecenie),
		KevinOConnor: nullInt(r.KevinOConnor),
		KyleBoone:    nullInt(r.KyleBoone),
		GaryParrish:  nullInt(r.GaryParrish),
	}
}

type scoutingReportTableModel struct {
	ReportID string `db:"report_id"`
	PlayerID int64  `db:"player_id"`
	Scout    string `db:"scout"`
	Report   string `db:"report"`
}

func (m scoutingReportTableModel) toDomain() scouting.Report {
	return scouting.Report{ReportID: m.ReportID, PlayerID: m.PlayerID, Scout: m.Scout, Body: m.Report}
}

func scoutingReportRow(r scouting.Report) scoutingReportTableModel {
	return scoutingReportTableModel{ReportID: r.ReportID, PlayerID: r.PlayerID, Scout: r.Scout, Report: r.Body}
}

type draftSlotTableModel struct {
	DraftYear int    `db:"draft_year"`
	Pick      int    `db:"pick"`
	Team      string `db:"team"`
	GM        string `db:"gm"`
	Contact   string `db:"contact"`
}

func (m draftSlotTableModel) toDomain() draft.Slot {
	return draft.Slot{Pick: m.Pick, Team: m.Team, GM: m.GM, Contact: m.Contact}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullFloatNaN(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
