package httpapi

import (
	"math"
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
	"github.com/riskibarqy/nba-draft-hub/internal/usecase"
)

type prospectDTO struct {
	PlayerID        int64   `json:"player_id"`
	Name            string  `json:"name"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	BirthDate       string  `json:"birth_date,omitempty"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
	HighSchool      string  `json:"high_school,omitempty"`
	HighSchoolState string  `json:"high_school_state,omitempty"`
	HomeTown        string  `json:"home_town,omitempty"`
	HomeState       string  `json:"home_state,omitempty"`
	HomeCountry     string  `json:"home_country,omitempty"`
	Nationality     string  `json:"nationality,omitempty"`
	PhotoURL        string  `json:"photo_url,omitempty"`
	CurrentTeam     string  `json:"current_team"`
	League          string  `json:"league"`
	LeagueType      string  `json:"league_type,omitempty"`
}

func prospectToDTO(p prospect.Prospect) prospectDTO {
	return prospectDTO{
		PlayerID:        p.PlayerID,
		Name:            p.Name,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		BirthDate:       p.BirthDate,
		Height:          p.Height,
		Weight:          p.Weight,
		HighSchool:      p.HighSchool,
		HighSchoolState: p.HighSchoolState,
		HomeTown:        p.HomeTown,
		HomeState:       p.HomeState,
		HomeCountry:     p.HomeCountry,
		Nationality:     p.Nationality,
		PhotoURL:        p.PhotoURL,
		CurrentTeam:     p.CurrentTeam,
		League:          p.League,
		LeagueType:      p.LeagueType,
	}
}

type measurementDTO struct {
	PlayerID       int64    `json:"player_id"`
	HeightNoShoes  *float64 `json:"height_no_shoes"`
	HeightShoes    *float64 `json:"height_shoes"`
	Wingspan       *float64 `json:"wingspan"`
	Reach          *float64 `json:"reach"`
	MaxVertical    *float64 `json:"max_vertical"`
	NoStepVertical *float64 `json:"no_step_vertical"`
	Weight         *float64 `json:"weight"`
	BodyFat        *float64 `json:"body_fat"`
	HandLength     *float64 `json:"hand_length"`
	HandWidth      *float64 `json:"hand_width"`
	Agility        *float64 `json:"agility"`
	Sprint         *float64 `json:"sprint"`
	ShuttleLeft    *float64 `json:"shuttle_left"`
	ShuttleRight   *float64 `json:"shuttle_right"`
	ShuttleBest    *float64 `json:"shuttle_best"`
}

func measurementToDTO(m prospect.Measurement) measurementDTO {
	return measurementDTO{
		PlayerID:       m.PlayerID,
		HeightNoShoes:  m.HeightNoShoes,
		HeightShoes:    m.HeightShoes,
		Wingspan:       m.Wingspan,
		Reach:          m.Reach,
		MaxVertical:    m.MaxVertical,
		NoStepVertical: m.NoStepVertical,
		Weight:         m.Weight,
		BodyFat:        m.BodyFat,
		HandLength:     m.HandLength,
		HandWidth:      m.HandWidth,
		Agility:        m.Agility,
		Sprint:         m.Sprint,
		ShuttleLeft:    m.ShuttleLeft,
		ShuttleRight:   m.ShuttleRight,
		ShuttleBest:    m.ShuttleBest,
	}
}

// seasonLogDTO renders undefined shooting percentages as null.
type seasonLogDTO struct {
	PlayerID int64  `json:"player_id"`
	Season   int    `json:"season"`
	Team     string `json:"team"`
	League   string `json:"league"`
	Age      string `json:"age,omitempty"`

	GP     float64 `json:"gp"`
	GS     float64 `json:"gs"`
	Wins   float64 `json:"wins"`
	Losses float64 `json:"losses"`

	MP  float64 `json:"mp"`
	PTS float64 `json:"pts"`
	AST float64 `json:"ast"`
	STL float64 `json:"stl"`
	BLK float64 `json:"blk"`
	TOV float64 `json:"tov"`
	PF  float64 `json:"pf"`
	ORB float64 `json:"orb"`
	DRB float64 `json:"drb"`
	TRB float64 `json:"trb"`

	FGM     float64 `json:"fgm"`
	FGA     float64 `json:"fga"`
	FG2M    float64 `json:"fg2m"`
	FG2A    float64 `json:"fg2a"`
	ThreePM float64 `json:"three_pm"`
	ThreePA float64 `json:"three_pa"`
	FTM     float64 `json:"ftm"`
	FTA     float64 `json:"fta"`

	FGPct    *float64 `json:"fg_pct"`
	FG2Pct   *float64 `json:"fg2_pct"`
	ThreePct *float64 `json:"three_pct"`
	FTPct    *float64 `json:"ft_pct"`
	EFGPct   *float64 `json:"efg_pct"`
}

func seasonLogToDTO(l stats.SeasonLog) seasonLogDTO {
	return seasonLogDTO{
		PlayerID: l.PlayerID,
		Season:   l.Season,
		Team:     l.Team,
		League:   l.League,
		Age:      l.Age,
		GP:       l.GP,
		GS:       l.GS,
		Wins:     l.Wins,
		Losses:   l.Losses,
		MP:       finiteOrZero(l.MP),
		PTS:      finiteOrZero(l.PTS),
		AST:      finiteOrZero(l.AST),
		STL:      finiteOrZero(l.STL),
		BLK:      finiteOrZero(l.BLK),
		TOV:      finiteOrZero(l.TOV),
		PF:       finiteOrZero(l.PF),
		ORB:      finiteOrZero(l.ORB),
		DRB:      finiteOrZero(l.DRB),
		TRB:      finiteOrZero(l.TRB),
		FGM:      finiteOrZero(l.FGM),
		FGA:      finiteOrZero(l.FGA),
		FG2M:     finiteOrZero(l.FG2M),
		FG2A:     finiteOrZero(l.FG2A),
		ThreePM:  finiteOrZero(l.ThreePM),
		ThreePA:  finiteOrZero(l.ThreePA),
		FTM:      finiteOrZero(l.FTM),
		FTA:      finiteOrZero(l.FTA),
		FGPct:    finitePtr(l.FGPct),
		FG2Pct:   finitePtr(l.FG2Pct),
		ThreePct: finitePtr(l.ThreePct),
		FTPct:    finitePtr(l.FTPct),
		EFGPct:   finitePtr(l.EFGPct),
	}
}

func seasonLogsToDTO(rows []stats.SeasonLog) []seasonLogDTO {
	out := make([]seasonLogDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonLogToDTO(row))
	}
	return out
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

type gameLogDTO struct {
	GameID        int64    `json:"game_id"`
	Date          string   `json:"date"`
	Season        int      `json:"season"`
	League        string   `json:"league"`
	Team          string   `json:"team"`
	TeamID        int64    `json:"team_id"`
	Opponent      string   `json:"opponent"`
	OpponentID    int64    `json:"opponent_id"`
	IsHome        *bool    `json:"is_home"`
	TeamScore     int      `json:"team_score"`
	OpponentScore int      `json:"opponent_score"`
	GP            int      `json:"gp"`
	GS            int      `json:"gs"`
	TimePlayed    string   `json:"time_played"`
	PTS           int      `json:"pts"`
	AST           int      `json:"ast"`
	REB           int      `json:"reb"`
	DREB          int      `json:"dreb"`
	OREB          int      `json:"oreb"`
	STL           int      `json:"stl"`
	BLK           int      `json:"blk"`
	PF            int      `json:"pf"`
	TOV           int      `json:"tov"`
	PlusMinus     int      `json:"plus_minus"`
	FGM           int      `json:"fgm"`
	FGA           int      `json:"fga"`
	FGPct         *float64 `json:"fg_pct"`
	TPM           int      `json:"tpm"`
	TPA           int      `json:"tpa"`
	TPPct         *float64 `json:"tp_pct"`
	FTM           int      `json:"ftm"`
	FTA           int      `json:"fta"`
	FTPct         *float64 `json:"ft_pct"`
}

type gameLogPageDTO struct {
	PlayerID int64        `json:"player_id"`
	Season   int          `json:"season"`
	Seasons  []int        `json:"seasons"`
	Games    []gameLogDTO `json:"games"`
}

func gameLogPageToDTO(page usecase.GameLogPage) gameLogPageDTO {
	seasons := page.Seasons
	if seasons == nil {
		seasons = []int{}
	}
	games := make([]gameLogDTO, 0, len(page.Games))
	for _, g := range page.Games {
		teamScore, opponentScore := g.Score()
		date := ""
		if !g.Date.IsZero() {
			date = g.Date.Format(time.DateOnly)
		}
		games = append(games, gameLogDTO{
			GameID:        g.GameID,
			Date:          date,
			Season:        g.Season,
			League:        g.League,
			Team:          g.Team,
			TeamID:        g.TeamID,
			Opponent:      g.Opponent,
			OpponentID:    g.OpponentID,
			IsHome:        g.IsHome,
			TeamScore:     teamScore,
			OpponentScore: opponentScore,
			GP:            g.GP,
			GS:            g.GS,
			TimePlayed:    g.TimePlayed,
			PTS:           g.PTS,
			AST:           g.AST,
			REB:           g.REB,
			DREB:          g.DREB,
			OREB:          g.OREB,
			STL:           g.STL,
			BLK:           g.BLK,
			PF:            g.PF,
			TOV:           g.TOV,
			PlusMinus:     g.PlusMinus,
			FGM:           g.FGM,
			FGA:           g.FGA,
			FGPct:         g.FGPct,
			TPM:           g.TPM,
			TPA:           g.TPA,
			TPPct:         g.TPPct,
			FTM:           g.FTM,
			FTA:           g.FTA,
			FTPct:         g.FTPct,
		})
	}

	return gameLogPageDTO{
		PlayerID: page.PlayerID,
		Season:   page.Season,
		Seasons:  seasons,
		Games:    games,
	}
}

type draftClassComparisonDTO struct {
	PlayerID   int64          `json:"player_id"`
	Season     int            `json:"season"`
	Player     []seasonLogDTO `json:"player"`
	DraftClass seasonLogDTO   `json:"draft_class"`
}

type statRankDTO struct {
	Stat  string  `json:"stat"`
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
	Total int     `json:"total"`
}

type scoutOpinionDTO struct {
	Scout     string `json:"scout"`
	Rank      *int   `json:"rank"`
	Consensus string `json:"consensus"`
}

type reportDTO struct {
	ReportID string `json:"report_id"`
	Scout    string `json:"scout"`
	Body     string `json:"body"`
}

type scoutingSummaryDTO struct {
	PlayerID    int64             `json:"player_id"`
	AverageRank *float64          `json:"average_rank"`
	Opinions    []scoutOpinionDTO `json:"opinions"`
	Reports     []reportDTO       `json:"reports"`
}

func scoutingSummaryToDTO(s usecase.ScoutingSummary) scoutingSummaryDTO {
	out := scoutingSummaryDTO{
		PlayerID: s.PlayerID,
		Opinions: make([]scoutOpinionDTO, 0, len(s.Opinions)),
		Reports:  make([]reportDTO, 0, len(s.Reports)),
	}
	if s.HasAverage {
		avg := s.AverageRank
		out.AverageRank = &avg
	}
	for _, op := range s.Opinions {
		out.Opinions = append(out.Opinions, scoutOpinionDTO{
			Scout:     string(op.Scout),
			Rank:      op.Rank,
			Consensus: string(op.Consensus),
		})
	}
	for _, rep := range s.Reports {
		out.Reports = append(out.Reports, reportDTO{
			ReportID: rep.ReportID,
			Scout:    rep.Scout,
			Body:     rep.Body,
		})
	}
	return out
}

type noteDTO struct {
	ID        string    `json:"id"`
	PlayerID  int64     `json:"player_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func noteToDTO(n scouting.Note) noteDTO {
	return noteDTO{
		ID:        n.ID,
		PlayerID:  n.PlayerID,
		Author:    n.Author,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

type draftSlotDTO struct {
	Pick    int    `json:"pick"`
	Team    string `json:"team"`
	GM      string `json:"gm,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type bigBoardRowDTO struct {
	Rank        int         `json:"rank"`
	Prospect    prospectDTO `json:"prospect"`
	AverageRank *float64    `json:"average_rank"`
}

type selectionDTO struct {
	PickNumber int        `json:"pick_number"`
	Team       string     `json:"team"`
	PlayerID   *int64     `json:"player_id"`
	PickedAt   *time.Time `json:"picked_at,omitempty"`
}

func selectionToDTO(s draft.Selection) selectionDTO {
	out := selectionDTO{PickNumber: s.PickNumber, Team: s.Team}
	if s.Made() {
		playerID := s.PlayerID
		pickedAt := s.PickedAt
		out.PlayerID = &playerID
		out.PickedAt = &pickedAt
	}
	return out
}

type mockDraftDTO struct {
	ID                 string         `json:"id"`
	Picks              []selectionDTO `json:"picks"`
	AvailablePlayerIDs []int64        `json:"available_player_ids"`
	OnTheClock         *selectionDTO  `json:"on_the_clock"`
	Complete           bool           `json:"complete"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func mockDraftToDTO(d draft.MockDraft) mockDraftDTO {
	out := mockDraftDTO{
		ID:                 d.ID,
		Picks:              make([]selectionDTO, 0, len(d.Picks)),
		AvailablePlayerIDs: append([]int64{}, d.Available...),
		Complete:           d.IsComplete(),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	for _, pick := range d.Picks {
		out.Picks = append(out.Picks, selectionToDTO(pick))
	}
	if current, ok := d.OnTheClock(); ok {
		sel := selectionToDTO(current)
		out.OnTheClock = &sel
	}
	return out
}

type mockDraftPickDTO struct {
	Selection selectionDTO `json:"selection"`
	Draft     mockDraftDTO `json:"draft"`
}
