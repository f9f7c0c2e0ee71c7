package memory

import (
	"time"

	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

// Seed player ids. SeedPlayerTraore has no scout ranking and no NCAA season.
const (
	SeedPlayerFlagg  int64 = 101
	SeedPlayerHarper int64 = 102
	SeedPlayerBailey int64 = 103
	SeedPlayerTraore int64 = 104
)

func SeedProspects() []prospect.Prospect {
	return []prospect.Prospect{
		{
			PlayerID: SeedPlayerFlagg, Name: "Cooper Flagg", FirstName: "Cooper", LastName: "Flagg",
			BirthDate: "2006-12-21", Height: 81, Weight: 205,
			HomeTown: "Newport", HomeState: "ME", HomeCountry: "USA", Nationality: "USA",
			CurrentTeam: "Duke", League: "NCAA", LeagueType: "College",
		},
		{
			PlayerID: SeedPlayerHarper, Name: "Dylan Harper", FirstName: "Dylan", LastName: "Harper",
			BirthDate: "2006-03-02", Height: 78, Weight: 215,
			HomeTown: "Franklin Lakes", HomeState: "NJ", HomeCountry: "USA", Nationality: "USA",
			CurrentTeam: "Rutgers", League: "NCAA", LeagueType: "College",
		},
		{
			PlayerID: SeedPlayerBailey, Name: "Ace Bailey", FirstName: "Ace", LastName: "Bailey",
			BirthDate: "2006-08-13", Height: 80, Weight: 200,
			HomeTown: "Chattanooga", HomeState: "TN", HomeCountry: "USA", Nationality: "USA",
			CurrentTeam: "Rutgers", League: "NCAA", LeagueType: "College",
		},
		{
			PlayerID: SeedPlayerTraore, Name: "Nolan Traore", FirstName: "Nolan", LastName: "Traore",
			BirthDate: "2006-05-28", Height: 76, Weight: 185,
			HomeCountry: "France", Nationality: "France",
			CurrentTeam: "Saint-Quentin", League: "LNB", LeagueType: "International",
		},
	}
}

func SeedMeasurements() []prospect.Measurement {
	wingspan := 84.0
	heightNoShoes := 79.75
	return []prospect.Measurement{
		{PlayerID: SeedPlayerFlagg, Wingspan: &wingspan, HeightNoShoes: &heightNoShoes},
	}
}

func SeedSeasonLogs() []stats.SeasonLog {
	return []stats.SeasonLog{
		{
			PlayerID: SeedPlayerFlagg, Season: 2024, Team: "Maine United", League: "EYBL", Age: "17",
			GP: 12, PTS: 20.1, AST: 4.0, TRB: 8.9, BLK: 2.1, STL: 1.8,
			FGM: 7.0, FGA: 14.0, ThreePM: 1.5, ThreePA: 4.0, FTM: 4.0, FTA: 5.0,
		},
		{
			PlayerID: SeedPlayerFlagg, Season: 2025, Team: "Duke", League: "NCAA", Age: "18",
			GP: 35, GS: 35, Wins: 31, Losses: 4, MP: 30.7,
			PTS: 19.2, AST: 4.2, TRB: 7.5, BLK: 1.4, STL: 1.4, TOV: 2.1,
			FGM: 6.8, FGA: 14.1, ThreePM: 1.9, ThreePA: 5.4, FTM: 3.7, FTA: 4.6,
		},
		{
			PlayerID: SeedPlayerHarper, Season: 2025, Team: "Rutgers", League: "NCAA", Age: "19",
			GP: 29, GS: 29, Wins: 15, Losses: 14, MP: 32.9,
			PTS: 19.4, AST: 4.0, TRB: 4.6, BLK: 0.3, STL: 1.4, TOV: 2.8,
			FGM: 6.8, FGA: 13.8, ThreePM: 1.5, ThreePA: 4.5, FTM: 4.3, FTA: 5.8,
		},
		{
			PlayerID: SeedPlayerBailey, Season: 2025, Team: "Rutgers", League: "NCAA", Age: "18",
			GP: 30, GS: 30, Wins: 15, Losses: 15, MP: 31.0,
			PTS: 17.6, AST: 1.3, TRB: 7.2, BLK: 1.3, STL: 1.0, TOV: 1.6,
			FGM: 6.8, FGA: 14.7, ThreePM: 1.9, ThreePA: 5.4, FTM: 2.1, FTA: 3.0,
		},
		{
			PlayerID: SeedPlayerTraore, Season: 2025, Team: "Saint-Quentin", League: "LNB", Age: "18",
			GP: 20, PTS: 10.0, AST: 4.0, TRB: 2.0,
			FGM: 4.0, FGA: 10.0, ThreePM: 1.0, ThreePA: 4.0, FTM: 1.0, FTA: 2.0,
		},
		{
			PlayerID: SeedPlayerTraore, Season: 2025, Team: "Saint-Quentin", League: "BCL", Age: "18",
			GP: 10, PTS: 13.0, AST: 5.5, TRB: 3.0,
			FGM: 5.0, FGA: 11.0, ThreePM: 1.0, ThreePA: 2.0, FTM: 2.0, FTA: 2.0,
		},
	}
}

func SeedGameLogs() []stats.GameLog {
	home := true
	away := false
	date := func(raw string) time.Time {
		t, _ := time.Parse("2006-01-02", raw)
		return t
	}
	return []stats.GameLog{
		{
			PlayerID: SeedPlayerFlagg, GameID: 9001, Date: date("2024-07-20"), Season: 2024, League: "EYBL",
			Team: "Maine United", Opponent: "Team Takeover", IsHome: nil, HomeTeamPts: 70, VisitorTeamPts: 75,
			GP: 1, PTS: 22, REB: 9, AST: 3, FGM: 8, FGA: 15,
		},
		{
			PlayerID: SeedPlayerFlagg, GameID: 9002, Date: date("2024-11-04"), Season: 2025, League: "NCAA",
			Team: "Duke", Opponent: "Maine", IsHome: &home, HomeTeamPts: 96, VisitorTeamPts: 62,
			GP: 1, GS: 1, PTS: 18, REB: 8, AST: 6, FGM: 7, FGA: 13,
		},
		{
			PlayerID: SeedPlayerFlagg, GameID: 9003, Date: date("2024-11-12"), Season: 2025, League: "NCAA",
			Team: "Duke", Opponent: "Kentucky", IsHome: &away, HomeTeamPts: 77, VisitorTeamPts: 72,
			GP: 1, GS: 1, PTS: 26, REB: 7, AST: 4, FGM: 9, FGA: 17,
		},
		{
			PlayerID: SeedPlayerFlagg, GameID: 9004, Date: date("2024-11-08"), Season: 2025, League: "NCAA",
			Team: "Duke", Opponent: "Army", IsHome: &home, HomeTeamPts: 100, VisitorTeamPts: 58,
			GP: 1, GS: 1, PTS: 14, REB: 7, AST: 3, FGM: 5, FGA: 9,
		},
	}
}

func SeedRankings() []scouting.ScoutRanking {
	rank := func(v int) *int { return &v }
	return []scouting.ScoutRanking{
		{PlayerID: SeedPlayerFlagg, ESPN: rank(1), SamVecenie: rank(1), KevinOConnor: rank(1), KyleBoone: rank(1), GaryParrish: rank(1)},
		{PlayerID: SeedPlayerHarper, ESPN: rank(2), SamVecenie: rank(2), KevinOConnor: rank(2), KyleBoone: rank(3), GaryParrish: rank(2)},
		{PlayerID: SeedPlayerBailey, ESPN: rank(3), SamVecenie: rank(4), KevinOConnor: rank(5), GaryParrish: rank(4)},
	}
}

func SeedReports() []scouting.Report {
	return []scouting.Report{
		{ReportID: "rpt-101-1", PlayerID: SeedPlayerFlagg, Scout: "Sam Vecenie", Body: "Elite two-way wing with real creation upside."},
		{ReportID: "rpt-103-1", PlayerID: SeedPlayerBailey, Scout: "Kyle Boone", Body: "Tough shot maker, shot selection still developing."},
	}
}

func SeedDraftOrder() []draft.Slot {
	return []draft.Slot{
		{Pick: 2, Team: "San Antonio Spurs", GM: "Brian Wright", Contact: "https://www.nba.com/spurs"},
		{Pick: 1, Team: "Dallas Mavericks", GM: "Nico Harrison", Contact: "https://www.nba.com/mavericks"},
		{Pick: 3, Team: "Philadelphia 76ers", GM: "Daryl Morey", Contact: "https://www.nba.com/sixers"},
	}
}
