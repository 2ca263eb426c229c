// Package sample holds the built-in league data used when live data is
// disabled or unavailable. Every accessor returns a fresh copy.
package sample

import (
	"time"

	"github.com/omarshaarawi/gridiron/internal/models"
)

// CurrentWeek is the week the sample schedule starts from.
const CurrentWeek = 10

var nflTeams = []models.NFLTeam{
	{ID: "1", Name: "Buffalo Bills", Abbreviation: "BUF", Division: models.AFCEast, Record: models.Record{Wins: 7, Losses: 2}, PointsFor: 245, PointsAgainst: 198, Strength: 88},
	{ID: "2", Name: "Miami Dolphins", Abbreviation: "MIA", Division: models.AFCEast, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 232, PointsAgainst: 210, Strength: 82},
	{ID: "3", Name: "New York Jets", Abbreviation: "NYJ", Division: models.AFCEast, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 198, PointsAgainst: 215, Strength: 68},
	{ID: "4", Name: "New England Patriots", Abbreviation: "NE", Division: models.AFCEast, Record: models.Record{Wins: 3, Losses: 6}, PointsFor: 176, PointsAgainst: 228, Strength: 58},
	{ID: "5", Name: "Baltimore Ravens", Abbreviation: "BAL", Division: models.AFCNorth, Record: models.Record{Wins: 7, Losses: 2}, PointsFor: 258, PointsAgainst: 205, Strength: 90},
	{ID: "6", Name: "Pittsburgh Steelers", Abbreviation: "PIT", Division: models.AFCNorth, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 221, PointsAgainst: 198, Strength: 81},
	{ID: "7", Name: "Cleveland Browns", Abbreviation: "CLE", Division: models.AFCNorth, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 203, PointsAgainst: 219, Strength: 70},
	{ID: "8", Name: "Cincinnati Bengals", Abbreviation: "CIN", Division: models.AFCNorth, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 235, PointsAgainst: 222, Strength: 78},
	{ID: "9", Name: "Houston Texans", Abbreviation: "HOU", Division: models.AFCSouth, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 228, PointsAgainst: 203, Strength: 83},
	{ID: "10", Name: "Jacksonville Jaguars", Abbreviation: "JAX", Division: models.AFCSouth, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 212, PointsAgainst: 215, Strength: 75},
	{ID: "11", Name: "Indianapolis Colts", Abbreviation: "IND", Division: models.AFCSouth, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 195, PointsAgainst: 208, Strength: 69},
	{ID: "12", Name: "Tennessee Titans", Abbreviation: "TEN", Division: models.AFCSouth, Record: models.Record{Wins: 3, Losses: 6}, PointsFor: 180, PointsAgainst: 235, Strength: 60},
	{ID: "13", Name: "Kansas City Chiefs", Abbreviation: "KC", Division: models.AFCWest, Record: models.Record{Wins: 8, Losses: 1}, PointsFor: 268, PointsAgainst: 185, Strength: 95},
	{ID: "14", Name: "Los Angeles Chargers", Abbreviation: "LAC", Division: models.AFCWest, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 218, PointsAgainst: 208, Strength: 76},
	{ID: "15", Name: "Denver Broncos", Abbreviation: "DEN", Division: models.AFCWest, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 201, PointsAgainst: 221, Strength: 67},
	{ID: "16", Name: "Las Vegas Raiders", Abbreviation: "LV", Division: models.AFCWest, Record: models.Record{Wins: 2, Losses: 7}, PointsFor: 165, PointsAgainst: 248, Strength: 52},
	{ID: "17", Name: "Philadelphia Eagles", Abbreviation: "PHI", Division: models.NFCEast, Record: models.Record{Wins: 7, Losses: 2}, PointsFor: 251, PointsAgainst: 195, Strength: 89},
	{ID: "18", Name: "Dallas Cowboys", Abbreviation: "DAL", Division: models.NFCEast, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 225, PointsAgainst: 218, Strength: 77},
	{ID: "19", Name: "Washington Commanders", Abbreviation: "WAS", Division: models.NFCEast, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 215, PointsAgainst: 212, Strength: 74},
	{ID: "20", Name: "New York Giants", Abbreviation: "NYG", Division: models.NFCEast, Record: models.Record{Wins: 2, Losses: 7}, PointsFor: 172, PointsAgainst: 242, Strength: 55},
	{ID: "21", Name: "Detroit Lions", Abbreviation: "DET", Division: models.NFCNorth, Record: models.Record{Wins: 7, Losses: 2}, PointsFor: 262, PointsAgainst: 201, Strength: 91},
	{ID: "22", Name: "Minnesota Vikings", Abbreviation: "MIN", Division: models.NFCNorth, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 238, PointsAgainst: 210, Strength: 84},
	{ID: "23", Name: "Green Bay Packers", Abbreviation: "GB", Division: models.NFCNorth, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 222, PointsAgainst: 215, Strength: 79},
	{ID: "24", Name: "Chicago Bears", Abbreviation: "CHI", Division: models.NFCNorth, Record: models.Record{Wins: 3, Losses: 6}, PointsFor: 188, PointsAgainst: 225, Strength: 62},
	{ID: "25", Name: "Tampa Bay Buccaneers", Abbreviation: "TB", Division: models.NFCSouth, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 235, PointsAgainst: 208, Strength: 80},
	{ID: "26", Name: "Atlanta Falcons", Abbreviation: "ATL", Division: models.NFCSouth, Record: models.Record{Wins: 5, Losses: 4}, PointsFor: 218, PointsAgainst: 215, Strength: 73},
	{ID: "27", Name: "New Orleans Saints", Abbreviation: "NO", Division: models.NFCSouth, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 205, PointsAgainst: 222, Strength: 68},
	{ID: "28", Name: "Carolina Panthers", Abbreviation: "CAR", Division: models.NFCSouth, Record: models.Record{Wins: 2, Losses: 7}, PointsFor: 168, PointsAgainst: 251, Strength: 50},
	{ID: "29", Name: "San Francisco 49ers", Abbreviation: "SF", Division: models.NFCWest, Record: models.Record{Wins: 7, Losses: 2}, PointsFor: 255, PointsAgainst: 198, Strength: 92},
	{ID: "30", Name: "Seattle Seahawks", Abbreviation: "SEA", Division: models.NFCWest, Record: models.Record{Wins: 6, Losses: 3}, PointsFor: 228, PointsAgainst: 208, Strength: 81},
	{ID: "31", Name: "Los Angeles Rams", Abbreviation: "LAR", Division: models.NFCWest, Record: models.Record{Wins: 4, Losses: 5}, PointsFor: 212, PointsAgainst: 225, Strength: 71},
	{ID: "32", Name: "Arizona Cardinals", Abbreviation: "ARI", Division: models.NFCWest, Record: models.Record{Wins: 3, Losses: 6}, PointsFor: 191, PointsAgainst: 238, Strength: 61},
}

var players = []models.Player{
	{ID: "p1", Name: "Patrick Mahomes", Position: models.QB, Team: "KC", FantasyPoints: 185, ProjectedPoints: 24.5, Stats: models.PlayerStats{PassingYards: 2850, PassingTDs: 23, Interceptions: 5}},
	{ID: "p2", Name: "Josh Allen", Position: models.QB, Team: "BUF", FantasyPoints: 178, ProjectedPoints: 23.8, Stats: models.PlayerStats{PassingYards: 2720, PassingTDs: 21, RushingYards: 285, RushingTDs: 4}},
	{ID: "p3", Name: "Lamar Jackson", Position: models.QB, Team: "BAL", FantasyPoints: 182, ProjectedPoints: 24.2, Stats: models.PlayerStats{PassingYards: 2680, PassingTDs: 20, RushingYards: 512, RushingTDs: 6}},
	{ID: "p4", Name: "Jalen Hurts", Position: models.QB, Team: "PHI", FantasyPoints: 175, ProjectedPoints: 23.5, Stats: models.PlayerStats{PassingYards: 2550, PassingTDs: 19, RushingYards: 398, RushingTDs: 8}},
	{ID: "p5", Name: "Christian McCaffrey", Position: models.RB, Team: "SF", FantasyPoints: 165, ProjectedPoints: 21.8, Stats: models.PlayerStats{RushingYards: 985, RushingTDs: 11, Receptions: 58, ReceivingYards: 512}},
	{ID: "p6", Name: "Derrick Henry", Position: models.RB, Team: "BAL", FantasyPoints: 152, ProjectedPoints: 20.2, Stats: models.PlayerStats{RushingYards: 1125, RushingTDs: 10, Receptions: 18, ReceivingYards: 145}},
	{ID: "p7", Name: "Breece Hall", Position: models.RB, Team: "NYJ", FantasyPoints: 148, ProjectedPoints: 19.5, Stats: models.PlayerStats{RushingYards: 892, RushingTDs: 8, Receptions: 45, ReceivingYards: 398}},
	{ID: "p8", Name: "Bijan Robinson", Position: models.RB, Team: "ATL", FantasyPoints: 145, ProjectedPoints: 19.2, Stats: models.PlayerStats{RushingYards: 925, RushingTDs: 7, Receptions: 42, ReceivingYards: 368}},
	{ID: "p9", Name: "Jonathan Taylor", Position: models.RB, Team: "IND", FantasyPoints: 138, ProjectedPoints: 18.5, Stats: models.PlayerStats{RushingYards: 982, RushingTDs: 8, Receptions: 28, ReceivingYards: 215}},
	{ID: "p10", Name: "Tyreek Hill", Position: models.WR, Team: "MIA", FantasyPoints: 158, ProjectedPoints: 20.8, Stats: models.PlayerStats{Receptions: 72, ReceivingYards: 1125, ReceivingTDs: 9, Targets: 105}},
	{ID: "p11", Name: "CeeDee Lamb", Position: models.WR, Team: "DAL", FantasyPoints: 155, ProjectedPoints: 20.5, Stats: models.PlayerStats{Receptions: 78, ReceivingYards: 1085, ReceivingTDs: 8, Targets: 115}},
	{ID: "p12", Name: "Justin Jefferson", Position: models.WR, Team: "MIN", FantasyPoints: 151, ProjectedPoints: 20.2, Stats: models.PlayerStats{Receptions: 68, ReceivingYards: 1098, ReceivingTDs: 7, Targets: 98}},
	{ID: "p13", Name: "Amon-Ra St. Brown", Position: models.WR, Team: "DET", FantasyPoints: 147, ProjectedPoints: 19.8, Stats: models.PlayerStats{Receptions: 82, ReceivingYards: 985, ReceivingTDs: 9, Targets: 112}},
	{ID: "p14", Name: "AJ Brown", Position: models.WR, Team: "PHI", FantasyPoints: 149, ProjectedPoints: 19.9, Stats: models.PlayerStats{Receptions: 65, ReceivingYards: 1065, ReceivingTDs: 8, Targets: 95}},
	{ID: "p15", Name: "Travis Kelce", Position: models.TE, Team: "KC", FantasyPoints: 125, ProjectedPoints: 16.5, Stats: models.PlayerStats{Receptions: 68, ReceivingYards: 825, ReceivingTDs: 7, Targets: 95}},
	{ID: "p16", Name: "Sam LaPorta", Position: models.TE, Team: "DET", FantasyPoints: 118, ProjectedPoints: 15.8, Stats: models.PlayerStats{Receptions: 62, ReceivingYards: 745, ReceivingTDs: 8, Targets: 88}},
	{ID: "p17", Name: "TJ Hockenson", Position: models.TE, Team: "MIN", FantasyPoints: 112, ProjectedPoints: 15.2, Stats: models.PlayerStats{Receptions: 58, ReceivingYards: 685, ReceivingTDs: 6, Targets: 82}},
}

var schedule = []models.Game{
	{ID: "g1", Week: 10, HomeTeam: "KC", AwayTeam: "BUF"},
	{ID: "g2", Week: 10, HomeTeam: "SF", AwayTeam: "DET"},
	{ID: "g3", Week: 10, HomeTeam: "BAL", AwayTeam: "CIN"},
	{ID: "g4", Week: 10, HomeTeam: "PHI", AwayTeam: "DAL"},
	{ID: "g5", Week: 11, HomeTeam: "DET", AwayTeam: "GB"},
	{ID: "g6", Week: 11, HomeTeam: "BUF", AwayTeam: "MIA"},
	{ID: "g7", Week: 11, HomeTeam: "HOU", AwayTeam: "JAX"},
	{ID: "g8", Week: 11, HomeTeam: "SEA", AwayTeam: "LAR"},
}

func NFLTeams() []models.NFLTeam {
	return append([]models.NFLTeam(nil), nflTeams...)
}

func Players() []models.Player {
	return append([]models.Player(nil), players...)
}

func Schedule() []models.Game {
	return append([]models.Game(nil), schedule...)
}

func FantasyTeams() []models.FantasyTeam {
	return []models.FantasyTeam{
		{
			ID:          "t1",
			Name:        "Gridiron Legends",
			Owner:       "User1",
			Roster:      pick(0, 4, 5, 9, 10, 14),
			Record:      models.Record{Wins: 6, Losses: 3},
			TotalPoints: 1085.5,
		},
		{
			ID:          "t2",
			Name:        "Touchdown Titans",
			Owner:       "User2",
			Roster:      pick(1, 6, 7, 11, 12, 15),
			Record:      models.Record{Wins: 5, Losses: 4},
			TotalPoints: 995.2,
		},
	}
}

func pick(indexes ...int) []models.Player {
	roster := make([]models.Player, 0, len(indexes))
	for _, i := range indexes {
		roster = append(roster, players[i])
	}
	return roster
}

func Snapshot() *models.Snapshot {
	return &models.Snapshot{
		Teams:        NFLTeams(),
		Games:        Schedule(),
		CurrentWeek:  CurrentWeek,
		Players:      Players(),
		FantasyTeams: FantasyTeams(),
		LastUpdated:  time.Now(),
	}
}
