// Package prediction forecasts NFL games from team strength and simulates
// the rest of a season.
package prediction

import (
	"math"

	"github.com/omarshaarawi/gridiron/internal/models"
)

const (
	neutralStrength   = 50.0
	defaultQuality    = 10.0
	maxAvgPointDiff   = 15.0
	homeAdvantage     = 3.0
	logisticScale     = 15.0
	leagueAvgPoints   = 22.0
	minPredictedScore = 10
)

// Strength combines win percentage (0-50), average point differential (0-30)
// and the externally supplied quality rating. A team with no games played is
// neutral.
func Strength(team models.NFLTeam) float64 {
	games := team.Record.Games()
	if games == 0 {
		return neutralStrength
	}

	winComponent := team.Record.WinPct() * 50

	avgDiff := team.PointDiff() / games
	diffComponent := math.Max(-maxAvgPointDiff, math.Min(maxAvgPointDiff, avgDiff)) + maxAvgPointDiff

	quality := team.Strength
	if quality == 0 {
		quality = defaultQuality
	}

	return winComponent + diffComponent + quality
}

type Prediction struct {
	Home               float64 `json:"home"`
	Away               float64 `json:"away"`
	PredictedHomeScore int     `json:"predictedHomeScore"`
	PredictedAwayScore int     `json:"predictedAwayScore"`
}

// PredictGame returns win probabilities and a score line for a home team
// hosting an away team. The week is accepted for callers that key
// predictions by week; the model itself does not use it.
func PredictGame(home, away models.NFLTeam, _ int) Prediction {
	homeStrength := Strength(home)
	awayStrength := Strength(away)

	expectedDiff := (homeStrength - awayStrength) + homeAdvantage
	homeWinProb := 1 / (1 + math.Pow(10, -expectedDiff/logisticScale))
	awayWinProb := 1 - homeWinProb

	homeScore := int(math.Round(leagueAvgPoints + homeStrength/10 + homeAdvantage/2 - awayStrength/20))
	awayScore := int(math.Round(leagueAvgPoints + awayStrength/10 - homeStrength/20))

	return Prediction{
		Home:               math.Round(homeWinProb*100) / 100,
		Away:               math.Round(awayWinProb*100) / 100,
		PredictedHomeScore: max(minPredictedScore, homeScore),
		PredictedAwayScore: max(minPredictedScore, awayScore),
	}
}

// PredictRemainingSeason predicts every unplayed game from currentWeek on.
// Games that name a team missing from teams are returned unchanged.
func PredictRemainingSeason(teams []models.NFLTeam, schedule []models.Game, currentWeek int) []models.Game {
	byAbbr := indexTeams(teams)

	var games []models.Game
	for _, game := range schedule {
		if game.Week < currentWeek || game.Played {
			continue
		}

		home, okHome := byAbbr[game.HomeTeam]
		away, okAway := byAbbr[game.AwayTeam]
		if !okHome || !okAway {
			games = append(games, game)
			continue
		}

		pred := PredictGame(home, away, game.Week)
		homeScore, awayScore := pred.PredictedHomeScore, pred.PredictedAwayScore
		game.PredictedHomeScore = &homeScore
		game.PredictedAwayScore = &awayScore
		game.WinProbability = &models.WinProbability{Home: pred.Home, Away: pred.Away}
		games = append(games, game)
	}

	return games
}

// StrengthOfSchedule is the average opponent strength scaled to 0-1. With no
// opponents it is an even 0.5.
func StrengthOfSchedule(opponents []models.NFLTeam) float64 {
	if len(opponents) == 0 {
		return 0.5
	}

	var total float64
	for _, opp := range opponents {
		total += Strength(opp)
	}
	return total / float64(len(opponents)) / 100
}

// RemainingOpponents lists the known opponents of abbr in unplayed games.
func RemainingOpponents(abbr string, teams []models.NFLTeam, schedule []models.Game) []models.NFLTeam {
	byAbbr := indexTeams(teams)

	var opponents []models.NFLTeam
	for _, game := range schedule {
		if game.Played {
			continue
		}
		var opp string
		switch abbr {
		case game.HomeTeam:
			opp = game.AwayTeam
		case game.AwayTeam:
			opp = game.HomeTeam
		default:
			continue
		}
		if team, ok := byAbbr[opp]; ok {
			opponents = append(opponents, team)
		}
	}
	return opponents
}

func indexTeams(teams []models.NFLTeam) map[string]models.NFLTeam {
	byAbbr := make(map[string]models.NFLTeam, len(teams))
	for _, t := range teams {
		byAbbr[t.Abbreviation] = t
	}
	return byAbbr
}
