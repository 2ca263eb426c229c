package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/random"
)

func team(abbr string, w, l, ties, pf, pa, strength float64) models.NFLTeam {
	div, _ := models.DivisionFor(abbr)
	return models.NFLTeam{
		ID:            abbr,
		Abbreviation:  abbr,
		Division:      div,
		Record:        models.Record{Wins: w, Losses: l, Ties: ties},
		PointsFor:     pf,
		PointsAgainst: pa,
		Strength:      strength,
	}
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name string
		team models.NFLTeam
		want float64
	}{
		{"no games is neutral", team("KC", 0, 0, 0, 0, 0, 95), 50},
		{"default quality", team("KC", 2, 2, 0, 100, 60, 0), 25 + 25 + 10},
		{"supplied quality", team("KC", 2, 2, 0, 100, 60, 40), 25 + 25 + 40},
		{"differential clamped high", team("KC", 2, 0, 0, 200, 0, 10), 50 + 30 + 10},
		{"differential clamped low", team("KC", 0, 2, 0, 0, 200, 10), 0 + 0 + 10},
		{"tie counts half", team("KC", 1, 0, 1, 40, 40, 10), 37.5 + 15 + 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Strength(tt.team), 1e-9)
		})
	}
}

func TestPredictGame_NeutralTeams(t *testing.T) {
	pred := PredictGame(team("KC", 0, 0, 0, 0, 0, 0), team("BUF", 0, 0, 0, 0, 0, 0), 10)

	assert.Equal(t, 0.61, pred.Home)
	assert.Equal(t, 0.39, pred.Away)
	assert.Equal(t, 26, pred.PredictedHomeScore)
	assert.Equal(t, 25, pred.PredictedAwayScore)
}

func TestPredictGame_Invariants(t *testing.T) {
	teams := []models.NFLTeam{
		team("KC", 8, 1, 0, 268, 185, 95),
		team("LV", 2, 7, 0, 165, 248, 52),
		team("NYG", 0, 9, 0, 100, 300, 400),
		team("CAR", 9, 0, 0, 300, 100, 1),
		team("SF", 0, 0, 0, 0, 0, 0),
	}

	for _, home := range teams {
		for _, away := range teams {
			pred := PredictGame(home, away, 12)
			assert.InDelta(t, 1.0, pred.Home+pred.Away, 0.0101, "%s vs %s", home.Abbreviation, away.Abbreviation)
			assert.GreaterOrEqual(t, pred.PredictedHomeScore, 10)
			assert.GreaterOrEqual(t, pred.PredictedAwayScore, 10)
		}
	}
}

func TestPredictGame_StrongerHomeFavoured(t *testing.T) {
	pred := PredictGame(team("KC", 8, 1, 0, 268, 185, 95), team("LV", 2, 7, 0, 165, 248, 52), 10)

	assert.Greater(t, pred.Home, 0.9)
	assert.Greater(t, pred.PredictedHomeScore, pred.PredictedAwayScore)
}

func TestPredictRemainingSeason(t *testing.T) {
	teams := []models.NFLTeam{team("KC", 0, 0, 0, 0, 0, 0), team("BUF", 0, 0, 0, 0, 0, 0)}
	schedule := []models.Game{
		{ID: "past", Week: 9, HomeTeam: "KC", AwayTeam: "BUF"},
		{ID: "played", Week: 10, HomeTeam: "KC", AwayTeam: "BUF", Played: true},
		{ID: "next", Week: 10, HomeTeam: "KC", AwayTeam: "BUF"},
		{ID: "unknown", Week: 11, HomeTeam: "KC", AwayTeam: "XXX"},
	}

	games := PredictRemainingSeason(teams, schedule, 10)

	require.Len(t, games, 2)
	assert.Equal(t, "next", games[0].ID)
	require.NotNil(t, games[0].WinProbability)
	assert.Equal(t, 0.61, games[0].WinProbability.Home)
	require.NotNil(t, games[0].PredictedHomeScore)
	assert.Equal(t, 26, *games[0].PredictedHomeScore)

	assert.Equal(t, "unknown", games[1].ID)
	assert.Nil(t, games[1].WinProbability)
	assert.Nil(t, schedule[2].WinProbability)
}

func TestStrengthOfSchedule(t *testing.T) {
	assert.Equal(t, 0.5, StrengthOfSchedule(nil))

	opponents := []models.NFLTeam{team("KC", 0, 0, 0, 0, 0, 0), team("KC", 2, 2, 0, 100, 60, 0)}
	assert.InDelta(t, 0.55, StrengthOfSchedule(opponents), 1e-9)
}

func TestRemainingOpponents(t *testing.T) {
	teams := []models.NFLTeam{team("KC", 0, 0, 0, 0, 0, 0), team("BUF", 0, 0, 0, 0, 0, 0), team("DEN", 0, 0, 0, 0, 0, 0)}
	schedule := []models.Game{
		{HomeTeam: "KC", AwayTeam: "BUF"},
		{HomeTeam: "DEN", AwayTeam: "KC"},
		{HomeTeam: "KC", AwayTeam: "DEN", Played: true},
		{HomeTeam: "BUF", AwayTeam: "DEN"},
	}

	opps := RemainingOpponents("KC", teams, schedule)

	require.Len(t, opps, 2)
	assert.Equal(t, "BUF", opps[0].Abbreviation)
	assert.Equal(t, "DEN", opps[1].Abbreviation)
}

func predicted(id, home, away string, homeProb float64) models.Game {
	return models.Game{
		ID:             id,
		HomeTeam:       home,
		AwayTeam:       away,
		WinProbability: &models.WinProbability{Home: homeProb, Away: 1 - homeProb},
	}
}

func TestSimulateSeason_SingleTrial(t *testing.T) {
	teams := []models.NFLTeam{
		team("KC", 5, 2, 1, 0, 0, 0),
		team("BUF", 4, 4, 0, 0, 0, 0),
		team("DEN", 3, 5, 0, 0, 0, 0),
	}
	games := []models.Game{
		predicted("g1", "KC", "BUF", 0.6),
		{ID: "unpredicted", HomeTeam: "KC", AwayTeam: "DEN"},
		predicted("g2", "BUF", "XXX", 0.5),
		predicted("g3", "BUF", "DEN", 0.4),
	}

	sim := NewSimulator(random.NewSequence(0.5, 0.7))
	got := sim.SimulateSeason(teams, games, 1)

	assert.Equal(t, models.Record{Wins: 6, Losses: 2, Ties: 1}, got["KC"])
	assert.Equal(t, models.Record{Wins: 4, Losses: 6}, got["BUF"])
	assert.Equal(t, models.Record{Wins: 4, Losses: 5}, got["DEN"])
	assert.Equal(t, models.Record{Wins: 5, Losses: 2, Ties: 1}, teams[0].Record)
}

func TestSimulateSeason_RunningAverage(t *testing.T) {
	teams := []models.NFLTeam{team("KC", 1, 0, 0, 0, 0, 0), team("BUF", 0, 1, 0, 0, 0, 0)}
	games := []models.Game{predicted("g1", "KC", "BUF", 0.6)}

	sim := NewSimulator(random.NewSequence(0.5, 0.9, 0.1, 0.95))
	got := sim.SimulateSeason(teams, games, 4)

	assert.InDelta(t, 1.5, got["KC"].Wins, 1e-9)
	assert.InDelta(t, 0.5, got["KC"].Losses, 1e-9)
	assert.InDelta(t, 0.5, got["BUF"].Wins, 1e-9)
	assert.InDelta(t, 1.5, got["BUF"].Losses, 1e-9)
}

func TestSimulateSeason_SeededIsReproducible(t *testing.T) {
	teams := []models.NFLTeam{team("KC", 1, 0, 0, 0, 0, 0), team("BUF", 0, 1, 0, 0, 0, 0)}
	games := []models.Game{predicted("g1", "KC", "BUF", 0.6), predicted("g2", "BUF", "KC", 0.45)}

	a := NewSimulator(random.New(7)).SimulateSeason(teams, games, 50)
	b := NewSimulator(random.New(7)).SimulateSeason(teams, games, 50)

	assert.Equal(t, a, b)
	assert.InDelta(t, 3.0, a["KC"].Wins+a["KC"].Losses, 1e-9)
}

func TestSimulateSeason_NoTrialsKeepsActual(t *testing.T) {
	teams := []models.NFLTeam{team("KC", 1, 0, 0, 0, 0, 0)}

	got := NewSimulator(random.NewSequence()).SimulateSeason(teams, nil, 0)

	assert.Equal(t, models.Record{Wins: 1}, got["KC"])
}
