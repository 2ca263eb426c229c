package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/gridiron/internal/models"
)

func TestBestMatch(t *testing.T) {
	names := []string{"Gridiron Legends", "Touchdown Titans"}

	tests := []struct {
		query string
		want  int
		found bool
	}{
		{"gridiron legends", 0, true},
		{"Gridiron Legend", 0, true},
		{"Touchdwn Titans", 1, true},
		{"titans", 1, true},
		{"qqq", -1, false},
		{"  ", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := bestMatch(tt.query, names, teamMatchThreshold)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTradeArgs(t *testing.T) {
	give, get, err := parseTradeArgs("Mahomes, Kelce FOR Josh Allen")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mahomes", "Kelce"}, give)
	assert.Equal(t, []string{"Josh Allen"}, get)

	_, _, err = parseTradeArgs("Mahomes")
	assert.ErrorIs(t, err, ErrInvalidPlayers)

	_, _, err = parseTradeArgs(" , for Josh Allen")
	assert.ErrorIs(t, err, ErrInvalidPlayers)
}

func TestFormatRecord(t *testing.T) {
	assert.Equal(t, "7-2", formatRecord(models.Record{Wins: 7, Losses: 2}))
	assert.Equal(t, "5-3-1", formatRecord(models.Record{Wins: 5, Losses: 3, Ties: 1}))
	assert.Equal(t, "11.3-5.7", formatRecord(models.Record{Wins: 11.34, Losses: 5.66}))
}

func TestGetTradeAnalysis(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.GetTradeAnalysis(context.Background(), "Mahomes for Josh Allen")
	require.NoError(t, err)

	assert.Contains(t, report, "*Gridiron Legends* gives: Patrick Mahomes")
	assert.Contains(t, report, "*Touchdown Titans* gives: Josh Allen")
	assert.Contains(t, report, "*Counter Offers:*")
}

func TestGetTeamComparison(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	report, err := svc.GetTeamComparison(ctx, "Legends VS titans")
	require.NoError(t, err)
	assert.Contains(t, report, "1: *Gridiron Legends*")
	assert.Contains(t, report, "2: *Touchdown Titans*")
	assert.Contains(t, report, "Edge: *")

	_, err = svc.GetTeamComparison(ctx, "legends")
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.GetTeamComparison(ctx, "titans vs touchdown titans")
	assert.ErrorIs(t, err, ErrSameTeam)
}

func TestGetPredictions_ScheduleStrength(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.GetPredictions(context.Background(), 10)
	require.NoError(t, err)
	assert.Contains(t, report, "Remaining SoS: BUF ")
	assert.Contains(t, report, ", KC ")
}

func TestGetTradeAnalysis_RepeatedPlayer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	single, err := svc.GetTradeAnalysis(ctx, "Patrick Mahomes for Josh Allen")
	require.NoError(t, err)

	repeated, err := svc.GetTradeAnalysis(ctx, "Patrick Mahomes, Mahomes for Josh Allen")
	require.NoError(t, err)

	assert.Equal(t, single, repeated)
	assert.Contains(t, repeated, "*Gridiron Legends* gives: Patrick Mahomes (")
	assert.NotContains(t, repeated, "Patrick Mahomes, Patrick Mahomes")
}

func TestGetTradeAnalysis_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetTradeAnalysis(ctx, "Mahomes for Kelce")
	assert.ErrorIs(t, err, ErrInvalidPlayers)

	_, err = svc.GetTradeAnalysis(ctx, "Mahomes, Josh Allen for Breece Hall")
	assert.ErrorIs(t, err, ErrInvalidPlayers)

	_, err = svc.GetTradeAnalysis(ctx, "Qqq Zzz for Josh Allen")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestGetTeamRating(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.GetTeamRating(context.Background(), "titans")
	require.NoError(t, err)
	assert.Contains(t, report, "*Touchdown Titans*")
	assert.Contains(t, report, "Record: 5-4")

	_, err = svc.GetTeamRating(context.Background(), "qqq")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestReports(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rankings, err := svc.GetPowerRankings(ctx)
	require.NoError(t, err)
	assert.Contains(t, rankings, "1. *")

	standings, err := svc.GetStandings(ctx)
	require.NoError(t, err)
	assert.Contains(t, standings, "*AFC East*\n1. BUF 7-2 (+47)")

	predictions, err := svc.GetPredictions(ctx, 11)
	require.NoError(t, err)
	assert.Contains(t, predictions, "*Week 11 Predictions*")
	assert.Contains(t, predictions, "*GB* @ *DET*")
	assert.NotContains(t, predictions, "*BUF* @ *KC*")

	empty, err := svc.GetPredictions(ctx, 15)
	require.NoError(t, err)
	assert.Contains(t, empty, "No upcoming games")

	picture, err := svc.GetPlayoffPicture(ctx)
	require.NoError(t, err)
	assert.Contains(t, picture, "*Super Bowl*")
	assert.Contains(t, picture, "Projected Champion")

	odds, err := svc.GetSuperBowlOdds(ctx)
	require.NoError(t, err)
	assert.Contains(t, odds, "1. KC")
	assert.NotContains(t, odds, "11. ")

	players, err := svc.GetTopPlayers(ctx, 5)
	require.NoError(t, err)
	assert.Contains(t, players, "1. *Christian McCaffrey* (RB - SF)")
}
