package fantasy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/sample"
)

type fakeSource struct {
	teams      []models.NFLTeam
	games      []models.Game
	week       int
	players    []models.Player
	standErr   error
	scoreErr   error
	playersErr error
}

func (f *fakeSource) GetStandings(context.Context) ([]models.NFLTeam, error) {
	return f.teams, f.standErr
}

func (f *fakeSource) GetScoreboard(context.Context) ([]models.Game, int, error) {
	return f.games, f.week, f.scoreErr
}

func (f *fakeSource) GetTopPlayers(context.Context) ([]models.Player, error) {
	return f.players, f.playersErr
}

func liveTeams() []models.NFLTeam {
	return []models.NFLTeam{{ID: "12", Abbreviation: "KC", Division: models.AFCWest}}
}

func TestLoadSnapshot_SampleWhenNotLive(t *testing.T) {
	api := NewAPI(&fakeSource{teams: liveTeams()}, false, 0)

	snap := api.LoadSnapshot(context.Background())

	assert.False(t, snap.Live)
	assert.Len(t, snap.Teams, 32)
	assert.Equal(t, sample.CurrentWeek, snap.CurrentWeek)
}

func TestLoadSnapshot_ConfiguredWeek(t *testing.T) {
	snap := NewAPI(nil, false, 11).LoadSnapshot(context.Background())

	assert.False(t, snap.Live)
	assert.Equal(t, 11, snap.CurrentWeek)
}

func TestLoadSnapshot_ScoreboardWithoutWeek(t *testing.T) {
	src := &fakeSource{
		teams: liveTeams(),
		games: []models.Game{{ID: "401", HomeTeam: "KC", AwayTeam: "LV"}},
	}

	snap := NewAPI(src, true, 13).LoadSnapshot(context.Background())

	require.True(t, snap.Live)
	assert.Equal(t, 13, snap.CurrentWeek)
	assert.Equal(t, 13, snap.Games[0].Week)

	src.games = []models.Game{{ID: "401", HomeTeam: "KC", AwayTeam: "LV"}}
	snap = NewAPI(src, true, 0).LoadSnapshot(context.Background())
	assert.Equal(t, sample.CurrentWeek, snap.CurrentWeek)
}

func TestLoadSnapshot_NilSource(t *testing.T) {
	snap := NewAPI(nil, true, 0).LoadSnapshot(context.Background())

	assert.False(t, snap.Live)
}

func TestLoadSnapshot_Live(t *testing.T) {
	src := &fakeSource{
		teams:   liveTeams(),
		games:   []models.Game{{ID: "401", Week: 12, HomeTeam: "KC", AwayTeam: "LV"}},
		week:    12,
		players: []models.Player{{ID: "1", Name: "Patrick Mahomes", Position: models.QB}},
	}

	snap := NewAPI(src, true, 0).LoadSnapshot(context.Background())

	require.True(t, snap.Live)
	assert.Equal(t, src.teams, snap.Teams)
	assert.Equal(t, src.games, snap.Games)
	assert.Equal(t, 12, snap.CurrentWeek)
	assert.Equal(t, src.players, snap.Players)
	assert.Len(t, snap.FantasyTeams, 2)
	assert.False(t, snap.LastUpdated.IsZero())
}

func TestLoadSnapshot_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
	}{
		{"standings error", &fakeSource{standErr: errors.New("boom"), week: 12}},
		{"scoreboard error", &fakeSource{teams: liveTeams(), scoreErr: errors.New("boom")}},
		{"empty standings", &fakeSource{week: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewAPI(tt.src, true, 0).LoadSnapshot(context.Background())

			assert.False(t, snap.Live)
			assert.Len(t, snap.Teams, 32)
		})
	}
}

func TestLoadSnapshot_PlayersErrorKeepsLiveTeams(t *testing.T) {
	src := &fakeSource{teams: liveTeams(), week: 12, playersErr: errors.New("forbidden")}

	snap := NewAPI(src, true, 0).LoadSnapshot(context.Background())

	assert.True(t, snap.Live)
	assert.Equal(t, sample.Players(), snap.Players)
}
