package fantasy

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/sample"
)

// NFLSource is the live data provider, satisfied by *espn.API.
type NFLSource interface {
	GetStandings(ctx context.Context) ([]models.NFLTeam, error)
	GetScoreboard(ctx context.Context) ([]models.Game, int, error)
	GetTopPlayers(ctx context.Context) ([]models.Player, error)
}

type API struct {
	source      NFLSource
	live        bool
	currentWeek int
}

// NewAPI returns a facade over source. When live is false, or source is nil,
// every snapshot is the bundled sample dataset. currentWeek replaces the
// sample week and fills in for a scoreboard that reports none; zero keeps
// the sample week.
func NewAPI(source NFLSource, live bool, currentWeek int) *API {
	return &API{source: source, live: live && source != nil, currentWeek: currentWeek}
}

func (a *API) sampleSnapshot() *models.Snapshot {
	snap := sample.Snapshot()
	if a.currentWeek > 0 {
		snap.CurrentWeek = a.currentWeek
	}
	return snap
}

// LoadSnapshot fetches standings, the scoreboard and top players
// concurrently. Any failure or an empty standings payload falls back to the
// sample dataset. Fantasy rosters always come from the sample league.
func (a *API) LoadSnapshot(ctx context.Context) *models.Snapshot {
	if !a.live {
		return a.sampleSnapshot()
	}

	var (
		teams   []models.NFLTeam
		games   []models.Game
		week    int
		players []models.Player
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = a.source.GetStandings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		games, week, err = a.source.GetScoreboard(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = a.source.GetTopPlayers(gctx)
		if err != nil {
			slog.Warn("Error fetching top players, using sample players", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Error fetching live data, using sample data", "error", err)
		return a.sampleSnapshot()
	}
	if len(teams) == 0 {
		slog.Warn("Live standings were empty, using sample data")
		return a.sampleSnapshot()
	}
	if week == 0 {
		week = a.currentWeek
		if week <= 0 {
			week = sample.CurrentWeek
		}
		slog.Warn("Scoreboard has no week, using configured week", "week", week)
		for i := range games {
			if games[i].Week == 0 {
				games[i].Week = week
			}
		}
	}
	if len(players) == 0 {
		players = sample.Players()
	}

	return &models.Snapshot{
		Teams:        teams,
		Games:        games,
		CurrentWeek:  week,
		Players:      players,
		FantasyTeams: sample.FantasyTeams(),
		Live:         true,
		LastUpdated:  time.Now(),
	}
}
