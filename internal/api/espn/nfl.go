package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/omarshaarawi/gridiron/internal/models"
)

const (
	standingsEndpoint  = "/v2/sports/football/nfl/standings"
	scoreboardEndpoint = "/site/v2/sports/football/nfl/scoreboard"

	topPlayers = 50
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetStandings returns every team in the league standings. Teams whose
// abbreviation has no known division are skipped.
func (a *API) GetStandings(ctx context.Context) ([]models.NFLTeam, error) {
	var standingsResponse models.StandingsResponse
	if err := a.client.Get(ctx, a.client.Config.SiteURL, standingsEndpoint, nil, nil, &standingsResponse); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	return parseStandings(standingsResponse), nil
}

func parseStandings(resp models.StandingsResponse) []models.NFLTeam {
	var teams []models.NFLTeam

	for _, conference := range resp.Children {
		for _, entry := range conference.Standings.Entries {
			division, ok := models.DivisionFor(entry.Team.Abbreviation)
			if !ok {
				slog.Warn("Skipping team with unknown division", "abbreviation", entry.Team.Abbreviation)
				continue
			}

			record := models.Record{
				Wins:   entry.Stat("wins"),
				Losses: entry.Stat("losses"),
				Ties:   entry.Stat("ties"),
			}
			pointsFor := entry.Stat("pointsFor")
			pointsAgainst := entry.Stat("pointsAgainst")

			name := entry.Team.DisplayName
			if name == "" {
				name = entry.Team.Name
			}

			teams = append(teams, models.NFLTeam{
				ID:            entry.Team.ID,
				Name:          name,
				Abbreviation:  entry.Team.Abbreviation,
				Division:      division,
				Record:        record,
				PointsFor:     pointsFor,
				PointsAgainst: pointsAgainst,
				Strength:      teamStrength(record, pointsFor-pointsAgainst),
			})
		}
	}

	return teams
}

// teamStrength blends win percentage and point differential into [50, 100].
func teamStrength(record models.Record, pointDiff float64) float64 {
	strength := math.Round(record.WinPct()*50 + pointDiff/100*50)
	return math.Max(50, math.Min(100, strength))
}

// GetScoreboard returns the current week's games and the week number. The
// week is zero when the payload does not carry one.
func (a *API) GetScoreboard(ctx context.Context) ([]models.Game, int, error) {
	var scoreboardResponse models.ScoreboardResponse
	if err := a.client.Get(ctx, a.client.Config.SiteURL, scoreboardEndpoint, nil, nil, &scoreboardResponse); err != nil {
		return nil, 0, fmt.Errorf("fetching scoreboard: %w", err)
	}

	var week int
	if scoreboardResponse.Week != nil && scoreboardResponse.Week.Number > 0 {
		week = scoreboardResponse.Week.Number
	}

	games := make([]models.Game, 0, len(scoreboardResponse.Events))
	for _, event := range scoreboardResponse.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		competition := event.Competitions[0]

		game := models.Game{
			ID:     event.ID,
			Week:   week,
			Played: competition.Status.Type.Completed,
		}
		for _, c := range competition.Competitors {
			switch c.HomeAway {
			case "home":
				game.HomeTeam = c.Team.Abbreviation
				game.HomeScore = parseScore(c.Score, game.Played)
			case "away":
				game.AwayTeam = c.Team.Abbreviation
				game.AwayScore = parseScore(c.Score, game.Played)
			}
		}

		games = append(games, game)
	}

	return games, week, nil
}

// parseScore treats a zero score as unknown until the game is completed.
func parseScore(raw string, played bool) *int {
	score, err := strconv.Atoi(raw)
	if err != nil || (score == 0 && !played) {
		return nil
	}
	return &score
}

// GetTopPlayers returns the league's highest scoring players.
func (a *API) GetTopPlayers(ctx context.Context) ([]models.Player, error) {
	var playerResponse models.PlayerCardResponse
	endpoint := fmt.Sprintf("/seasons/%d/segments/0/leaguedefaults/1", a.client.Config.Season)
	params := map[string]string{
		"view": "kona_player_info",
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"limit": topPlayers,
			"sortAppliedStatTotal": map[string]interface{}{
				"sortAsc":      false,
				"sortPriority": 1,
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, a.client.Config.FantasyURL, endpoint, params, headers, &playerResponse); err != nil {
		return nil, fmt.Errorf("fetching top players: %w", err)
	}

	return parsePlayers(playerResponse), nil
}

func parsePlayers(resp models.PlayerCardResponse) []models.Player {
	entries := resp.Players
	if len(entries) > topPlayers {
		entries = entries[:topPlayers]
	}

	players := make([]models.Player, 0, len(entries))
	for _, entry := range entries {
		p := entry.Player

		var points, projected float64
		if len(p.Stats) > 0 {
			points = p.Stats[0].AppliedTotal
		}
		if len(p.Stats) > 1 {
			projected = p.Stats[1].AppliedTotal
		}

		team := p.ProTeamAbbreviation
		if team == "" {
			team = getProTeamString(p.ProTeamID)
		}

		players = append(players, models.Player{
			ID:              strconv.Itoa(p.ID),
			Name:            p.FullName,
			Position:        getPosition(p.DefaultPositionID),
			Team:            team,
			FantasyPoints:   points,
			ProjectedPoints: projected,
		})
	}

	return players
}

// getPosition maps ESPN default position ids. Unknown ids fall back to RB.
func getPosition(positionID int) models.Position {
	positions := map[int]models.Position{
		1: models.QB, 2: models.RB, 3: models.WR, 4: models.TE, 5: models.K, 16: models.DEF,
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return models.RB
}

func getProTeamString(proTeamID int) string {
	teams := map[int]string{
		1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
		9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
		17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
		25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
	}

	if team, ok := teams[proTeamID]; ok {
		return team
	}

	return "FA"
}
