package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/gridiron/internal/models"
)

const topOddsShown = 10

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func formatRecord(r models.Record) string {
	if r.Ties > 0 {
		return fmt.Sprintf("%s-%s-%s", formatNumber(r.Wins), formatNumber(r.Losses), formatNumber(r.Ties))
	}
	return fmt.Sprintf("%s-%s", formatNumber(r.Wins), formatNumber(r.Losses))
}

func (s *FantasyService) GetPowerRankings(ctx context.Context) (string, error) {
	rated := s.RateAllTeams(ctx)
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating.Overall > rated[j].Rating.Overall
	})

	var sb strings.Builder
	sb.WriteString("📊 *Power Rankings*\n\n")

	if len(rated) == 0 {
		sb.WriteString("No fantasy teams found.")
		return sb.String(), nil
	}

	for i, team := range rated {
		sb.WriteString(fmt.Sprintf("%d. *%s* (Tier %s)\n", i+1, team.Name, team.Tier))
		sb.WriteString(fmt.Sprintf("   Overall: %.1f\n", team.Rating.Overall))
		sb.WriteString(fmt.Sprintf("   Record: %s\n\n", formatRecord(team.Record)))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetTeamRating(ctx context.Context, teamName string) (string, error) {
	team, err := findTeamByName(s.snapshot(ctx), teamName)
	if err != nil {
		return "", err
	}
	rated := rate(team)
	r := rated.Rating

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s* (Tier %s)\n", rated.Name, rated.Tier))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Overall: %.1f\n", r.Overall))
	sb.WriteString(fmt.Sprintf("QB: %.1f | RB: %.1f\n", r.QBStrength, r.RBStrength))
	sb.WriteString(fmt.Sprintf("WR: %.1f | TE: %.1f\n", r.WRStrength, r.TEStrength))
	sb.WriteString(fmt.Sprintf("Depth: %.1f | Upside: %.1f\n", r.Depth, r.Upside))
	sb.WriteString(fmt.Sprintf("Record: %s", formatRecord(rated.Record)))

	return sb.String(), nil
}

// GetTradeAnalysis evaluates a chat trade such as "Mahomes for Josh Allen,
// Breece Hall". Each side's team is the fantasy team rostering its players.
// GetTeamComparison compares two fantasy teams named as "<team> vs <team>".
func (s *FantasyService) GetTeamComparison(ctx context.Context, args string) (string, error) {
	name1, name2, err := parseCompareArgs(args)
	if err != nil {
		return "", err
	}

	snap := s.snapshot(ctx)
	team1, err := findTeamByName(snap, name1)
	if err != nil {
		return "", err
	}
	team2, err := findTeamByName(snap, name2)
	if err != nil {
		return "", err
	}

	c, err := s.CompareTeams(ctx, team1.ID, team2.ID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("⚔️ *Team Comparison*\n\n")
	sb.WriteString(fmt.Sprintf("1: *%s*\n2: *%s*\n", team1.Name, team2.Name))

	r1, r2 := c.Team1Rating, c.Team2Rating
	rows := []struct {
		label  string
		v1, v2 float64
	}{
		{"Overall", r1.Overall, r2.Overall},
		{"QB", r1.QBStrength, r2.QBStrength},
		{"RB", r1.RBStrength, r2.RBStrength},
		{"WR", r1.WRStrength, r2.WRStrength},
		{"TE", r1.TEStrength, r2.TEStrength},
		{"Depth", r1.Depth, r2.Depth},
		{"Upside", r1.Upside, r2.Upside},
	}
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("%-8s %6s %6s\n", "", "1", "2"))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-8s %6.1f %6.1f\n", row.label, row.v1, row.v2))
	}
	sb.WriteString("```\n")
	sb.WriteString(fmt.Sprintf("Edge: *%s* by %.1f\n", c.Winner, c.Difference))

	return sb.String(), nil
}

func (s *FantasyService) GetTradeAnalysis(ctx context.Context, args string) (string, error) {
	giveNames, getNames, err := parseTradeArgs(args)
	if err != nil {
		return "", err
	}

	snap := s.snapshot(ctx)
	team1, team1Gives, err := resolveSide(snap, giveNames)
	if err != nil {
		return "", err
	}
	team2, team2Gives, err := resolveSide(snap, getNames)
	if err != nil {
		return "", err
	}
	if team1.ID == team2.ID {
		return "", fmt.Errorf("%w: both sides belong to %s", ErrInvalidPlayers, team1.Name)
	}

	result := evaluateTrade(team1, team2, team1Gives, team2Gives)
	a := result.Analysis

	var sb strings.Builder
	sb.WriteString("🔄 *Trade Analysis*\n\n")
	sb.WriteString(fmt.Sprintf("*%s* gives: %s (%.1f)\n", team1.Name, playerNames(team1Gives), a.Team1Value))
	sb.WriteString(fmt.Sprintf("*%s* gives: %s (%.1f)\n\n", team2.Name, playerNames(team2Gives), a.Team2Value))
	sb.WriteString(fmt.Sprintf("%s\n", a.Recommendation))
	sb.WriteString(fmt.Sprintf("\nRating change: %s %+.1f, %s %+.1f\n",
		team1.Name, a.ImpactOnTeam1.Overall, team2.Name, a.ImpactOnTeam2.Overall))

	sb.WriteString("\n*Counter Offers:*\n")
	for _, offer := range result.CounterOffers {
		sb.WriteString(fmt.Sprintf("  • %s\n", offer))
	}

	return sb.String(), nil
}

func resolveSide(snap *models.Snapshot, names []string) (models.FantasyTeam, []models.Player, error) {
	var (
		team    models.FantasyTeam
		players []models.Player
	)
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		found, err := findRosteredPlayer(snap, name)
		if err != nil {
			return models.FantasyTeam{}, nil, err
		}
		if i == 0 {
			team = found.team
		} else if found.team.ID != team.ID {
			return models.FantasyTeam{}, nil, fmt.Errorf("%w: %s is not on %s", ErrInvalidPlayers, found.player.Name, team.Name)
		}
		// "Mahomes, Patrick Mahomes" names one player.
		if seen[found.player.ID] {
			continue
		}
		seen[found.player.ID] = true
		players = append(players, found.player)
	}
	return team, players, nil
}

func playerNames(players []models.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// GetPredictions reports the games of a single week. A week of zero or less
// uses the current week.
func (s *FantasyService) GetPredictions(ctx context.Context, week int) (string, error) {
	result := s.Predictions(ctx, week)

	sos := make(map[string]float64)
	for _, st := range s.ScheduleStrengths(ctx) {
		sos[st.Team] = st.StrengthOfSchedule
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔮 *Week %d Predictions*\n\n", result.CurrentWeek))

	count := 0
	for _, game := range result.Predictions {
		if game.Week != result.CurrentWeek || game.WinProbability == nil {
			continue
		}
		count++

		favorite, prob := game.HomeTeam, game.WinProbability.Home
		if game.WinProbability.Away > game.WinProbability.Home {
			favorite, prob = game.AwayTeam, game.WinProbability.Away
		}

		sb.WriteString(fmt.Sprintf("*%s* @ *%s*\n", game.AwayTeam, game.HomeTeam))
		sb.WriteString(fmt.Sprintf("Projected: %d - %d\n", *game.PredictedAwayScore, *game.PredictedHomeScore))
		sb.WriteString(fmt.Sprintf("Favorite: %s (%.0f%%)\n", favorite, prob*100))
		sb.WriteString(fmt.Sprintf("Remaining SoS: %s %.2f, %s %.2f\n\n",
			game.AwayTeam, sos[game.AwayTeam], game.HomeTeam, sos[game.HomeTeam]))
	}

	if count == 0 {
		sb.WriteString("No upcoming games found for this week.")
	}

	return sb.String(), nil
}

func (s *FantasyService) GetStandings(ctx context.Context) (string, error) {
	standings := s.Standings(ctx)

	var sb strings.Builder
	sb.WriteString("🏆 *Division Standings*\n")

	for _, division := range models.Divisions {
		teams := standings[division]
		if len(teams) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n*%s*\n", division))
		for i, team := range teams {
			sb.WriteString(fmt.Sprintf("%d. %s %s (%+.0f)\n", i+1, team.Abbreviation, formatRecord(team.Record), team.PointDiff()))
		}
	}

	return sb.String(), nil
}

func (s *FantasyService) GetPlayoffPicture(ctx context.Context) (string, error) {
	season, err := s.SeasonPrediction(ctx)
	if err != nil {
		return "", err
	}
	bracket := season.PlayoffBracket

	var sb strings.Builder
	sb.WriteString("🏈 *Projected Playoff Picture*\n")

	writeRound := func(title string, games []models.PlayoffGame) {
		sb.WriteString(fmt.Sprintf("\n*%s*\n", title))
		for _, g := range games {
			sb.WriteString(fmt.Sprintf("%s %d - %d %s\n", g.HomeTeam, g.HomeScore, g.AwayScore, g.AwayTeam))
		}
	}
	writeRound(string(models.RoundWildCard), bracket.WildCard)
	writeRound(string(models.RoundDivisional), bracket.Divisional)
	writeRound(string(models.RoundChampionship), bracket.Championship)
	writeRound(string(models.RoundSuperBowl), []models.PlayoffGame{bracket.SuperBowl})

	sb.WriteString(fmt.Sprintf("\n🏆 Projected Champion: *%s*", season.SuperBowlChampion))

	return sb.String(), nil
}

func (s *FantasyService) GetSuperBowlOdds(ctx context.Context) (string, error) {
	odds := s.SuperBowlOdds(ctx)
	if len(odds) > topOddsShown {
		odds = odds[:topOddsShown]
	}

	var sb strings.Builder
	sb.WriteString("🎰 *Super Bowl Odds*\n\n")
	for i, o := range odds {
		sb.WriteString(fmt.Sprintf("%d. %s %.1f%%\n", i+1, o.Team, o.Odds))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetTopPlayers(ctx context.Context, limit int) (string, error) {
	players := s.TopPlayers(ctx, limit)

	var sb strings.Builder
	sb.WriteString("⭐ *Top Players by Trade Value*\n\n")

	if len(players) == 0 {
		sb.WriteString("No players available.")
		return sb.String(), nil
	}

	for i, p := range players {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s - %s) %.1f\n", i+1, p.Name, p.Position, p.Team, p.Value))
	}

	return sb.String(), nil
}
