// Package trade values player exchanges between fantasy teams.
package trade

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/rating"
)

var scarcity = map[models.Position]float64{
	models.QB:  1.0,
	models.RB:  1.3,
	models.WR:  1.1,
	models.TE:  1.2,
	models.K:   0.5,
	models.DEF: 0.6,
}

const (
	fairThresholdPct  = 10.0
	maxSuggestions    = 3
	suggestionLowBand = 0.7
	suggestionHiBand  = 1.3
)

// PlayerValue is projected points scaled by positional scarcity, blended with
// season performance once the player has scored.
func PlayerValue(p models.Player) float64 {
	multiplier, ok := scarcity[p.Position]
	if !ok {
		multiplier = 1.0
	}
	value := p.ProjectedPoints * multiplier

	if p.FantasyPoints > 0 {
		performance := 0.7
		if p.ProjectedPoints != 0 {
			performance += 0.3 * (p.FantasyPoints / p.ProjectedPoints)
		}
		value *= performance
	}

	return value
}

func PlayersValue(players []models.Player) float64 {
	var total float64
	for _, p := range players {
		total += PlayerValue(p)
	}
	return total
}

// SimulateTrade returns a copy of team with playersOut removed by id and
// playersIn appended.
func SimulateTrade(team models.FantasyTeam, playersOut, playersIn []models.Player) models.FantasyTeam {
	out := make(map[string]struct{}, len(playersOut))
	for _, p := range playersOut {
		out[p.ID] = struct{}{}
	}

	roster := make([]models.Player, 0, len(team.Roster)+len(playersIn))
	for _, p := range team.Roster {
		if _, gone := out[p.ID]; !gone {
			roster = append(roster, p)
		}
	}
	roster = append(roster, playersIn...)

	return team.WithRoster(roster)
}

// Analyze values both sides of the proposal and rates each team before and
// after the exchange. The winner is the team that receives more value.
func Analyze(proposal models.TradeProposal, team1, team2 models.FantasyTeam) models.TradeAnalysis {
	team1GivesValue := PlayersValue(proposal.Team1Gives)
	team2GivesValue := PlayersValue(proposal.Team2Gives)

	team1After := SimulateTrade(team1, proposal.Team1Gives, proposal.Team2Gives)
	team2After := SimulateTrade(team2, proposal.Team2Gives, proposal.Team1Gives)

	team1BeforeRating := rating.Rate(team1)
	team2BeforeRating := rating.Rate(team2)
	team1AfterRating := rating.Rate(team1After)
	team2AfterRating := rating.Rate(team2After)

	differential := team1GivesValue - team2GivesValue
	winner := classify(team1GivesValue, team2GivesValue)

	return models.TradeAnalysis{
		Team1Value:   round1(team1GivesValue),
		Team2Value:   round1(team2GivesValue),
		Winner:       winner,
		Differential: round1(math.Abs(differential)),
		Recommendation: recommendation(
			winner,
			differential,
			team1AfterRating.Sub(team1BeforeRating).Overall,
			team2AfterRating.Sub(team2BeforeRating).Overall,
		),
		ImpactOnTeam1: team1AfterRating.Sub(team1BeforeRating),
		ImpactOnTeam2: team2AfterRating.Sub(team2BeforeRating),
	}
}

func classify(team1GivesValue, team2GivesValue float64) models.TradeWinner {
	larger := math.Max(team1GivesValue, team2GivesValue)
	if larger == 0 {
		return models.WinnerFair
	}

	percentageDiff := math.Abs(team1GivesValue-team2GivesValue) / larger * 100
	switch {
	case percentageDiff < fairThresholdPct:
		return models.WinnerFair
	case team2GivesValue > team1GivesValue:
		// team1 receives what team2 gives up
		return models.WinnerTeam1
	default:
		return models.WinnerTeam2
	}
}

func recommendation(winner models.TradeWinner, differential, team1Change, team2Change float64) string {
	if winner == models.WinnerFair {
		return "This is a fair trade with balanced value. Both teams could benefit based on their needs."
	}

	winningTeam, losingTeam := "Team 1", "Team 2"
	winnerChange, loserChange := team1Change, team2Change
	if winner == models.WinnerTeam2 {
		winningTeam, losingTeam = losingTeam, winningTeam
		winnerChange, loserChange = loserChange, winnerChange
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s wins this trade by receiving approximately %.1f more points in value. ", winningTeam, math.Abs(differential)))

	if winnerChange > 5 {
		sb.WriteString(fmt.Sprintf("%s significantly improves their roster (+%.1f overall rating). ", winningTeam, winnerChange))
	}

	if loserChange < -3 {
		sb.WriteString(fmt.Sprintf("%s may want to reconsider as their team rating decreases by %.1f. ", losingTeam, math.Abs(loserChange)))
	}

	return sb.String()
}

// SuggestCounterOffer proposes players from the winning side's roster whose
// value is close to the deficit.
func SuggestCounterOffer(analysis models.TradeAnalysis, team1Roster, team2Roster []models.Player) []string {
	if analysis.Winner == models.WinnerFair {
		return []string{"Trade is already fair!"}
	}

	deficit := analysis.Differential
	winningRoster, winningTeam := team1Roster, 1
	if analysis.Winner == models.WinnerTeam2 {
		winningRoster, winningTeam = team2Roster, 2
	}

	type candidate struct {
		player   models.Player
		distance float64
	}

	var candidates []candidate
	for _, p := range winningRoster {
		value := PlayerValue(p)
		if value >= deficit*suggestionLowBand && value <= deficit*suggestionHiBand {
			candidates = append(candidates, candidate{player: p, distance: math.Abs(value - deficit)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, fmt.Sprintf("Add %s (%s) to Team %d's side", c.player.Name, c.player.Position, winningTeam))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Consider adding draft picks or FAAB budget to balance the trade.")
	}

	return suggestions
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
