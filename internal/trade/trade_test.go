package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/gridiron/internal/models"
)

func p(id string, pos models.Position, projected float64) models.Player {
	return models.Player{ID: id, Name: id, Position: pos, ProjectedPoints: projected}
}

func TestPlayerValue(t *testing.T) {
	tests := []struct {
		name   string
		player models.Player
		want   float64
	}{
		{"running back scarcity", p("rb", models.RB, 21.8), 28.34},
		{"receiver scarcity", p("wr", models.WR, 20.8), 22.88},
		{"kicker discount", p("k", models.K, 10), 5},
		{"defense discount", p("def", models.DEF, 10), 6},
		{"unknown position", models.Player{Position: "LB", ProjectedPoints: 10}, 10},
		{
			"outperforming projection",
			models.Player{Position: models.WR, ProjectedPoints: 20, FantasyPoints: 200},
			20 * 1.1 * (0.7 + 0.3*10),
		},
		{
			"zero projection with points",
			models.Player{Position: models.QB, FantasyPoints: 50},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PlayerValue(tt.player), 1e-9)
		})
	}
}

func TestSimulateTrade_CopiesRoster(t *testing.T) {
	team := models.FantasyTeam{ID: "t1", Roster: []models.Player{
		p("a", models.QB, 20),
		p("b", models.RB, 15),
		p("c", models.WR, 12),
	}}

	after := SimulateTrade(team, []models.Player{p("b", models.RB, 15)}, []models.Player{p("z", models.TE, 9)})

	require.Len(t, after.Roster, 3)
	assert.Equal(t, []string{"a", "c", "z"}, ids(after.Roster))
	assert.Equal(t, []string{"a", "b", "c"}, ids(team.Roster))
	assert.Equal(t, "t1", after.ID)
}

func ids(players []models.Player) []string {
	out := make([]string, 0, len(players))
	for _, pl := range players {
		out = append(out, pl.ID)
	}
	return out
}

func rbForWR() (models.TradeProposal, models.FantasyTeam, models.FantasyTeam) {
	rb := p("rb", models.RB, 21.8)
	wr := p("wr", models.WR, 20.8)
	team1 := models.FantasyTeam{ID: "t1", Name: "One", Roster: []models.Player{rb, p("qb1", models.QB, 20)}}
	team2 := models.FantasyTeam{ID: "t2", Name: "Two", Roster: []models.Player{wr, p("qb2", models.QB, 19)}}
	proposal := models.TradeProposal{
		Team1:      team1.Name,
		Team2:      team2.Name,
		Team1Gives: []models.Player{rb},
		Team2Gives: []models.Player{wr},
	}
	return proposal, team1, team2
}

func TestAnalyze_RBForWR(t *testing.T) {
	proposal, team1, team2 := rbForWR()

	a := Analyze(proposal, team1, team2)

	assert.InDelta(t, 28.3, a.Team1Value, 1e-9)
	assert.InDelta(t, 22.9, a.Team2Value, 1e-9)
	assert.InDelta(t, 5.46, a.Differential, 0.05)
	assert.Equal(t, models.WinnerTeam2, a.Winner)
	assert.Contains(t, a.Recommendation, "Team 2 wins this trade")
	assert.Contains(t, a.Recommendation, "5.5 more points")

	// the originals are not touched by the simulated rosters
	assert.Equal(t, "rb", team1.Roster[0].ID)
	assert.Equal(t, "wr", team2.Roster[0].ID)
}

func TestAnalyze_Symmetric(t *testing.T) {
	proposal, team1, team2 := rbForWR()
	swapped := models.TradeProposal{
		Team1:      proposal.Team2,
		Team2:      proposal.Team1,
		Team1Gives: proposal.Team2Gives,
		Team2Gives: proposal.Team1Gives,
	}

	a := Analyze(proposal, team1, team2)
	b := Analyze(swapped, team2, team1)

	assert.Equal(t, a.Team1Value, b.Team2Value)
	assert.Equal(t, a.Team2Value, b.Team1Value)
	assert.Equal(t, a.Differential, b.Differential)
	assert.Equal(t, models.WinnerTeam1, b.Winner)
	assert.Equal(t, a.ImpactOnTeam1, b.ImpactOnTeam2)
}

func TestAnalyze_Fair(t *testing.T) {
	team1 := models.FantasyTeam{Roster: []models.Player{p("a", models.QB, 20)}}
	team2 := models.FantasyTeam{Roster: []models.Player{p("b", models.QB, 19)}}
	proposal := models.TradeProposal{
		Team1Gives: team1.Roster,
		Team2Gives: team2.Roster,
	}

	a := Analyze(proposal, team1, team2)

	assert.Equal(t, models.WinnerFair, a.Winner)
	assert.InDelta(t, 1.0, a.Differential, 1e-9)
	assert.Contains(t, a.Recommendation, "fair trade")
	assert.Equal(t, []string{"Trade is already fair!"}, SuggestCounterOffer(a, team1.Roster, team2.Roster))

	swapped := Analyze(models.TradeProposal{Team1Gives: team2.Roster, Team2Gives: team1.Roster}, team2, team1)
	assert.Equal(t, models.WinnerFair, swapped.Winner)
}

func TestAnalyze_ZeroValueIsFair(t *testing.T) {
	a := Analyze(models.TradeProposal{
		Team1Gives: []models.Player{p("a", models.QB, 0)},
		Team2Gives: []models.Player{p("b", models.QB, 0)},
	}, models.FantasyTeam{}, models.FantasyTeam{})

	assert.Equal(t, models.WinnerFair, a.Winner)
}

func TestAnalyze_RatingSwings(t *testing.T) {
	kicker := p("k", models.K, 10)
	back := p("rb", models.RB, 30)
	team1 := models.FantasyTeam{Roster: []models.Player{kicker}}
	team2 := models.FantasyTeam{Roster: []models.Player{back}}

	a := Analyze(models.TradeProposal{
		Team1Gives: []models.Player{kicker},
		Team2Gives: []models.Player{back},
	}, team1, team2)

	assert.Equal(t, models.WinnerTeam1, a.Winner)
	assert.Greater(t, a.ImpactOnTeam1.Overall, 5.0)
	assert.Less(t, a.ImpactOnTeam2.Overall, -3.0)
	assert.Contains(t, a.Recommendation, "Team 1 significantly improves their roster")
	assert.Contains(t, a.Recommendation, "Team 2 may want to reconsider")
}

func TestSuggestCounterOffer_ClosestFirst(t *testing.T) {
	proposal, team1, team2 := rbForWR()
	a := Analyze(proposal, team1, team2)
	require.Equal(t, models.WinnerTeam2, a.Winner)

	team2Roster := []models.Player{
		p("Receiver", models.WR, 20.8),
		p("Kicker", models.K, 10),
		p("Defense", models.DEF, 8),
		p("Tight End", models.TE, 5),
		p("Backup QB", models.QB, 7),
	}

	got := SuggestCounterOffer(a, team1.Roster, team2Roster)

	assert.Equal(t, []string{
		"Add Kicker (K) to Team 2's side",
		"Add Tight End (TE) to Team 2's side",
		"Add Defense (DEF) to Team 2's side",
	}, got)
}

func TestSuggestCounterOffer_Fallback(t *testing.T) {
	proposal, team1, team2 := rbForWR()
	a := Analyze(proposal, team1, team2)

	got := SuggestCounterOffer(a, team1.Roster, []models.Player{p("star", models.RB, 40)})

	assert.Equal(t, []string{"Consider adding draft picks or FAAB budget to balance the trade."}, got)
}
