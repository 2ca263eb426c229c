// Package rating scores fantasy rosters.
package rating

import (
	"math"
	"sort"

	"github.com/omarshaarawi/gridiron/internal/models"
)

// Rank weights for the best players at a position. Anyone past the fifth
// contributes benchWeight.
var rankWeights = []float64{1.0, 0.7, 0.4, 0.2, 0.1}

const (
	benchWeight     = 0.05
	depthThreshold  = 8.0
	upsidePoolSize  = 5
	maxScore        = 100.0
	qbWeight        = 0.25
	rbWeight        = 0.25
	wrWeight        = 0.25
	teWeight        = 0.15
	depthWeight     = 0.05
	upsideWeight    = 0.05
	depthMultiplier = 10.0
	upsideFactor    = 4.0
)

// Rate computes a team's positional, depth, upside and overall scores.
// K and DEF only count toward depth and upside.
func Rate(team models.FantasyTeam) models.TeamRating {
	byPosition := make(map[models.Position][]models.Player)
	for _, p := range team.Roster {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}

	qb := positionStrength(byPosition[models.QB])
	rb := positionStrength(byPosition[models.RB])
	wr := positionStrength(byPosition[models.WR])
	te := positionStrength(byPosition[models.TE])
	depth := depthScore(team.Roster)
	upside := upsideScore(team.Roster)

	overall := qb*qbWeight +
		rb*rbWeight +
		wr*wrWeight +
		te*teWeight +
		depth*depthWeight +
		upside*upsideWeight

	return models.TeamRating{
		Overall:    round1(overall),
		QBStrength: round1(qb),
		RBStrength: round1(rb),
		WRStrength: round1(wr),
		TEStrength: round1(te),
		Depth:      round1(depth),
		Upside:     round1(upside),
	}
}

func positionStrength(players []models.Player) float64 {
	if len(players) == 0 {
		return 0
	}

	var total float64
	for i, p := range byProjection(players) {
		weight := benchWeight
		if i < len(rankWeights) {
			weight = rankWeights[i]
		}
		total += p.ProjectedPoints * weight
	}

	return math.Min(maxScore, total/2)
}

func depthScore(roster []models.Player) float64 {
	var count int
	for _, p := range roster {
		if p.ProjectedPoints > depthThreshold {
			count++
		}
	}
	return math.Min(maxScore, float64(count)*depthMultiplier)
}

func upsideScore(roster []models.Player) float64 {
	if len(roster) == 0 {
		return 0
	}

	top := byProjection(roster)
	if len(top) > upsidePoolSize {
		top = top[:upsidePoolSize]
	}

	var sum float64
	for _, p := range top {
		sum += p.ProjectedPoints
	}
	return math.Min(maxScore, sum/float64(len(top))*upsideFactor)
}

// byProjection returns a copy of players sorted by projected points,
// highest first.
func byProjection(players []models.Player) []models.Player {
	sorted := append([]models.Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProjectedPoints > sorted[j].ProjectedPoints
	})
	return sorted
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Tier maps an overall rating to a letter grade. Each band includes its
// lower bound.
func Tier(overall float64) string {
	switch {
	case overall >= 90:
		return "S"
	case overall >= 80:
		return "A"
	case overall >= 70:
		return "B"
	case overall >= 60:
		return "C"
	case overall >= 50:
		return "D"
	default:
		return "F"
	}
}

type Comparison struct {
	Team1Rating models.TeamRating `json:"team1Rating"`
	Team2Rating models.TeamRating `json:"team2Rating"`
	Winner      string            `json:"winner"`
	Difference  float64           `json:"difference"`
}

// Compare rates both teams. Winner is the name of the higher rated team; a
// tie goes to team2.
func Compare(team1, team2 models.FantasyTeam) Comparison {
	r1 := Rate(team1)
	r2 := Rate(team2)

	winner := team2.Name
	if r1.Overall > r2.Overall {
		winner = team1.Name
	}

	return Comparison{
		Team1Rating: r1,
		Team2Rating: r2,
		Winner:      winner,
		Difference:  round1(math.Abs(r1.Overall - r2.Overall)),
	}
}
