package prediction

import (
	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/random"
)

type Simulator struct {
	rng random.Source
}

func NewSimulator(rng random.Source) *Simulator {
	return &Simulator{rng: rng}
}

// SimulateSeason plays every predicted game simulations times and returns
// each team's average final record. Every trial starts from the actual
// record; ties are carried over and never simulated. Games without a win
// probability or with an unknown team are skipped.
func (s *Simulator) SimulateSeason(teams []models.NFLTeam, games []models.Game, simulations int) models.ProjectedRecords {
	base := make(models.ProjectedRecords, len(teams))
	for _, t := range teams {
		base[t.Abbreviation] = t.Record
	}

	results := make(models.ProjectedRecords, len(base))
	for abbr, r := range base {
		results[abbr] = r
	}

	for sim := 0; sim < simulations; sim++ {
		trial := s.playThrough(base, games)

		n := float64(sim)
		for abbr, r := range trial {
			avg := results[abbr]
			if sim == 0 {
				avg = r
			} else {
				avg.Wins = (avg.Wins*n + r.Wins) / (n + 1)
				avg.Losses = (avg.Losses*n + r.Losses) / (n + 1)
			}
			results[abbr] = avg
		}
	}

	return results
}

func (s *Simulator) playThrough(base models.ProjectedRecords, games []models.Game) models.ProjectedRecords {
	trial := make(models.ProjectedRecords, len(base))
	for abbr, r := range base {
		trial[abbr] = r
	}

	for _, game := range games {
		if game.WinProbability == nil {
			continue
		}
		home, okHome := trial[game.HomeTeam]
		away, okAway := trial[game.AwayTeam]
		if !okHome || !okAway {
			continue
		}

		if s.rng.Float64() < game.WinProbability.Home {
			home.Wins++
			away.Losses++
		} else {
			away.Wins++
			home.Losses++
		}
		trial[game.HomeTeam] = home
		trial[game.AwayTeam] = away
	}

	return trial
}
