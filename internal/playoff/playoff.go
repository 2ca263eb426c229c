// Package playoff seeds the conferences, plays out the single-elimination
// bracket and projects standings and Super Bowl odds.
package playoff

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/prediction"
	"github.com/omarshaarawi/gridiron/internal/random"
)

const seedsPerConference = 7

var ErrNotEnoughTeams = errors.New("not enough teams to seed a conference")

// CompareTeams orders teams for seeding: higher win percentage first, then
// higher point differential. It returns a negative number when a seeds
// ahead of b.
func CompareTeams(a, b models.NFLTeam) int {
	aPct, bPct := a.Record.WinPct(), b.Record.WinPct()
	if aPct != bPct {
		if aPct > bPct {
			return -1
		}
		return 1
	}

	aDiff, bDiff := a.PointDiff(), b.PointDiff()
	switch {
	case aDiff > bDiff:
		return -1
	case aDiff < bDiff:
		return 1
	default:
		return 0
	}
}

// SortTeams returns a copy of teams in seeding order. Teams that compare
// equal keep their input order.
func SortTeams(teams []models.NFLTeam) []models.NFLTeam {
	sorted := append([]models.NFLTeam(nil), teams...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareTeams(sorted[i], sorted[j]) < 0
	})
	return sorted
}

func conferenceTeams(teams []models.NFLTeam, conf models.Conference) []models.NFLTeam {
	var out []models.NFLTeam
	for _, t := range teams {
		if t.Division.Conference() == conf {
			out = append(out, t)
		}
	}
	return SortTeams(out)
}

// Seed returns the top seven teams of each conference in seed order.
func Seed(teams []models.NFLTeam) (afc, nfc []models.NFLTeam) {
	afc = conferenceTeams(teams, models.AFC)
	nfc = conferenceTeams(teams, models.NFC)
	if len(afc) > seedsPerConference {
		afc = afc[:seedsPerConference]
	}
	if len(nfc) > seedsPerConference {
		nfc = nfc[:seedsPerConference]
	}
	return afc, nfc
}

// ProjectDivisionStandings sorts each division's teams using their projected
// record when one exists. Every division is present in the result, empty if
// no team belongs to it.
func ProjectDivisionStandings(teams []models.NFLTeam, projected models.ProjectedRecords) models.DivisionStandings {
	standings := make(models.DivisionStandings, len(models.Divisions))

	for _, division := range models.Divisions {
		members := []models.NFLTeam{}
		for _, t := range teams {
			if t.Division != division {
				continue
			}
			if r, ok := projected[t.Abbreviation]; ok {
				t = t.WithRecord(r)
			}
			members = append(members, t)
		}
		standings[division] = SortTeams(members)
	}

	return standings
}

// WithProjectedRecords returns copies of teams carrying their projected
// record when one exists.
func WithProjectedRecords(teams []models.NFLTeam, projected models.ProjectedRecords) []models.NFLTeam {
	out := make([]models.NFLTeam, 0, len(teams))
	for _, t := range teams {
		if r, ok := projected[t.Abbreviation]; ok {
			t = t.WithRecord(r)
		}
		out = append(out, t)
	}
	return out
}

// SuperBowlOdds ranks every team by strength relative to the league average,
// discounted by its chance of reaching the playoffs.
func SuperBowlOdds(teams []models.NFLTeam) []models.TeamOdds {
	if len(teams) == 0 {
		return nil
	}

	var total float64
	for _, t := range teams {
		total += prediction.Strength(t)
	}
	avg := total / float64(len(teams))

	odds := make([]models.TeamOdds, 0, len(teams))
	for _, t := range teams {
		var relative float64
		if avg > 0 {
			relative = prediction.Strength(t) / avg
		}
		base := relative / float64(len(teams))
		odds = append(odds, models.TeamOdds{
			Team: t.Abbreviation,
			Odds: math.Min(100, base*playoffProbability(t, teams)*100),
		})
	}

	sort.SliceStable(odds, func(i, j int) bool {
		return odds[i].Odds > odds[j].Odds
	})
	return odds
}

// playoffProbability is 0.9 for the top conference seed, dropping 0.1 per
// seed through the seventh. Teams outside the field lose 0.15 per game
// behind the seventh seed from a 0.5 start.
func playoffProbability(team models.NFLTeam, teams []models.NFLTeam) float64 {
	conf := conferenceTeams(teams, team.Division.Conference())

	rank := 0
	for i, t := range conf {
		if t.Abbreviation == team.Abbreviation {
			rank = i + 1
			break
		}
	}

	if rank >= 1 && rank <= seedsPerConference {
		return 0.9 - float64(rank-1)*0.1
	}
	if len(conf) < seedsPerConference {
		return 0
	}

	seventh := conf[seedsPerConference-1]
	gamesBack := ((seventh.Record.Wins - team.Record.Wins) + (team.Record.Losses - seventh.Record.Losses)) / 2
	return math.Max(0, 0.5-gamesBack*0.15)
}

type Simulator struct {
	rng random.Source
}

func NewSimulator(rng random.Source) *Simulator {
	return &Simulator{rng: rng}
}

// GenerateBracket seeds both conferences and plays the bracket through to
// the Super Bowl. The top seed has a bye and hosts the lowest remaining
// wild-card winner.
func (s *Simulator) GenerateBracket(teams []models.NFLTeam) (models.PlayoffBracket, error) {
	afc, nfc := Seed(teams)
	if len(afc) < seedsPerConference {
		return models.PlayoffBracket{}, fmt.Errorf("%w: AFC has %d", ErrNotEnoughTeams, len(afc))
	}
	if len(nfc) < seedsPerConference {
		return models.PlayoffBracket{}, fmt.Errorf("%w: NFC has %d", ErrNotEnoughTeams, len(nfc))
	}

	afcWildCard, afcDivisional, afcChampionship := s.conferenceBracket(afc)
	nfcWildCard, nfcDivisional, nfcChampionship := s.conferenceBracket(nfc)

	return models.PlayoffBracket{
		WildCard:     append(afcWildCard, nfcWildCard...),
		Divisional:   append(afcDivisional, nfcDivisional...),
		Championship: []models.PlayoffGame{afcChampionship, nfcChampionship},
		SuperBowl: s.playGame(models.RoundSuperBowl,
			afcChampionship.PredictedWinner,
			nfcChampionship.PredictedWinner),
	}, nil
}

func (s *Simulator) conferenceBracket(seeds []models.NFLTeam) (wildCard, divisional []models.PlayoffGame, championship models.PlayoffGame) {
	wildCard = []models.PlayoffGame{
		s.playGame(models.RoundWildCard, seeds[1].Abbreviation, seeds[6].Abbreviation),
		s.playGame(models.RoundWildCard, seeds[2].Abbreviation, seeds[5].Abbreviation),
		s.playGame(models.RoundWildCard, seeds[3].Abbreviation, seeds[4].Abbreviation),
	}

	divisional = []models.PlayoffGame{
		s.playGame(models.RoundDivisional, seeds[0].Abbreviation, wildCard[2].PredictedWinner),
		s.playGame(models.RoundDivisional, wildCard[0].PredictedWinner, wildCard[1].PredictedWinner),
	}

	championship = s.playGame(models.RoundChampionship,
		divisional[0].PredictedWinner,
		divisional[1].PredictedWinner)

	return wildCard, divisional, championship
}

// playGame decides a game from two jittered strengths in [50, 70). Real team
// ratings are not consulted.
// TODO: feed prediction.Strength into bracket games once the seeded teams
// are passed down instead of abbreviations.
func (s *Simulator) playGame(round models.PlayoffRound, home, away string) models.PlayoffGame {
	homeStrength := 50 + s.rng.Float64()*20
	awayStrength := 50 + s.rng.Float64()*20

	winner := away
	if homeStrength > awayStrength {
		winner = home
	}

	winnerScore := int(math.Round(20 + s.rng.Float64()*15))
	loserScore := max(10, int(math.Round(float64(winnerScore)-3-s.rng.Float64()*10)))

	game := models.PlayoffGame{
		ID:              fmt.Sprintf("%s-%s-%s", round, home, away),
		Round:           round,
		HomeTeam:        home,
		AwayTeam:        away,
		PredictedWinner: winner,
		HomeScore:       winnerScore,
		AwayScore:       loserScore,
	}
	if winner == away {
		game.HomeScore, game.AwayScore = loserScore, winnerScore
	}
	return game
}

// SimulatePlayoffs plays the bracket simulations times and returns, per team,
// the percentage of runs it won the Super Bowl and the percentage it
// appeared in it.
func (s *Simulator) SimulatePlayoffs(teams []models.NFLTeam, simulations int) (map[string]models.PlayoffOdds, error) {
	counts := make(map[string]*models.PlayoffOdds, len(teams))
	for _, t := range teams {
		counts[t.Abbreviation] = &models.PlayoffOdds{}
	}

	for i := 0; i < simulations; i++ {
		bracket, err := s.GenerateBracket(teams)
		if err != nil {
			return nil, err
		}

		final := bracket.SuperBowl
		if c, ok := counts[final.PredictedWinner]; ok {
			c.ChampionshipPct++
			c.AppearancePct++
		}
		if c, ok := counts[final.Loser()]; ok {
			c.AppearancePct++
		}
	}

	results := make(map[string]models.PlayoffOdds, len(counts))
	for abbr, c := range counts {
		if simulations > 0 {
			c.ChampionshipPct = c.ChampionshipPct / float64(simulations) * 100
			c.AppearancePct = c.AppearancePct / float64(simulations) * 100
		}
		results[abbr] = *c
	}
	return results, nil
}

// PredictSeason predicts the remaining schedule, simulates it, projects the
// division standings and plays a bracket seeded from the projected records.
func PredictSeason(teams []models.NFLTeam, schedule []models.Game, currentWeek, simulations int, rng random.Source) (models.SeasonPrediction, error) {
	games := prediction.PredictRemainingSeason(teams, schedule, currentWeek)
	projected := prediction.NewSimulator(rng).SimulateSeason(teams, games, simulations)

	bracket, err := NewSimulator(rng).GenerateBracket(WithProjectedRecords(teams, projected))
	if err != nil {
		return models.SeasonPrediction{}, fmt.Errorf("generating playoff bracket: %w", err)
	}

	return models.SeasonPrediction{
		Standings:         ProjectDivisionStandings(teams, projected),
		PlayoffBracket:    bracket,
		SuperBowlChampion: bracket.SuperBowl.PredictedWinner,
	}, nil
}
