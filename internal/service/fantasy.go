package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/playoff"
	"github.com/omarshaarawi/gridiron/internal/prediction"
	"github.com/omarshaarawi/gridiron/internal/random"
	"github.com/omarshaarawi/gridiron/internal/rating"
	"github.com/omarshaarawi/gridiron/internal/repository/memory"
	"github.com/omarshaarawi/gridiron/internal/trade"
)

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidPlayers = errors.New("invalid player selection")
	ErrSameTeam       = errors.New("a team cannot be compared with itself")
)

// SnapshotLoader is satisfied by *fantasy.API.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) *models.Snapshot
}

type FantasyService struct {
	api         SnapshotLoader
	repo        *memory.Repository
	rng         random.Source
	simulations int
	ttl         time.Duration
	loadMu      sync.Mutex
}

func NewFantasyService(api SnapshotLoader, repo *memory.Repository, rng random.Source, simulations int, ttl time.Duration) *FantasyService {
	return &FantasyService{
		api:         api,
		repo:        repo,
		rng:         rng,
		simulations: simulations,
		ttl:         ttl,
	}
}

func (s *FantasyService) snapshot(ctx context.Context) *models.Snapshot {
	if !s.repo.Stale(s.ttl) {
		return s.repo.GetSnapshot()
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if !s.repo.Stale(s.ttl) {
		return s.repo.GetSnapshot()
	}
	return s.load(ctx)
}

func (s *FantasyService) load(ctx context.Context) *models.Snapshot {
	snap := s.api.LoadSnapshot(ctx)
	s.repo.SaveSnapshot(snap)
	slog.Info("Loaded snapshot", "live", snap.Live, "teams", len(snap.Teams), "games", len(snap.Games), "week", snap.CurrentWeek)
	return snap
}

// Refresh reloads the snapshot regardless of its age.
func (s *FantasyService) Refresh(ctx context.Context) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.load(ctx)
}

type RatedTeam struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Owner  string            `json:"owner"`
	Record models.Record     `json:"record"`
	Rating models.TeamRating `json:"rating"`
	Tier   string            `json:"tier"`
}

func rate(team models.FantasyTeam) RatedTeam {
	r := rating.Rate(team)
	return RatedTeam{
		ID:     team.ID,
		Name:   team.Name,
		Owner:  team.Owner,
		Record: team.Record,
		Rating: r,
		Tier:   rating.Tier(r.Overall),
	}
}

// RateTeam rates the fantasy team with the given id.
func (s *FantasyService) RateTeam(ctx context.Context, teamID string) (RatedTeam, error) {
	team, err := findTeam(s.snapshot(ctx), teamID)
	if err != nil {
		return RatedTeam{}, err
	}
	return rate(team), nil
}

// RateAllTeams rates every fantasy team in league order.
func (s *FantasyService) RateAllTeams(ctx context.Context) []RatedTeam {
	snap := s.snapshot(ctx)

	rated := make([]RatedTeam, 0, len(snap.FantasyTeams))
	for _, team := range snap.FantasyTeams {
		rated = append(rated, rate(team))
	}
	return rated
}

// CompareTeams rates two fantasy teams side by side.
func (s *FantasyService) CompareTeams(ctx context.Context, team1ID, team2ID string) (rating.Comparison, error) {
	snap := s.snapshot(ctx)

	team1, err := findTeam(snap, team1ID)
	if err != nil {
		return rating.Comparison{}, err
	}
	team2, err := findTeam(snap, team2ID)
	if err != nil {
		return rating.Comparison{}, err
	}
	if team1.ID == team2.ID {
		return rating.Comparison{}, fmt.Errorf("%w: %s", ErrSameTeam, team1.Name)
	}
	return rating.Compare(team1, team2), nil
}

func findTeam(snap *models.Snapshot, teamID string) (models.FantasyTeam, error) {
	for _, team := range snap.FantasyTeams {
		if team.ID == teamID {
			return team, nil
		}
	}
	return models.FantasyTeam{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
}

type TradeRequest struct {
	Team1ID        string   `json:"team1Id"`
	Team2ID        string   `json:"team2Id"`
	Team1PlayerIDs []string `json:"team1PlayerIds"`
	Team2PlayerIDs []string `json:"team2PlayerIds"`
}

type TradeResult struct {
	Analysis      models.TradeAnalysis `json:"analysis"`
	CounterOffers []string             `json:"counterOffers"`
}

// AnalyzeTrade resolves the request against the snapshot and evaluates it.
// Every player id must be on the roster of the team giving it up; repeated ids
// count once.
func (s *FantasyService) AnalyzeTrade(ctx context.Context, req TradeRequest) (TradeResult, error) {
	snap := s.snapshot(ctx)

	team1, err := findTeam(snap, req.Team1ID)
	if err != nil {
		return TradeResult{}, err
	}
	team2, err := findTeam(snap, req.Team2ID)
	if err != nil {
		return TradeResult{}, err
	}
	if team1.ID == team2.ID {
		return TradeResult{}, fmt.Errorf("%w: both sides are %s", ErrInvalidPlayers, team1.Name)
	}

	team1Gives, err := selectPlayers(team1, req.Team1PlayerIDs)
	if err != nil {
		return TradeResult{}, err
	}
	team2Gives, err := selectPlayers(team2, req.Team2PlayerIDs)
	if err != nil {
		return TradeResult{}, err
	}

	return evaluateTrade(team1, team2, team1Gives, team2Gives), nil
}

func evaluateTrade(team1, team2 models.FantasyTeam, team1Gives, team2Gives []models.Player) TradeResult {
	analysis := trade.Analyze(models.TradeProposal{
		Team1:      team1.Name,
		Team2:      team2.Name,
		Team1Gives: team1Gives,
		Team2Gives: team2Gives,
	}, team1, team2)

	return TradeResult{
		Analysis:      analysis,
		CounterOffers: trade.SuggestCounterOffer(analysis, team1.Roster, team2.Roster),
	}
}

// selectPlayers picks the given ids off the team's roster in request order.
func selectPlayers(team models.FantasyTeam, ids []string) ([]models.Player, error) {
	var players []models.Player
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if !team.HasPlayer(id) {
			return nil, fmt.Errorf("%w: %s is not on %s", ErrInvalidPlayers, id, team.Name)
		}
		for _, p := range team.Roster {
			if p.ID == id {
				players = append(players, p)
				break
			}
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %s gives up no players", ErrInvalidPlayers, team.Name)
	}
	return players, nil
}

type WeekPredictions struct {
	CurrentWeek int           `json:"currentWeek"`
	Predictions []models.Game `json:"predictions"`
}

// Predictions forecasts every unplayed game from week onwards. A week of zero
// or less uses the snapshot's current week.
func (s *FantasyService) Predictions(ctx context.Context, week int) WeekPredictions {
	snap := s.snapshot(ctx)
	if week <= 0 {
		week = snap.CurrentWeek
	}

	return WeekPredictions{
		CurrentWeek: week,
		Predictions: prediction.PredictRemainingSeason(snap.Teams, snap.Games, week),
	}
}

// SeasonPrediction projects final standings and plays a bracket seeded from
// the simulated records.
func (s *FantasyService) SeasonPrediction(ctx context.Context) (models.SeasonPrediction, error) {
	snap := s.snapshot(ctx)

	season, err := playoff.PredictSeason(snap.Teams, snap.Games, snap.CurrentWeek, s.simulations, s.rng)
	if err != nil {
		return models.SeasonPrediction{}, fmt.Errorf("predicting season: %w", err)
	}
	return season, nil
}

type TeamPlayoffOdds struct {
	Team string `json:"team"`
	models.PlayoffOdds
}

// PlayoffOdds simulates the rest of the season, then plays the bracket
// repeatedly from the projected records. Results are sorted by championship
// percentage.
func (s *FantasyService) PlayoffOdds(ctx context.Context) ([]TeamPlayoffOdds, error) {
	snap := s.snapshot(ctx)

	games := prediction.PredictRemainingSeason(snap.Teams, snap.Games, snap.CurrentWeek)
	projected := prediction.NewSimulator(s.rng).SimulateSeason(snap.Teams, games, s.simulations)
	teams := playoff.WithProjectedRecords(snap.Teams, projected)

	results, err := playoff.NewSimulator(s.rng).SimulatePlayoffs(teams, s.simulations)
	if err != nil {
		return nil, fmt.Errorf("simulating playoffs: %w", err)
	}

	odds := make([]TeamPlayoffOdds, 0, len(results))
	for abbr, r := range results {
		odds = append(odds, TeamPlayoffOdds{Team: abbr, PlayoffOdds: r})
	}
	sort.Slice(odds, func(i, j int) bool {
		if odds[i].ChampionshipPct != odds[j].ChampionshipPct {
			return odds[i].ChampionshipPct > odds[j].ChampionshipPct
		}
		if odds[i].AppearancePct != odds[j].AppearancePct {
			return odds[i].AppearancePct > odds[j].AppearancePct
		}
		return odds[i].Team < odds[j].Team
	})
	return odds, nil
}

func (s *FantasyService) SuperBowlOdds(ctx context.Context) []models.TeamOdds {
	return playoff.SuperBowlOdds(s.snapshot(ctx).Teams)
}

// Standings returns the current division standings.
func (s *FantasyService) Standings(ctx context.Context) models.DivisionStandings {
	return playoff.ProjectDivisionStandings(s.snapshot(ctx).Teams, nil)
}

type ScheduleStrength struct {
	Team               string   `json:"team"`
	Opponents          []string `json:"opponents"`
	StrengthOfSchedule float64  `json:"strengthOfSchedule"`
}

// ScheduleStrengths ranks teams with unplayed games by the average strength
// of their remaining opponents, hardest first.
func (s *FantasyService) ScheduleStrengths(ctx context.Context) []ScheduleStrength {
	snap := s.snapshot(ctx)

	var strengths []ScheduleStrength
	for _, team := range snap.Teams {
		opponents := prediction.RemainingOpponents(team.Abbreviation, snap.Teams, snap.Games)
		if len(opponents) == 0 {
			continue
		}
		abbrs := make([]string, len(opponents))
		for i, opp := range opponents {
			abbrs[i] = opp.Abbreviation
		}
		strengths = append(strengths, ScheduleStrength{
			Team:               team.Abbreviation,
			Opponents:          abbrs,
			StrengthOfSchedule: prediction.StrengthOfSchedule(opponents),
		})
	}

	sort.SliceStable(strengths, func(i, j int) bool {
		if strengths[i].StrengthOfSchedule != strengths[j].StrengthOfSchedule {
			return strengths[i].StrengthOfSchedule > strengths[j].StrengthOfSchedule
		}
		return strengths[i].Team < strengths[j].Team
	})
	return strengths
}

type PlayerValuation struct {
	models.Player
	Value float64 `json:"value"`
}

// TopPlayers returns players ordered by trade value. A limit of zero or less
// returns them all.
func (s *FantasyService) TopPlayers(ctx context.Context, limit int) []PlayerValuation {
	snap := s.snapshot(ctx)

	valued := make([]PlayerValuation, 0, len(snap.Players))
	for _, p := range snap.Players {
		valued = append(valued, PlayerValuation{Player: p, Value: trade.PlayerValue(p)})
	}
	sort.SliceStable(valued, func(i, j int) bool {
		return valued[i].Value > valued[j].Value
	})

	if limit > 0 && len(valued) > limit {
		valued = valued[:limit]
	}
	return valued
}
