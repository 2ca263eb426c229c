package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/omarshaarawi/gridiron/internal/service"
)

const (
	jobTimeout      = 2 * time.Minute
	topPlayersShown = 10
)

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
	refreshEvery   time.Duration
}

// NewScheduler builds the weekly report jobs. A nil sendMessage only
// schedules the snapshot refresh.
func NewScheduler(fantasyService *service.FantasyService, sendMessage func(string) error, timezone string, refreshEvery time.Duration) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location, using UTC", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		sendMessage:    sendMessage,
		refreshEvery:   refreshEvery,
	}, nil
}

func (s *Scheduler) Start() error {
	if s.refreshEvery > 0 {
		_, err := s.s.NewJob(
			gocron.DurationJob(s.refreshEvery),
			gocron.NewTask(s.refreshSnapshot),
		)
		if err != nil {
			return fmt.Errorf("failed to create refresh job: %w", err)
		}
	}

	if s.sendMessage != nil {
		if err := s.reportJobs(); err != nil {
			return err
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) reportJobs() error {
	var err error

	// Power rankings - Tuesday 7:30
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.send, "power rankings", s.fantasyService.GetPowerRankings),
	)
	if err != nil {
		return fmt.Errorf("failed to create power rankings job: %w", err)
	}

	// Playoff picture - Wednesday 7:30
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.send, "playoff picture", s.fantasyService.GetPlayoffPicture),
	)
	if err != nil {
		return fmt.Errorf("failed to create playoff picture job: %w", err)
	}

	// Game predictions - Thursday 18:00, before kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(18, 0, 0))),
		gocron.NewTask(s.send, "predictions", s.currentPredictions),
	)
	if err != nil {
		return fmt.Errorf("failed to create predictions job: %w", err)
	}

	// Super Bowl odds and top players - Sunday 7:30
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.send, "Super Bowl odds", s.fantasyService.GetSuperBowlOdds),
	)
	if err != nil {
		return fmt.Errorf("failed to create odds job: %w", err)
	}

	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(7, 35, 0))),
		gocron.NewTask(s.send, "top players", s.topPlayers),
	)
	if err != nil {
		return fmt.Errorf("failed to create top players job: %w", err)
	}

	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.fantasyService.Refresh(ctx)
}

func (s *Scheduler) currentPredictions(ctx context.Context) (string, error) {
	return s.fantasyService.GetPredictions(ctx, 0)
}

func (s *Scheduler) topPlayers(ctx context.Context) (string, error) {
	return s.fantasyService.GetTopPlayers(ctx, topPlayersShown)
}

func (s *Scheduler) send(name string, report func(context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	text, err := report(ctx)
	if err != nil {
		slog.Error("Failed to build report", "report", name, "error", err)
		return
	}
	if err := s.sendMessage(text); err != nil {
		slog.Error("Failed to send report", "report", name, "error", err)
	}
}
