package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/gridiron/internal/service"
)

const topPlayersShown = 10

const helpText = "Available commands:\n" +
	"/ratings - Power rankings for every fantasy team\n" +
	"/rate <team> - Rating breakdown for a fantasy team\n" +
	"/compare <team> vs <team> - Head to head team ratings\n" +
	"/trade <players> for <players> - Analyze a trade, e.g. /trade Mahomes for Josh Allen\n" +
	"/predict [week] - Game predictions for a week\n" +
	"/standings - NFL division standings\n" +
	"/playoffs - Projected playoff bracket\n" +
	"/odds - Super Bowl odds\n" +
	"/players - Top players by trade value"

type Handler struct {
	fantasyService *service.FantasyService
}

func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to Gridiron! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "ratings":
		h.reply(&msg, "generating power rankings", func() (string, error) {
			return h.fantasyService.GetPowerRankings(ctx)
		})
	case "rate":
		h.handleRate(ctx, &msg, args)
	case "compare":
		if args == "" {
			msg.Text = "Please name two teams. Usage: /compare <team> vs <team>"
			break
		}
		h.reply(&msg, "comparing teams", func() (string, error) {
			return h.fantasyService.GetTeamComparison(ctx, args)
		})
	case "trade":
		h.handleTrade(ctx, &msg, args)
	case "predict":
		h.handlePredict(ctx, &msg, args)
	case "standings":
		h.reply(&msg, "fetching standings", func() (string, error) {
			return h.fantasyService.GetStandings(ctx)
		})
	case "playoffs":
		h.reply(&msg, "simulating playoffs", func() (string, error) {
			return h.fantasyService.GetPlayoffPicture(ctx)
		})
	case "odds":
		h.reply(&msg, "calculating Super Bowl odds", func() (string, error) {
			return h.fantasyService.GetSuperBowlOdds(ctx)
		})
	case "players":
		h.reply(&msg, "fetching top players", func() (string, error) {
			return h.fantasyService.GetTopPlayers(ctx, topPlayersShown)
		})
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, action string, report func() (string, error)) {
	text, err := report()
	if err != nil {
		msg.Text = fmt.Sprintf("Error %s: %v", action, err)
	} else {
		msg.Text = text
	}
}

func (h *Handler) handleRate(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /rate <team name>"
		return
	}
	h.reply(msg, "rating team", func() (string, error) {
		return h.fantasyService.GetTeamRating(ctx, args)
	})
}

func (h *Handler) handleTrade(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please describe the trade. Usage: /trade <players> for <players>"
		return
	}
	h.reply(msg, "analyzing trade", func() (string, error) {
		return h.fantasyService.GetTradeAnalysis(ctx, args)
	})
}

func (h *Handler) handlePredict(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	week := 0
	if args != "" {
		w, err := strconv.Atoi(args)
		if err != nil || w <= 0 {
			msg.Text = "Please provide a valid week number. Usage: /predict [week]"
			return
		}
		week = w
	}
	h.reply(msg, "predicting games", func() (string, error) {
		return h.fantasyService.GetPredictions(ctx, week)
	})
}
