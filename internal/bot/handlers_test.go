package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/omarshaarawi/gridiron/internal/models"
	"github.com/omarshaarawi/gridiron/internal/random"
	"github.com/omarshaarawi/gridiron/internal/repository/memory"
	"github.com/omarshaarawi/gridiron/internal/sample"
	"github.com/omarshaarawi/gridiron/internal/service"
)

type sampleLoader struct{}

func (sampleLoader) LoadSnapshot(context.Context) *models.Snapshot {
	return sample.Snapshot()
}

func command(text string) tgbotapi.Update {
	cmd, _, _ := strings.Cut(text, " ")
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 42},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(cmd)},
			},
		},
	}
}

func newTestHandler() *Handler {
	svc := service.NewFantasyService(sampleLoader{}, memory.NewRepository(), random.New(1), 20, time.Hour)
	return NewHandler(svc)
}

func TestHandleCommand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/help", "/trade <players> for <players>"},
		{"/ratings", "*Power Rankings*"},
		{"/rate", "Usage: /rate <team name>"},
		{"/rate titans", "*Touchdown Titans*"},
		{"/rate qqq", "Error rating team: team not found"},
		{"/compare", "Usage: /compare"},
		{"/compare legends vs titans", "*Team Comparison*"},
		{"/compare legends vs legends", "Error comparing teams: a team cannot be compared with itself"},
		{"/trade", "Usage: /trade"},
		{"/trade Mahomes for Josh Allen", "*Trade Analysis*"},
		{"/trade Mahomes", "Error analyzing trade: invalid player selection"},
		{"/predict", "*Week 10 Predictions*"},
		{"/predict 10", "Remaining SoS: BUF"},
		{"/predict 11", "*Week 11 Predictions*"},
		{"/predict soon", "Please provide a valid week number"},
		{"/standings", "*AFC East*"},
		{"/playoffs", "Projected Champion"},
		{"/odds", "*Super Bowl Odds*"},
		{"/players", "*Top Players by Trade Value*"},
		{"/whohas Mahomes", "Unknown command"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			msg := h.HandleCommand(context.Background(), command(tt.text))

			assert.Equal(t, int64(42), msg.ChatID)
			assert.Equal(t, "Markdown", msg.ParseMode)
			assert.Contains(t, msg.Text, tt.want)
		})
	}
}
