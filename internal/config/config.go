package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	Server      Server
	Simulation  Simulation
	Scheduler   Scheduler
}

// TelegramBot is optional; the bot and scheduled posts are disabled when
// Token is empty.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type ESPNAPI struct {
	Season      int           `envconfig:"SEASON" default:"2025"`
	UseLiveData bool          `envconfig:"USE_LIVE_DATA" default:"false"`
	SiteURL     string        `envconfig:"ESPN_SITE_URL" default:"https://site.api.espn.com/apis"`
	FantasyURL  string        `envconfig:"ESPN_FANTASY_URL" default:"https://fantasy.espn.com/apis/v3/games/ffl"`
	Timeout     time.Duration `envconfig:"ESPN_TIMEOUT" default:"10s"`
}

type Server struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type Simulation struct {
	Runs        int           `envconfig:"SIMULATIONS" default:"1000"`
	Seed        int64         `envconfig:"SIMULATION_SEED" default:"0"`
	CurrentWeek int           `envconfig:"CURRENT_WEEK" default:"10"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

type Scheduler struct {
	Timezone string `envconfig:"SCHEDULER_TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
