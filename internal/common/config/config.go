package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	// Upstream — внешний API бота (stats + eggchain ledger).
	Upstream struct {
		// APIURL может указывать как на корень API, так и прямо на stats
		// эндпоинт; см. StatsURL/APIRoot.
		APIURL  string        `env:"API_URL" envDefault:"https://web-production-11ef2.up.railway.app/api/stats"`
		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	}

	Redis struct {
		// Пустой Addr отключает кэш апстрим-ответов.
		Addr     string        `env:"REDIS_ADDR" envDefault:""`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		TTL      time.Duration `env:"REDIS_CACHE_TTL" envDefault:"60s"`
	}

	Telegram struct {
		BotToken    string `env:"BOT_TOKEN" envDefault:""`
		ChannelLink string `env:"TASK_CHANNEL_LINK" envDefault:"https://t.me/hatch_egg"`
		BotUsername string `env:"BOT_USERNAME" envDefault:"tohatchbot"`
	}

	App struct {
		StatsPollInterval   time.Duration `env:"STATS_POLL_INTERVAL" envDefault:"30s"`
		TaskRecheckDelay    time.Duration `env:"TASK_RECHECK_DELAY" envDefault:"2s"`
		WalletInitRetry     time.Duration `env:"WALLET_INIT_RETRY" envDefault:"500ms"`
		CounterAnimDuration time.Duration `env:"COUNTER_ANIM_DURATION" envDefault:"1s"`
		SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Игнорируем ошибку, если .env файл не найден
		// В production окружении переменные могут быть установлены напрямую
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}

// StatsURL возвращает эндпоинт статистики. Если API_URL указывает на корень
// API, добавляем /stats.
func (c *Config) StatsURL() string {
	u := strings.TrimRight(c.Upstream.APIURL, "/")
	if strings.HasSuffix(u, "/stats") {
		return u
	}
	return c.APIRoot() + "/stats"
}

// APIRoot возвращает корень API (…/api), из которого строятся остальные
// эндпоинты (eggchain explorer, check_subscription). Правила зеркалят
// деплой-конфигурацию: API_URL исторически указывал прямо на /api/stats.
func (c *Config) APIRoot() string {
	u := strings.TrimRight(c.Upstream.APIURL, "/")
	switch {
	case strings.HasSuffix(u, "/api/stats"):
		return strings.TrimSuffix(u, "/stats")
	case strings.HasSuffix(u, "/stats"):
		return strings.TrimSuffix(u, "/stats") + "/api"
	case strings.HasSuffix(u, "/api"):
		return u
	default:
		return u + "/api"
	}
}
