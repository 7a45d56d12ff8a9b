package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address          string        `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	Database         string        `env:"DATABASE_URI"`
	JWTSecret        string        `env:"JWT_SECRET"`
	TokenTTL         time.Duration `env:"TOKEN_TTL"          envDefault:"15m"`
	LogLvl           string        `env:"LOG_LVL"            envDefault:"info"`
	RedisAddress     string        `env:"REDIS_ADDRESS"`
	OddsCacheTTL     time.Duration `env:"ODDS_CACHE_TTL"     envDefault:"30s"`
	KafkaBrokers     string        `env:"KAFKA_BROKERS"`
	KafkaBetTopic    string        `env:"KAFKA_BET_TOPIC"    envDefault:"bet_placed"`
	MetricsAddress   string        `env:"METRICS_ADDRESS"    envDefault:"localhost:9090"`
	OddsFeedURL      string        `env:"ODDS_FEED_URL"`
	OddsFeedInterval time.Duration `env:"ODDS_FEED_INTERVAL" envDefault:"1m"`
}

func New() *Config {
	cfg := &Config{}

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret used to sign session tokens")
	flag.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "session token lifetime")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "redis address for the odds cache")
	flag.StringVar(&cfg.KafkaBrokers, "k", cfg.KafkaBrokers, "kafka brokers for bet events")
	flag.StringVar(&cfg.MetricsAddress, "m", cfg.MetricsAddress, "address of the metrics server")
	flag.StringVar(&cfg.OddsFeedURL, "f", cfg.OddsFeedURL, "url of the published odds feed")
	flag.Parse()

	if cfg.OddsFeedURL != "" && !strings.HasPrefix(cfg.OddsFeedURL, "http://") && !strings.HasPrefix(cfg.OddsFeedURL, "https://") {
		cfg.OddsFeedURL = "http://" + cfg.OddsFeedURL
	}

	return cfg
}

// Missing lists the required settings that are not set. Without them the
// application runs in not-configured mode.
func (c *Config) Missing() []string {
	var missing []string
	if c.Database == "" {
		missing = append(missing, "DATABASE_URI")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	return missing
}

func (c *Config) Configured() bool {
	return len(c.Missing()) == 0
}
