package internal

import (
	"fmt"
	"os"
	"party-lab/balancer"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/samber/lo"
)

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	HTTPHost             string        `env:"HTTP_HOST,default=0.0.0.0"`
	HTTPPort             int           `env:"HTTP_PORT,default=5000"`
	GRPCPort             int           `env:"GRPC_PORT,default=50051"`
	AuthSecret           string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=12h"`
	DefaultMinPartySize  int           `env:"DEFAULT_MIN_PARTY_SIZE,default=3"`
	DefaultMaxPartySize  int           `env:"DEFAULT_MAX_PARTY_SIZE,default=5"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ProcessStatsInterval time.Duration `env:"PROCESS_STATS_INTERVAL,default=15s"`
	CensorCharacter      string        `env:"CENSOR_CHARACTER,default=*"`
	BannedWords          string        `env:"BANNED_WORDS"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	FrontendPath         string        `env:"FRONTEND_PATH"`
}

// LoadConfig reads the configuration from the process environment and checks it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := c.PartyConfig().Validate(); err != nil {
		return fmt.Errorf("DEFAULT_MIN_PARTY_SIZE/DEFAULT_MAX_PARTY_SIZE: %w", err)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return err
	}
	if len(c.AuthSecret) < 16 {
		return fmt.Errorf("AUTH_SECRET must be at least 16 bytes long")
	}
	if c.AuthTokenDuration <= 0 || c.RestartInterval <= 0 || c.ProcessStatsInterval <= 0 {
		return fmt.Errorf("durations must be positive")
	}
	if c.FrontendPath != "" {
		if info, err := os.Stat(c.FrontendPath); err != nil || !info.IsDir() {
			return fmt.Errorf("FRONTEND_PATH must be a directory, got %q", c.FrontendPath)
		}
	}
	return nil
}

func (c Config) PartyConfig() balancer.Config {
	return balancer.Config{MinSize: c.DefaultMinPartySize, MaxSize: c.DefaultMaxPartySize}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.GRPCPort)
}

// BannedWordList splits BANNED_WORDS on commas, dropping blanks.
func (c Config) BannedWordList() []string {
	words := lo.Map(strings.Split(c.BannedWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Compact(words)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
