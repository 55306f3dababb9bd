package cliparse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danielhkuo/poll-tracker/models"
)

// Defaults
const (
	DefaultPort     = 3318
	DefaultSeats    = 338
	DefaultNumPolls = 3
	DefaultMaxStars = 18
	DefaultMetric   = models.MetricSeats
	DefaultEnvFile  = ".env"
)

type Config struct {
	Port         int
	Seats        int
	Parties      []string
	NumPolls     int
	Seed         *uint64 // nil picks a time based seed
	MaxStars     int
	Metric       string // models.MetricSeats or models.MetricVotes
	AdminKeySalt string
	LogLevel     slog.Level
}

// envKeys maps flag names to the environment variables they fall back to
var envKeys = map[string]string{
	"port":       "PORT",
	"seats":      "SEATS",
	"parties":    "PARTIES",
	"polls":      "NUM_POLLS",
	"seed":       "SEED",
	"max-stars":  "MAX_STARS",
	"by":         "METRIC",
	"admin-salt": "ADMIN_KEY_SALT",
	"log-level":  "LOG_LEVEL",
}

// ParseFlags reads configuration from args, then the environment (including
// an optional .env file), then defaults. Flags win over the environment.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("poll-tracker", pflag.ContinueOnError)

	// Election
	fs.IntP("seats", "s", DefaultSeats, "Seats available in the election")
	fs.String("parties", strings.Join(models.DefaultPartyNames, ","), "Comma separated party names")
	fs.IntP("polls", "n", DefaultNumPolls, "Number of polls to track")
	fs.Uint64("seed", 0, "Random seed (unset picks one from the clock)")

	// Output
	fs.Int("max-stars", DefaultMaxStars, "Width of each bar in stars")
	fs.StringP("by", "b", DefaultMetric, "Visualize by seats or votes")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")

	// Server (secrets prefer env variables, but allow CLI for dev)
	fs.IntP("port", "p", DefaultPort, "Server port")
	fs.String("admin-salt", "", "Admin key salt (prefer env)")

	fs.String("env-file", DefaultEnvFile, "Environment file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	envFile, _ := fs.GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return buildConfig(v)
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	// Existing environment variables are not overridden
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	slog.Debug("loaded env file", "path", path)
	return nil
}

func buildConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:         v.GetInt("port"),
		Seats:        v.GetInt("seats"),
		Parties:      models.SplitNames(v.GetString("parties")),
		NumPolls:     v.GetInt("polls"),
		MaxStars:     v.GetInt("max-stars"),
		Metric:       strings.ToLower(strings.TrimSpace(v.GetString("by"))),
		AdminKeySalt: v.GetString("admin-salt"),
	}
	if v.IsSet("seed") {
		seed := v.GetUint64("seed")
		cfg.Seed = &seed
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.Seats < 1 || cfg.Seats > models.MaxSeats {
		return Config{}, fmt.Errorf("seats must be between 1 and %d", models.MaxSeats)
	}
	if cfg.NumPolls < 1 || cfg.NumPolls > models.MaxPolls {
		return Config{}, fmt.Errorf("number of polls must be between 1 and %d", models.MaxPolls)
	}
	if len(cfg.Parties) == 0 {
		return Config{}, errors.New("at least one party name required (use --parties or PARTIES env)")
	}
	if cfg.MaxStars < 1 {
		return Config{}, errors.New("max stars must be at least 1")
	}

	if cfg.Metric != models.MetricSeats && cfg.Metric != models.MetricVotes {
		return Config{}, fmt.Errorf("unknown metric %q, use seats or votes", v.GetString("by"))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

// ValidateServe checks the settings only the HTTP server needs.
func (c Config) ValidateServe() error {
	if c.AdminKeySalt == "" {
		return errors.New("ADMIN_KEY_SALT required")
	}
	return nil
}
