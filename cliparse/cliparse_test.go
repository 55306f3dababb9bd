// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danielhkuo/poll-tracker/models"
)

// noEnvFile keeps tests from picking up a stray .env in the package directory
var noEnvFile = []string{"--env-file", ""}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Seats != DefaultSeats {
		t.Errorf("expected seats %d, got %d", DefaultSeats, cfg.Seats)
	}
	if cfg.NumPolls != DefaultNumPolls {
		t.Errorf("expected %d polls, got %d", DefaultNumPolls, cfg.NumPolls)
	}
	if len(cfg.Parties) != 7 {
		t.Errorf("expected 7 default parties, got %v", cfg.Parties)
	}
	if cfg.MaxStars != DefaultMaxStars {
		t.Errorf("expected max stars %d, got %d", DefaultMaxStars, cfg.MaxStars)
	}
	if cfg.Seed != nil {
		t.Errorf("expected no seed, got %d", *cfg.Seed)
	}
	if cfg.Metric != models.MetricSeats {
		t.Errorf("expected seats metric, got %v", cfg.Metric)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEATS", "100")
	t.Setenv("PARTIES", "A, B,,a")
	t.Setenv("NUM_POLLS", "4")
	t.Setenv("SEED", "42")
	t.Setenv("METRIC", " Votes")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Seats != 100 {
		t.Errorf("expected 100 seats, got %d", cfg.Seats)
	}
	if !reflect.DeepEqual(cfg.Parties, []string{"A", "B"}) {
		t.Errorf("expected parties [A B], got %v", cfg.Parties)
	}
	if cfg.NumPolls != 4 {
		t.Errorf("expected 4 polls, got %d", cfg.NumPolls)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Seed)
	}
	if cfg.Metric != models.MetricVotes {
		t.Errorf("expected votes metric, got %v", cfg.Metric)
	}
	if cfg.AdminKeySalt != "test-salt" {
		t.Errorf("expected admin salt from env, got %q", cfg.AdminKeySalt)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEATS", "100")

	cfg, err := ParseFlags([]string{"-p", "8080", "--seats", "50", "--parties", "X,Y", "--env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Seats != 50 {
		t.Errorf("CLI should override env: expected 50, got %d", cfg.Seats)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SEATS=77\nNUM_POLLS=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets variables directly; register them so they are restored
	t.Setenv("SEATS", "")
	os.Unsetenv("SEATS")
	t.Setenv("NUM_POLLS", "9")

	cfg, err := ParseFlags([]string{"--env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seats != 77 {
		t.Errorf("expected seats from env file, got %d", cfg.Seats)
	}
	// Real environment wins over the file
	if cfg.NumPolls != 9 {
		t.Errorf("expected env to win over env file, got %d", cfg.NumPolls)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero seats", []string{"--seats", "0"}},
		{"too many seats", []string{"--seats", "1000001"}},
		{"negative polls", []string{"-n", "-1"}},
		{"too many polls", []string{"-n", "1001"}},
		{"blank parties", []string{"--parties", " , "}},
		{"bad metric", []string{"--by", "colour"}},
		{"zero stars", []string{"--max-stars", "0"}},
		{"bad port", []string{"-p", "70000"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"unknown flag", []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(append(tt.args, noEnvFile...)); err == nil {
				t.Errorf("ParseFlags(%v) expected error", tt.args)
			}
		})
	}
}

func TestValidateServe(t *testing.T) {
	if err := (Config{}).ValidateServe(); err == nil {
		t.Error("expected error without admin salt")
	}
	if err := (Config{AdminKeySalt: "s"}).ValidateServe(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseFlags_SeedZeroIsKept(t *testing.T) {
	cfg, err := ParseFlags([]string{"--seed", "0", "--env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == nil {
		t.Fatal("expected seed to be set")
	}
	if *cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", *cfg.Seed)
	}
}

func TestParseFlags_MaxSeats(t *testing.T) {
	cfg, err := ParseFlags([]string{"--seats", "1000000", "--env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seats != models.MaxSeats {
		t.Errorf("expected %d seats, got %d", models.MaxSeats, cfg.Seats)
	}
}
