package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// Config holds process-level settings read from the environment.
type Config struct {
	// DBPath is the SQLite file, or db.MemoryPath for a throwaway board.
	DBPath string
	// LogUseCases sends one structured log line per board operation to stderr.
	LogUseCases bool
	// Today pins the calendar date when non-empty (YYYY-MM-DD).
	Today string
}

// DefaultConfig places the database under the user's home directory.
func DefaultConfig() Config {
	cfg := Config{DBPath: filepath.Join(".planboard", "planboard.db")}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".planboard", "planboard.db")
	}
	return cfg
}

// LoadConfig reads PLANBOARD_* variables over the defaults. Malformed
// values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PLANBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PLANBOARD_LOG"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PLANBOARD_TODAY"); v != "" {
		if _, _, _, ok := domain.ParseDate(v); ok {
			cfg.Today = v
		}
	}
	return cfg
}

// InMemory reports whether the board is discarded on exit.
func (c Config) InMemory() bool { return c.DBPath == db.MemoryPath }

// Clock returns the board clock. A pinned Today keeps the wall-clock time
// of day so freshly minted ids still advance.
func (c Config) Clock() func() time.Time {
	if c.Today == "" {
		return time.Now
	}
	year, month, day, _ := domain.ParseDate(c.Today)
	return func() time.Time {
		now := time.Now()
		return time.Date(year, month, day,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}
}
