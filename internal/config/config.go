// Package config resolves the database connection string and loads CLI
// preferences. Only non-secret settings are kept in the XDG config file;
// the saved DSN lives in the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"quotemaster/dbctl/internal/dsn"
	dberrors "quotemaster/dbctl/internal/errors"
	"quotemaster/dbctl/internal/keychain"
	"quotemaster/dbctl/internal/xdg"
)

// DefaultDatabaseURL is the documented fallback when no connection string
// is configured anywhere. It carries no credentials; passwords come from
// the environment, the keychain, or the --dsn flag.
const DefaultDatabaseURL = "postgres://postgres@localhost:5432/quotemaster"

// Source names where the connection string was resolved from, for display.
type Source string

const (
	SourceFlag     Source = "--dsn flag"
	SourceEnvDBCTL Source = "DBCTL_DSN environment variable"
	SourceEnvURL   Source = "DATABASE_URL environment variable"
	SourceKeychain Source = "OS keychain (dbctl connect)"
	SourceDefault  Source = "built-in default"
)

// Config holds the resolved connection settings for one process run.
type Config struct {
	// DatabaseURL is the normalized connection string handed to the pool.
	DatabaseURL string
	// Info is the parsed form of the configured DSN, for display.
	Info *dsn.Info
	// Source records which layer supplied the DSN.
	Source Source
	// Echo enables statement logging on every query.
	Echo bool
	// Format is the preferred output format, "table" or "json".
	Format string
	// ConnectTimeout bounds the initial dial and ping.
	ConnectTimeout time.Duration
}

// envSettings mirrors the environment variables dbctl reads.
type envSettings struct {
	DBCTLDSN       string        `env:"DBCTL_DSN"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	Echo           bool          `env:"DATABASE_ECHO" default:"false"`
	ConnectTimeout time.Duration `env:"DBCTL_CONNECT_TIMEOUT" default:"5s"`
}

// keychainDSN loads the saved DSN; swapped out in tests.
var keychainDSN = func() (string, error) {
	manager, err := keychain.GetManager()
	if err != nil {
		return "", err
	}
	return manager.LoadDSN()
}

// Resolve determines the connection string for this run. Precedence:
// --dsn flag, DBCTL_DSN, DATABASE_URL, the keychain entry saved by
// connect, then the built-in default. The winning value is validated and
// normalized before use.
func Resolve(flagDSN string) (Config, error) {
	// A .env in the working directory participates like the real
	// environment; missing files are fine.
	_ = godotenv.Load()

	var es envSettings
	if err := env.Load(&es, nil); err != nil {
		return Config{}, dberrors.Wrap(dberrors.ConfigInvalid, "reading environment", err)
	}

	prefs, _ := LoadPrefs()

	raw, source := pickDSN(flagDSN, es)

	info, err := dsn.ParseInfo(raw)
	if err != nil {
		return Config{}, dberrors.Wrap(dberrors.ConfigInvalid, fmt.Sprintf("connection string from %s", source), err)
	}
	normalized, err := dsn.Normalize(info)
	if err != nil {
		return Config{}, dberrors.Wrap(dberrors.ConfigInvalid, fmt.Sprintf("connection string from %s", source), err)
	}

	return Config{
		DatabaseURL:    normalized,
		Info:           info,
		Source:         source,
		Echo:           es.Echo || prefs.Echo,
		Format:         prefs.Format,
		ConnectTimeout: es.ConnectTimeout,
	}, nil
}

func pickDSN(flagDSN string, es envSettings) (string, Source) {
	if flagDSN != "" {
		return flagDSN, SourceFlag
	}
	if es.DBCTLDSN != "" {
		return es.DBCTLDSN, SourceEnvDBCTL
	}
	if es.DatabaseURL != "" {
		return es.DatabaseURL, SourceEnvURL
	}
	if saved, err := keychainDSN(); err == nil && saved != "" {
		return saved, SourceKeychain
	}
	return DefaultDatabaseURL, SourceDefault
}

// Prefs holds non-sensitive CLI settings persisted in the XDG config dir.
type Prefs struct {
	Echo   bool   `json:"echo"`
	Format string `json:"format"`
}

func defaultPrefs() Prefs {
	return Prefs{Echo: false, Format: "table"}
}

// LoadPrefs reads preferences; a missing file returns defaults.
func LoadPrefs() (Prefs, error) {
	p, err := xdg.ConfigFile("config.json")
	if err != nil {
		return defaultPrefs(), err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultPrefs(), nil
		}
		return defaultPrefs(), err
	}
	c := defaultPrefs()
	if err := json.Unmarshal(data, &c); err != nil {
		return defaultPrefs(), err
	}
	return c, nil
}

// SavePrefs writes preferences with 0600 permissions.
func SavePrefs(c Prefs) error {
	p, err := xdg.ConfigFile("config.json")
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
