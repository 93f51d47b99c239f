// Package wire assembles the application: it opens the database, picks
// the seed source, and builds the roster service. The returned App owns
// the database handle; callers Close it when done.
package wire

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/example/roster/internal/adapters/seedjson"
	"github.com/example/roster/internal/adapters/sqlite"
	"github.com/example/roster/internal/app"
	"github.com/example/roster/internal/config"
	"github.com/example/roster/internal/db"
	"github.com/example/roster/internal/ports/primary"
	"github.com/example/roster/internal/ports/secondary"
)

// App bundles the wired application with its owned resources.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Store  *sqlite.UserStore
	Roster primary.RosterService
}

// New loads the configuration and assembles the application.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig assembles the application from an explicit config,
// allowing commands to apply flag overrides first.
func NewWithConfig(cfg *config.Config) (*App, error) {
	// Resolve the default path into the config so commands reporting
	// cfg.DBPath show where the data actually lives.
	if cfg.DBPath == "" {
		path, err := db.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	store := sqlite.NewUserStore(database)
	roster := app.NewRosterService(store, seedSource(cfg))

	return &App{
		Config: cfg,
		DB:     database,
		Store:  store,
		Roster: roster,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.DB.Close()
}

// seedSource picks the configured seed source. An explicit file wins
// over a URL; with neither set, the default users.json next to the
// database is used.
func seedSource(cfg *config.Config) secondary.SeedSource {
	if cfg.SeedFile != "" {
		return seedjson.NewFileSource(cfg.SeedFile)
	}
	if cfg.SeedURL != "" {
		return seedjson.NewHTTPSource(cfg.SeedURL)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return seedjson.NewFileSource("users.json")
	}
	return seedjson.NewFileSource(filepath.Join(home, ".roster", "users.json"))
}
