// Package app wires storage, the task store and the profile store into the
// single state container the CLI and TUI share.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/profile"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/store/memstore"
	"github.com/idilsaglam/tasklist/internal/store/sqlitestore"
	"github.com/idilsaglam/tasklist/internal/tasks"
)

type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Storage store.Storage
	Tasks   *tasks.Store
	Profile *profile.Store
}

// OpenStorage opens the backend named by cfg.Backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (store.Storage, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return jsonstore.New(cfg.DataDir)
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, cfg.DataDir)
	case config.BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Open loads both stores from the configured backend.
func Open(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	st, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a, err := New(st, logger)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	a.Config = cfg
	a.Logger.Debug("storage opened", "backend", cfg.Backend, "dir", cfg.DataDir)
	return a, nil
}

// New builds the container over an already-open storage.
func New(st store.Storage, logger *log.Logger, opts ...tasks.Option) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts = append([]tasks.Option{tasks.WithLogger(logger)}, opts...)
	ts, err := tasks.Load(st, opts...)
	if err != nil {
		return nil, err
	}
	ps, err := profile.Load(st, logger)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:  config.Defaults(),
		Logger:  logger,
		Storage: st,
		Tasks:   ts,
		Profile: ps,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.Storage == nil {
		return nil
	}
	return a.Storage.Close()
}
