package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"library-catalog/library"
)

// config holds CLI defaults. Values come from the environment, optionally
// seeded from a .env file in the working directory, and flags override them.
type config struct {
	Member   string
	NoSeed   bool
	LogLevel string
}

// loadConfig reads LIBRARY_* variables. A missing .env file is not an error.
func loadConfig(envFiles ...string) (config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := config{
		Member:   library.DefaultMemberName,
		LogLevel: "warn",
	}
	if v := os.Getenv("LIBRARY_MEMBER"); v != "" {
		cfg.Member = v
	}
	if v := os.Getenv("LIBRARY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LIBRARY_NO_SEED"); v != "" {
		noSeed, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("LIBRARY_NO_SEED: %w", err)
		}
		cfg.NoSeed = noSeed
	}
	return cfg, nil
}

// newLogger builds a text logger at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newSession builds the manager and resolves the member the shell acts as.
func newSession(cfg config, logger *slog.Logger) (*library.LibraryManager, library.Member, error) {
	mgr := library.NewLibraryManager(library.WithLogger(logger))
	if !cfg.NoSeed {
		m, err := library.Seed(mgr, cfg.Member)
		if err != nil {
			return nil, library.Member{}, err
		}
		return mgr, m, nil
	}

	m, _ := mgr.AddMember(cfg.Member)
	if err := mgr.SetDefaultMember(m.ID); err != nil {
		return nil, library.Member{}, err
	}
	return mgr, m, nil
}
