package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/clevercash/internal/config"
	"github.com/hance08/clevercash/internal/log"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/store"
)

const dbFileName = "clevercash.db"

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *log.Logger
	DBPath  string
}

// NewApp initialize logging, database and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := log.New(log.Config{Level: level, Component: log.ComponentApp, Writer: os.Stderr})
	log.SetDefault(logger)

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database ready", "path", dbPath)

	svc := service.NewService(dbStore, cfg, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("error closing database", log.FieldError, err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath expands a leading ~ and falls back to the app data
// directory when no path is configured.
func ResolveDBPath(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, dbFileName), nil
	}
	return ExpandPath(raw)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".clevercash"), nil
	}

	return filepath.Join(configDir, "clevercash"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
