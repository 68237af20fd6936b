// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the foodfinder command.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/wneessen/foodfinder/internal/config"
	"github.com/wneessen/foodfinder/internal/i18n"
	"github.com/wneessen/foodfinder/internal/logger"
	"github.com/wneessen/foodfinder/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize foodfinder", logger.Err(err))
		os.Exit(1)
	}

	log.Debug("starting foodfinder", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = serv.Run(ctx); err != nil {
		log.Error("failed to find food places", logger.Err(err))
		cancel()
		os.Exit(1)
	}
}

// loadConfig reads the config file at path. Without a path, the first config file found in the
// user's config directory is used, and without any file the defaults and environment apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var file string
		if path, file = findConfigFile(); file == "" {
			return config.New()
		}
		return config.NewFromFile(path, file)
	}
	return config.NewFromFile(filepath.Dir(path), filepath.Base(path))
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "foodfinder", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
