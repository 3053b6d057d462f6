package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lexicon-tools/logeion/internal/config"
	"github.com/lexicon-tools/logeion/internal/database"
	"github.com/lexicon-tools/logeion/internal/lemma"
	"github.com/lexicon-tools/logeion/internal/lemma/latincy"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary database %s: %w", cfg.Dictionary.Path, err)
	}
	return db, nil
}

func newLatincyClient(cfg *config.Config) *latincy.Client {
	return latincy.NewClient(
		cfg.Lemmatizer.BaseURL,
		cfg.Lemmatizer.Model,
		time.Duration(cfg.Lemmatizer.TimeoutSeconds)*time.Second,
		lemma.DefaultReadyAttempts,
	)
}
