package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lexicon-tools/logeion/internal/dictionary"
	"github.com/lexicon-tools/logeion/internal/lookup"
	"github.com/lexicon-tools/logeion/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dictionary lookup tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			latincyClient := newLatincyClient(cfg)
			defer func() {
				_ = latincyClient.Close()
			}()

			// A missing model is a startup failure: the server must not
			// accept requests it can only half answer.
			if err := latincyClient.WaitReady(cmd.Context()); err != nil {
				return fmt.Errorf("latincyClient.WaitReady() > %w", err)
			}
			slog.Default().Info("LatinCy model ready", "model", latincyClient.Model())

			repository := dictionary.NewDBEntryRepository(db)
			lookupService := lookup.NewService(repository, latincyClient)

			slog.Default().Info("Starting MCP server on stdio",
				"database", cfg.Dictionary.Path)
			return server.New(lookupService, repository, latincyClient, cfg.Dictionary.Path).ServeStdio()
		},
	}
}
