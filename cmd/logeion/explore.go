package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lexicon-tools/logeion/internal/dictionary"
)

func newExploreCommand() *cobra.Command {
	var tableName string
	var sampleSize int
	command := &cobra.Command{
		Use:   "explore",
		Short: "Show a dictionary table's schema and sample entries",
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

			ctx := cmd.Context()
			repository := dictionary.NewDBEntryRepository(db)

			tables, err := repository.Tables(ctx)
			if err != nil {
				return fmt.Errorf("repository.Tables() > %w", err)
			}
			schema, err := repository.Schema(ctx, tableName)
			if err != nil {
				return fmt.Errorf("repository.Schema() > %w", err)
			}
			count, err := repository.Count(ctx)
			if err != nil {
				return fmt.Errorf("repository.Count() > %w", err)
			}
			samples, err := repository.SampleTable(ctx, tableName, sampleSize)
			if err != nil {
				return fmt.Errorf("repository.SampleTable() > %w", err)
			}

			bold := color.New(color.Bold)
			_, _ = bold.Printf("Database: %s\n", cfg.Dictionary.Path)
			fmt.Printf("Tables: %s\n", strings.Join(tables, ", "))
			fmt.Printf("Entry count: %d\n", count)

			fmt.Printf("\nSchema of %s:\n", tableName)
			for _, column := range schema {
				primaryKey := ""
				if column.PrimaryKey > 0 {
					primaryKey = " (PRIMARY KEY)"
				}
				fmt.Printf("  - %s: %s%s\n", column.Name, column.Type, primaryKey)
			}

			fmt.Println("\nSample entries:")
			for i, entry := range samples {
				fmt.Printf("%d. %s\n", i+1, entry.Head())
				for _, column := range sortedColumns(entry) {
					if column == dictionary.HeadColumn {
						continue
					}
					fmt.Printf("   %s: %v\n", column, entry[column])
				}
			}
			return nil
		},
	}
	command.Flags().StringVar(&tableName, "table", "Entries", "Table to explore")
	command.Flags().IntVar(&sampleSize, "samples", 3, "Number of sample entries to show")
	return command
}
