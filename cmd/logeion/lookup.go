package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lexicon-tools/logeion/internal/dictionary"
	"github.com/lexicon-tools/logeion/internal/lookup"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON}
)

func newLookupCommand() *cobra.Command {
	format := OutputFormatText
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a Latin word from the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

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

			repository := dictionary.NewDBEntryRepository(db)
			lookupService := lookup.NewService(repository, latincyClient)

			result := lookupService.Lookup(cmd.Context(), word)
			if format == OutputFormatJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			printResult(result)
			return nil
		},
	}
	command.Flags().Var(&format, "output", fmt.Sprintf("Output format. Possible values are %v", allOutputFormats))
	return command
}

func printResult(result lookup.Result) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	switch result.Method {
	case lookup.MethodExactMatch:
		_, _ = green.Printf("Found %d entries for %q\n", len(result.Results), result.Word)
	case lookup.MethodLemmatized:
		_, _ = green.Printf("Found %d entries for %q via lemma %q\n", len(result.Results), result.Word, result.Lemma)
	case lookup.MethodNone:
		_, _ = yellow.Printf("No entries found for %q\n", result.Word)
		return
	case lookup.MethodError:
		_, _ = red.Printf("Lookup failed: %s\n", result.Error)
		return
	}

	for i, entry := range result.Results {
		fmt.Println()
		_, _ = bold.Printf("%d. %s\n", i+1, entry.Head())
		for _, column := range sortedColumns(entry) {
			if column == dictionary.HeadColumn {
				continue
			}
			fmt.Printf("   %s: %v\n", column, entry[column])
		}
	}
}

func sortedColumns(entry dictionary.Entry) []string {
	columns := make([]string, 0, len(entry))
	for column := range entry {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
