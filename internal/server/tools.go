package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lexicon-tools/logeion/internal/dictionary"
	"github.com/lexicon-tools/logeion/internal/lemma"
	"github.com/lexicon-tools/logeion/internal/lookup"
)

var toolNames = []string{"get_word", "get_server_info", "explore_database"}

const (
	defaultExploreTable = "Entries"
	defaultExploreLimit = 5
)

func newGetWordTool() mcp.Tool {
	return mcp.NewTool("get_word",
		mcp.WithDescription("Look up a Latin word in the Logeion dictionary. "+
			"Matches the word as given first; when no entry exists, the word is "+
			"lemmatized and its dictionary base form is looked up instead."),
		mcp.WithString("word",
			mcp.Required(),
			mcp.Description("The Latin word to look up, e.g. \"amare\" or an inflected form like \"amo\"."),
		),
	)
}

func newGetServerInfoTool() mcp.Tool {
	return mcp.NewTool("get_server_info",
		mcp.WithDescription("Report the status of the dictionary database and the lemmatization model."),
	)
}

func newExploreDatabaseTool() mcp.Tool {
	return mcp.NewTool("explore_database",
		mcp.WithDescription("Explore the dictionary database: table schema, column names and sample rows."),
		mcp.WithString("table_name",
			mcp.Description("Table to explore. Defaults to \"Entries\"."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of sample rows to return. Defaults to 5."),
		),
	)
}

// ServerInfo is the response of the get_server_info tool.
type ServerInfo struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Description      string   `json:"description"`
	DatabasePath     string   `json:"database_path"`
	DatabaseStatus   string   `json:"database_status"`
	EntryCount       int64    `json:"entry_count,omitempty"`
	LemmatizerModel  string   `json:"lemmatizer_model"`
	LemmatizerStatus string   `json:"lemmatizer_status"`
	ToolsAvailable   []string `json:"tools_available"`
}

// ExploreResult is the response of the explore_database tool. Unknown
// tables are reported as a structured failure, not a tool error.
type ExploreResult struct {
	Success     bool                    `json:"success"`
	Table       string                  `json:"table"`
	Schema      []dictionary.ColumnInfo `json:"schema,omitempty"`
	ColumnNames []string                `json:"column_names,omitempty"`
	SampleData  []dictionary.Entry      `json:"sample_data,omitempty"`
	TotalRows   int                     `json:"total_rows"`
	Error       string                  `json:"error,omitempty"`
}

// ToolHandler holds the shared services the tool handlers run against.
type ToolHandler struct {
	lookupService *lookup.Service
	entries       dictionary.EntryRepository
	lemmatizer    lemma.Lemmatizer
	databasePath  string
}

func NewToolHandler(
	lookupService *lookup.Service,
	entries dictionary.EntryRepository,
	lemmatizer lemma.Lemmatizer,
	databasePath string,
) *ToolHandler {
	return &ToolHandler{
		lookupService: lookupService,
		entries:       entries,
		lemmatizer:    lemmatizer,
		databasePath:  databasePath,
	}
}

// GetWord handles the get_word tool. Lookup never fails past its own
// boundary, so the only tool-level error is a missing argument.
func (h *ToolHandler) GetWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, err := request.RequireString("word")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	result := h.lookupService.Lookup(ctx, word)
	slog.Default().Debug("get_word",
		"word", result.Word,
		"method", result.Method,
		"matches", len(result.Results))

	return jsonToolResult(result)
}

// GetServerInfo handles the get_server_info tool.
func (h *ToolHandler) GetServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := ServerInfo{
		Name:             Name,
		Version:          Version,
		Description:      Description,
		DatabasePath:     h.databasePath,
		DatabaseStatus:   "connected",
		LemmatizerModel:  h.lemmatizer.Model(),
		LemmatizerStatus: "loaded",
		ToolsAvailable:   toolNames,
	}

	count, err := h.entries.Count(ctx)
	if err != nil {
		info.DatabaseStatus = fmt.Sprintf("error: %v", err)
	} else {
		info.EntryCount = count
	}

	if err := h.lemmatizer.Ready(ctx); err != nil {
		info.LemmatizerStatus = fmt.Sprintf("error: %v", err)
	}

	return jsonToolResult(info)
}

// ExploreDatabase handles the explore_database tool. Like get_word, all
// failures come back as a structured result.
func (h *ToolHandler) ExploreDatabase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := request.GetString("table_name", defaultExploreTable)
	limit := request.GetInt("limit", defaultExploreLimit)

	schema, err := h.entries.Schema(ctx, table)
	if err != nil {
		return jsonToolResult(ExploreResult{
			Success: false,
			Table:   table,
			Error:   err.Error(),
		})
	}

	sample, err := h.entries.SampleTable(ctx, table, limit)
	if err != nil {
		return jsonToolResult(ExploreResult{
			Success: false,
			Table:   table,
			Error:   err.Error(),
		})
	}

	columnNames := make([]string, 0, len(schema))
	for _, column := range schema {
		columnNames = append(columnNames, column.Name)
	}

	return jsonToolResult(ExploreResult{
		Success:     true,
		Table:       table,
		Schema:      schema,
		ColumnNames: columnNames,
		SampleData:  sample,
		TotalRows:   len(sample),
	})
}

func jsonToolResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent() > %w", err)
	}
	return mcp.NewToolResultText(string(body)), nil
}
