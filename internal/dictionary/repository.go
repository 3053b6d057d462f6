package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// ErrUnknownTable is returned by the table-addressed operations when the
// named table does not exist in the dictionary file.
var ErrUnknownTable = errors.New("unknown table")

// ColumnInfo describes one column of a table, as reported by SQLite's
// table_info pragma.
type ColumnInfo struct {
	CID        int     `db:"cid" json:"cid"`
	Name       string  `db:"name" json:"name"`
	Type       string  `db:"type" json:"type"`
	NotNull    int     `db:"notnull" json:"notnull"`
	Default    *string `db:"dflt_value" json:"default,omitempty"`
	PrimaryKey int     `db:"pk" json:"primary_key"`
}

// EntryRepository defines read operations over the dictionary relation.
type EntryRepository interface {
	// FindByHead returns all entries whose headword equals head exactly.
	// The match is case-sensitive and performs no normalization; the
	// dictionary file stores the forms it stores.
	FindByHead(ctx context.Context, head string) ([]Entry, error)
	Count(ctx context.Context) (int64, error)
	Tables(ctx context.Context) ([]string, error)
	// Schema returns the column layout of table, or ErrUnknownTable.
	Schema(ctx context.Context, table string) ([]ColumnInfo, error)
	// SampleTable returns up to limit arbitrary rows of table, or
	// ErrUnknownTable.
	SampleTable(ctx context.Context, table string, limit int) ([]Entry, error)
}

// DBEntryRepository implements EntryRepository using SQLite.
type DBEntryRepository struct {
	db *sqlx.DB
}

func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindByHead queries the Entries relation with a bound parameter. The
// word value is never interpolated into the SQL text.
func (r *DBEntryRepository) FindByHead(ctx context.Context, head string) ([]Entry, error) {
	return r.selectEntries(ctx, "SELECT * FROM Entries WHERE head = ?", head)
}

// Count returns the number of rows in the Entries relation.
func (r *DBEntryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM Entries"); err != nil {
		return 0, fmt.Errorf("db.GetContext(count entries) > %w", err)
	}
	return count, nil
}

// Tables lists the tables in the dictionary file.
func (r *DBEntryRepository) Tables(ctx context.Context) ([]string, error) {
	var tables []string
	if err := r.db.SelectContext(ctx, &tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sqlite_master) > %w", err)
	}
	return tables, nil
}

// Schema returns the column layout of table in declaration order.
func (r *DBEntryRepository) Schema(ctx context.Context, table string) ([]ColumnInfo, error) {
	if err := r.checkTable(ctx, table); err != nil {
		return nil, err
	}

	var columns []ColumnInfo
	if err := r.db.SelectContext(ctx, &columns,
		`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`,
		table); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pragma_table_info) > %w", err)
	}
	return columns, nil
}

// SampleTable returns up to limit arbitrary rows of table.
func (r *DBEntryRepository) SampleTable(ctx context.Context, table string, limit int) ([]Entry, error) {
	// A table name cannot be a bound parameter, so it is checked against
	// sqlite_master before being quoted into the statement.
	if err := r.checkTable(ctx, table); err != nil {
		return nil, err
	}
	quoted := `"` + strings.ReplaceAll(table, `"`, `""`) + `"`
	return r.selectEntries(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT ?", quoted), limit)
}

func (r *DBEntryRepository) checkTable(ctx context.Context, table string) error {
	var count int64
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table); err != nil {
		return fmt.Errorf("db.GetContext(sqlite_master) > %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

func (r *DBEntryRepository) selectEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db.QueryxContext(entries) > %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("rows.MapScan() > %w", err)
		}
		entries = append(entries, normalizeRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err() > %w", err)
	}
	return entries, nil
}

// normalizeRow converts []byte column values to strings so entries
// serialize as JSON text instead of base64.
func normalizeRow(row map[string]any) Entry {
	for column, value := range row {
		if b, ok := value.([]byte); ok {
			row[column] = string(b)
		}
	}
	return Entry(row)
}
