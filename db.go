package sqlight

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/asmartbear/sqlight/query"
	"github.com/asmartbear/sqlight/schema"
)

// DB is a mutex-serialized facade over a single SQLite connection. SQLite
// forbids concurrent use of one connection, so every method that touches
// the driver acquires db.mu for the full round trip — including row
// marshalling — before releasing it.
type DB struct {
	mu     sync.Mutex
	sqldb  *sql.DB
	schema *schema.Schema
	closed bool

	logger        *slog.Logger
	slowThreshold time.Duration
	slowHook      SlowQueryHook
	stats         QueryStats
}

// Open opens the SQLite database at path (a filesystem path, or ":memory:"
// for an in-process database) and binds it to s, which CreateTable and
// Insert use to look up table definitions. Query builders take their own
// schema (see query.New); the DB's schema is not consulted when rendering
// a Select.
func Open(path string, s *schema.Schema, opts ...Option) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlight: open %q: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)
	db := &DB{
		sqldb:         sqldb,
		schema:        s,
		logger:        slog.Default(),
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(db)
	}
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("sqlight: ping %q: %w", path, err)
	}
	return db, nil
}

// OpenDB wraps an already-open *sql.DB in a DB facade, bypassing Open's
// driver registration and Ping. This is mainly useful for tests that
// inject a sqlmock.Sqlmock-backed *sql.DB.
func OpenDB(sqldb *sql.DB, s *schema.Schema, opts ...Option) *DB {
	db := &DB{
		sqldb:         sqldb,
		schema:        s,
		logger:        slog.Default(),
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Close closes the underlying connection. Close is idempotent: calling it
// more than once, or concurrently with in-flight calls queued on the
// mutex, is safe — a repeated Close returns nil, and any other DB method
// called afterwards returns ErrClosed.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true
	return db.sqldb.Close()
}

// Stats returns a snapshot of the facade's cumulative query statistics.
func (db *DB) Stats() StatsSnapshot {
	return db.stats.Stats()
}

// runLocked serializes a single driver round trip under db.mu and records
// stats/logs/invokes the slow-query hook after releasing it, so a hook
// that calls back into db never deadlocks.
func (db *DB) runLocked(ctx context.Context, sqlText string, isQuery bool, fn func() error) error {
	db.mu.Lock()
	if db.closed {
		db.mu.Unlock()
		return ErrClosed
	}
	start := time.Now()
	err := fn()
	d := time.Since(start)
	db.mu.Unlock()

	slow := d > db.slowThreshold
	db.stats.record(d, isQuery, slow, err != nil)
	if err != nil {
		db.logger.ErrorContext(ctx, "sqlight: statement failed", "sql", sqlText, "err", err, "duration", d)
		return wrapDriverError(sqlText, err)
	}
	if slow {
		db.logger.WarnContext(ctx, "sqlight: slow query", "sql", sqlText, "duration", d)
		if db.slowHook != nil {
			db.slowHook(ctx, sqlText, d)
		}
	}
	return nil
}

func wrapDriverError(sqlText string, err error) error {
	if strings.Contains(err.Error(), "constraint failed") {
		return &ConstraintError{SQL: sqlText, Err: err}
	}
	return &DriverError{SQL: sqlText, Err: err}
}

// QueryAll runs sqlText and returns every resulting row as a column-name
// to value map.
func (db *DB) QueryAll(ctx context.Context, sqlText string) ([]map[string]any, error) {
	var out []map[string]any
	err := db.runLocked(ctx, sqlText, true, func() error {
		rows, err := db.sqldb.QueryContext(ctx, sqlText)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = scanRows(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryOne runs sqlText and returns its first row, or ok=false if it
// produced none.
func (db *DB) QueryOne(ctx context.Context, sqlText string) (row map[string]any, ok bool, err error) {
	rows, err := db.QueryAll(ctx, sqlText)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

// QueryCol runs sqlText and returns the values of column name across every
// resulting row, in row order.
func (db *DB) QueryCol(ctx context.Context, sqlText, name string) ([]any, error) {
	rows, err := db.QueryAll(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(rows))
	for i, row := range rows {
		out[i] = row[name]
	}
	return out, nil
}

// exec runs sqlText for its side effect and discards any result set.
func (db *DB) exec(ctx context.Context, sqlText string) error {
	return db.runLocked(ctx, sqlText, false, func() error {
		_, err := db.sqldb.ExecContext(ctx, sqlText)
		return err
	})
}

// CreateTable emits and runs CREATE TABLE for the named schema table.
func (db *DB) CreateTable(ctx context.Context, tableName string, ifNotExists bool) error {
	sqlText, err := db.schema.CreateTableSQL(tableName, ifNotExists)
	if err != nil {
		return err
	}
	return db.exec(ctx, sqlText)
}

// Insert emits and runs a multi-row INSERT for the named schema table. A
// nil or empty rows is a no-op.
func (db *DB) Insert(ctx context.Context, tableName string, rows []map[string]any) error {
	sqlText, err := db.schema.InsertRowsSQL(tableName, rows)
	if err != nil {
		return err
	}
	if sqlText == "" {
		return nil
	}
	return db.exec(ctx, sqlText)
}

// TableInfo describes one table as reported by sqlite_master.
type TableInfo struct {
	Name string
	SQL  string
}

// GetTables lists every user table currently defined in the connected
// database, as recorded by sqlite_master — not the tables declared in the
// bound schema, which may differ if the database predates it.
func (db *DB) GetTables(ctx context.Context) ([]TableInfo, error) {
	const sqlText = `SELECT name, sql FROM sqlite_master WHERE type='table' ORDER BY name`
	rows, err := db.QueryAll(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	out := make([]TableInfo, len(rows))
	for i, row := range rows {
		name, _ := row["name"].(string)
		sqlDef, _ := row["sql"].(string)
		out[i] = TableInfo{Name: name, SQL: sqlDef}
	}
	return out, nil
}

// SelectAll renders q and returns every resulting row.
func (db *DB) SelectAll(ctx context.Context, q *query.Select) ([]map[string]any, error) {
	sqlText, err := q.ToSQL()
	if err != nil {
		return nil, err
	}
	return db.QueryAll(ctx, sqlText)
}

// SelectOne renders q with its LIMIT forced to 1 (without mutating q) and
// returns its first row, or ok=false if it produced none.
func (db *DB) SelectOne(ctx context.Context, q *query.Select) (row map[string]any, ok bool, err error) {
	sqlText, err := q.ToSQLLimited(1)
	if err != nil {
		return nil, false, err
	}
	return db.QueryOne(ctx, sqlText)
}

func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
