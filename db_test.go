package sqlight_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmartbear/sqlight"
	"github.com/asmartbear/sqlight/schema"
	"github.com/asmartbear/sqlight/sqltype"
)

func testSchema() *schema.Schema {
	s := schema.New("test")
	s.Declare("user",
		schema.Column{Name: "id", Type: sqltype.INTEGER, PK: true},
		schema.Column{Name: "login", Type: sqltype.TEXT},
		schema.Column{Name: "apiKey", Type: sqltype.TEXT, Nullable: true},
	)
	return s
}

func TestDBQueryAll(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := sqlight.OpenDB(sqldb, testSchema())

	mock.ExpectQuery(`SELECT id, login FROM user`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login"}).
			AddRow(int64(1), "alice").
			AddRow(int64(2), "bob"))

	rows, err := db.QueryAll(context.Background(), "SELECT id, login FROM user")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0]["login"])
	assert.Equal(t, "bob", rows[1]["login"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQueryOne(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		sqldb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqldb.Close()

		db := sqlight.OpenDB(sqldb, testSchema())
		mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))

		row, ok, err := db.QueryOne(context.Background(), "SELECT 1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1), row["1"])
	})

	t.Run("not found", func(t *testing.T) {
		sqldb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqldb.Close()

		db := sqlight.OpenDB(sqldb, testSchema())
		mock.ExpectQuery(`SELECT 1 WHERE 0`).WillReturnRows(sqlmock.NewRows([]string{"1"}))

		_, ok, err := db.QueryOne(context.Background(), "SELECT 1 WHERE 0")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDBQueryCol(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := sqlight.OpenDB(sqldb, testSchema())
	mock.ExpectQuery(`SELECT login FROM user`).
		WillReturnRows(sqlmock.NewRows([]string{"login"}).AddRow("alice").AddRow("bob"))

	col, err := db.QueryCol(context.Background(), "SELECT login FROM user", "login")
	require.NoError(t, err)
	assert.Equal(t, []any{"alice", "bob"}, col)
}

func TestDBCreateTable(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := sqlight.OpenDB(sqldb, testSchema())
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS user`).WillReturnResult(sqlmock.NewResult(0, 0))

	err = db.CreateTable(context.Background(), "user", true)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBInsert(t *testing.T) {
	t.Parallel()

	t.Run("rows", func(t *testing.T) {
		sqldb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqldb.Close()

		db := sqlight.OpenDB(sqldb, testSchema())
		mock.ExpectExec(`INSERT INTO user`).WillReturnResult(sqlmock.NewResult(1, 1))

		err = db.Insert(context.Background(), "user", []map[string]any{
			{"id": int64(1), "login": "alice"},
		})
		require.NoError(t, err)
	})

	t.Run("no rows is a no-op", func(t *testing.T) {
		sqldb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqldb.Close()

		db := sqlight.OpenDB(sqldb, testSchema())
		err = db.Insert(context.Background(), "user", nil)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBConstraintError(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := sqlight.OpenDB(sqldb, testSchema())
	mock.ExpectExec(`INSERT INTO user`).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: user.login (1555)"))

	err = db.Insert(context.Background(), "user", []map[string]any{{"id": int64(1), "login": "alice"}})
	require.Error(t, err)
	assert.True(t, sqlight.IsConstraintError(err))
}

func TestDBClosed(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()

	db := sqlight.OpenDB(sqldb, testSchema())
	require.NoError(t, db.Close())

	_, err = db.QueryAll(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, sqlight.ErrClosed)

	// Closing twice is a no-op, not an error.
	assert.NoError(t, db.Close())
}

func TestDBGetTables(t *testing.T) {
	t.Parallel()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := sqlight.OpenDB(sqldb, testSchema())
	mock.ExpectQuery(`SELECT name, sql FROM sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "sql"}).
			AddRow("user", "CREATE TABLE user ( id INTEGER NOT NULL PRIMARY KEY )"))

	tables, err := db.GetTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "user", tables[0].Name)
}
