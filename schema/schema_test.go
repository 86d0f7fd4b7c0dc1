package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmartbear/sqlight/schema"
	"github.com/asmartbear/sqlight/sqltype"
)

func userSchema() *schema.Schema {
	s := schema.New("test")
	s.Declare("user",
		schema.Column{Name: "id", Type: sqltype.INTEGER, PK: true},
		schema.Column{Name: "login", Type: sqltype.TEXT},
		schema.Column{Name: "apiKey", Type: sqltype.TEXT, Nullable: true},
		schema.Column{Name: "isAdmin", Type: sqltype.BOOLEAN},
	)
	return s
}

func TestDeclareAndLookup(t *testing.T) {
	t.Parallel()

	s := userSchema()
	tbl, ok := s.Table("user")
	require.True(t, ok)
	assert.Equal(t, "user", tbl.Name)

	col, ok := tbl.Column("login")
	require.True(t, ok)
	assert.Equal(t, sqltype.TEXT, col.Type)

	_, ok = tbl.Column("nope")
	assert.False(t, ok)

	_, ok = s.Table("nope")
	assert.False(t, ok)
}

func TestTablesOrderedByDeclaration(t *testing.T) {
	t.Parallel()

	s := schema.New("test")
	s.Declare("b", schema.Column{Name: "x", Type: sqltype.INTEGER})
	s.Declare("a", schema.Column{Name: "x", Type: sqltype.INTEGER})
	names := make([]string, 0, 2)
	for _, t := range s.Tables() {
		names = append(names, t.Name)
	}
	assert.Equal(t, []string{"b", "a"}, names)
}

// TestCreateTableSQL covers spec scenario 5.
func TestCreateTableSQL(t *testing.T) {
	t.Parallel()

	s := userSchema()
	sql, err := s.CreateTableSQL("user", true)
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS user ( id INTEGER NOT NULL PRIMARY KEY, login TEXT NOT NULL, apiKey TEXT, isAdmin BOOLEAN NOT NULL )`,
		sql)
}

func TestCreateTableSQLMissingTable(t *testing.T) {
	t.Parallel()

	s := userSchema()
	_, err := s.CreateTableSQL("nope", false)
	require.Error(t, err)
	var missing *schema.MissingTableError
	assert.ErrorAs(t, err, &missing)
}

// TestInsertRowsSQL covers spec scenario 6.
func TestInsertRowsSQL(t *testing.T) {
	t.Parallel()

	s := userSchema()
	sql, err := s.InsertRowsSQL("user", []map[string]any{
		{"id": 123, "login": "myname", "apiKey": nil, "isAdmin": true},
		{"id": 321, "login": "yourname", "apiKey": nil, "isAdmin": false},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO user (id,login,apiKey,isAdmin) VALUES\n(123,'myname',NULL,1),\n(321,'yourname',NULL,0)",
		sql)
}

func TestInsertRowsSQLEmpty(t *testing.T) {
	t.Parallel()

	s := userSchema()
	sql, err := s.InsertRowsSQL("user", nil)
	require.NoError(t, err)
	assert.Equal(t, "", sql)
}

func TestInsertRowsSQLMissingColumnRendersNull(t *testing.T) {
	t.Parallel()

	s := userSchema()
	sql, err := s.InsertRowsSQL("user", []map[string]any{
		{"id": 1, "login": "a", "isAdmin": false},
	})
	require.NoError(t, err)
	assert.Contains(t, sql, "(1,'a',NULL,0)")
}

func TestInvalidIdentifierRejected(t *testing.T) {
	t.Parallel()

	s := schema.New("test")
	s.Declare("user; DROP TABLE user", schema.Column{Name: "id", Type: sqltype.INTEGER})
	_, err := s.CreateTableSQL("user; DROP TABLE user", false)
	require.Error(t, err)
	var invalid *schema.InvalidIdentifierError
	assert.ErrorAs(t, err, &invalid)
}
