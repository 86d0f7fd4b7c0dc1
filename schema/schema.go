// Package schema declares tables and columns and emits the CREATE TABLE and
// INSERT SQL sqlight's query layer doesn't otherwise need to know about.
// Schemas are immutable once constructed: declare every table up front.
package schema

import (
	"fmt"
	"strings"

	"github.com/asmartbear/sqlight/expr"
	"github.com/asmartbear/sqlight/internal/sqlitedialect"
	"github.com/asmartbear/sqlight/sqltype"
)

// Column is a single declared table column. Nullable defaults to false; PK
// (primary key) defaults to false.
type Column struct {
	Name     string
	Type     sqltype.Type
	Nullable bool
	PK       bool
}

// Table is a named, ordered set of columns. Column order is significant: it
// drives both CREATE TABLE layout and INSERT column/value ordering.
type Table struct {
	Name    string
	Columns []Column
}

// Column looks up a declared column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// MissingTableError is returned when an operation names a table the schema
// doesn't declare.
type MissingTableError struct {
	Table string
}

// Error implements error.
func (e *MissingTableError) Error() string {
	return fmt.Sprintf("schema: no such table %q", e.Table)
}

// InvalidIdentifierError is returned when a table or column name isn't
// safe to splice into SQL text as an identifier.
type InvalidIdentifierError struct {
	Name string
}

// Error implements error.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("schema: %q is not a valid identifier", e.Name)
}

// Schema is a named, immutable collection of tables.
type Schema struct {
	Name   string
	tables map[string]*Table
	order  []string
}

// New builds an empty named schema; declare tables with Declare.
func New(name string) *Schema {
	return &Schema{Name: name, tables: make(map[string]*Table)}
}

// Declare adds a table definition to the schema and returns it. Declare is
// only meant to be called while building up the schema; once construction
// is done, treat the Schema as read-only.
func (s *Schema) Declare(tableName string, columns ...Column) *Table {
	t := &Table{Name: tableName, Columns: columns}
	if _, exists := s.tables[tableName]; !exists {
		s.order = append(s.order, tableName)
	}
	s.tables[tableName] = t
	return t
}

// Table looks up a declared table by name.
func (s *Schema) Table(name string) (*Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Tables returns the declared tables in declaration order.
func (s *Schema) Tables() []*Table {
	out := make([]*Table, len(s.order))
	for i, name := range s.order {
		out[i] = s.tables[name]
	}
	return out
}

func (s *Schema) mustTable(tableName string) (*Table, error) {
	t, ok := s.tables[tableName]
	if !ok {
		return nil, &MissingTableError{Table: tableName}
	}
	return t, nil
}

// CreateTableSQL emits:
//
//	CREATE TABLE [IF NOT EXISTS ] <table> ( c1 TYPE1[ NOT NULL][ PRIMARY KEY], c2 TYPE2, … )
//
// Columns are emitted in declared order. NOT NULL appears before PRIMARY
// KEY when both apply.
func (s *Schema) CreateTableSQL(tableName string, ifNotExists bool) (string, error) {
	t, err := s.mustTable(tableName)
	if err != nil {
		return "", err
	}
	if err := validateIdentifiers(tableName, t.Columns); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if ifNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(tableName)
	b.WriteString(" ( ")
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		var part strings.Builder
		part.WriteString(c.Name)
		part.WriteByte(' ')
		part.WriteString(c.Type.String())
		if !c.Nullable {
			part.WriteString(" NOT NULL")
		}
		if c.PK {
			part.WriteString(" PRIMARY KEY")
		}
		parts[i] = part.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(" )")
	return b.String(), nil
}

// InsertRowsSQL emits an INSERT for rows, a slice of column-name-to-value
// maps. A nil or empty rows yields "" without looking up the table;
// otherwise a table the schema does not declare fails with a
// MissingTableError. The
// emitted column list and each value tuple follow schema declaration
// order regardless of the row maps' own key order; a row missing a column,
// or holding an explicit nil, renders that value as NULL.
func (s *Schema) InsertRowsSQL(tableName string, rows []map[string]any) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	t, err := s.mustTable(tableName)
	if err != nil {
		return "", err
	}
	if err := validateIdentifiers(tableName, t.Columns); err != nil {
		return "", err
	}
	colNames := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		colNames[i] = c.Name
	}
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(tableName)
	b.WriteString(" (")
	b.WriteString(strings.Join(colNames, ","))
	b.WriteString(") VALUES\n")
	tuples := make([]string, len(rows))
	for ri, row := range rows {
		vals := make([]string, len(t.Columns))
		for ci, c := range t.Columns {
			lit, err := expr.Literal(c.Type, row[c.Name])
			if err != nil {
				return "", err
			}
			vals[ci] = lit.ToSQL(false)
		}
		tuples[ri] = "(" + strings.Join(vals, ",") + ")"
	}
	b.WriteString(strings.Join(tuples, ",\n"))
	return b.String(), nil
}

func validateIdentifiers(tableName string, columns []Column) error {
	if !sqlitedialect.ValidIdentifier(tableName) {
		return &InvalidIdentifierError{Name: tableName}
	}
	for _, c := range columns {
		if !sqlitedialect.ValidIdentifier(c.Name) {
			return &InvalidIdentifierError{Name: c.Name}
		}
	}
	return nil
}
