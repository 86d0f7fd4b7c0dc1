// Package query implements sqlight's SELECT builder: projections, FROM
// with joins, WHERE, ORDER BY, and LIMIT/OFFSET, composed from typed
// expressions and rendered to a single SQL string.
package query

import (
	"fmt"
	"strings"

	"github.com/asmartbear/sqlight/expr"
	"github.com/asmartbear/sqlight/schema"
)

// OrderDir is the sort direction of an ORDER BY clause element.
type OrderDir string

const (
	// Asc sorts ascending.
	Asc OrderDir = "ASC"
	// Desc sorts descending.
	Desc OrderDir = "DESC"
)

type projection struct {
	alias string
	value expr.Val
}

type orderItem struct {
	value expr.Val
	dir   OrderDir
}

type joinEntry struct {
	table *FromTable
	kind  string   // empty for the base table
	on    expr.Val // zero value for the base table
}

// Select builds a SELECT statement. Select is stateful: every mutating
// method updates the builder in place and reports a construction error
// immediately rather than deferring it to render time, so callers see type
// mismatches at the call that introduced them.
type Select struct {
	schema      *schema.Schema
	projections []projection
	joins       []joinEntry
	wheres      []expr.Val
	orders      []orderItem
	hasLimit    bool
	limit       int64
	offset      int64
}

// New builds an empty SELECT against s. Add a base table with From before
// adding projections that reference its columns.
func New(s *schema.Schema) *Select {
	return &Select{schema: s}
}

// Select appends or replaces the projection bound to alias. value is
// coerced via the expression factory (expr.Expr).
func (q *Select) Select(alias string, value any) error {
	v, err := expr.V(value)
	if err != nil {
		return err
	}
	for i, p := range q.projections {
		if p.alias == alias {
			q.projections[i].value = v
			return nil
		}
	}
	q.projections = append(q.projections, projection{alias: alias, value: v})
	return nil
}

// PassThrough is shorthand for Select(col.ColumnName, col).
func (q *Select) PassThrough(col ColumnHandle) error {
	return q.Select(col.ColumnName, col.Val)
}

// From appends a join entry. The first call is the base table and must
// leave joinKind empty and onBuilder nil. Every subsequent call requires
// both: onBuilder is invoked with the freshly built table reference so the
// join predicate can be expressed symmetrically against it. From returns
// the new table reference, exposing Col[<name>] handles for every column
// of the underlying schema table.
func (q *Select) From(alias, tableName string, joinKind string, onBuilder func(t *FromTable) (expr.Val, error)) (*FromTable, error) {
	t, ok := q.schema.Table(tableName)
	if !ok {
		return nil, &schema.MissingTableError{Table: tableName}
	}
	isBase := len(q.joins) == 0
	switch {
	case isBase && (joinKind != "" || onBuilder != nil):
		return nil, &JoinUsageError{Reason: "the base table must not specify a join kind or predicate"}
	case !isBase && (joinKind == "" || onBuilder == nil):
		return nil, &JoinUsageError{Reason: "a joined table requires both a join kind and a predicate builder"}
	}
	ft := newFromTable(alias, t)
	entry := joinEntry{table: ft, kind: joinKind}
	if onBuilder != nil {
		on, err := onBuilder(ft)
		if err != nil {
			return nil, err
		}
		if _, err := on.AssertIsBoolean(); err != nil {
			return nil, err
		}
		entry.on = on
	}
	q.joins = append(q.joins, entry)
	return ft, nil
}

// Where appends a BOOLEAN expression to the WHERE-conjunction list.
func (q *Select) Where(e expr.Val) error {
	if _, err := e.AssertIsBoolean(); err != nil {
		return err
	}
	q.wheres = append(q.wheres, e)
	return nil
}

// OrderBy appends an ORDER BY element.
func (q *Select) OrderBy(e expr.Val, dir OrderDir) {
	q.orders = append(q.orders, orderItem{value: e, dir: dir})
}

// SetLimit sets the LIMIT value. Calling SetLimit at all marks the query as
// limited; there is no sentinel "unlimited" value to pass instead — simply
// don't call SetLimit.
func (q *Select) SetLimit(n int64) {
	q.hasLimit = true
	q.limit = n
}

// SetOffset sets the OFFSET value.
func (q *Select) SetOffset(n int64) {
	q.offset = n
}

// AsSubquery adapts this SELECT as a scalar expression whose rendered form
// is "(...this SELECT...)" and whose declared type is the type of the
// projection bound to alias. Its nullability is always Sometimes. Fails
// with a MissingProjectionError if alias was never bound.
func (q *Select) AsSubquery(alias string) (expr.Val, error) {
	for _, p := range q.projections {
		if p.alias == alias {
			body, err := q.render()
			if err != nil {
				return expr.Val{}, err
			}
			return expr.Wrap(expr.NewSubquery(body, p.value.SQLType())), nil
		}
	}
	return expr.Val{}, &MissingProjectionError{Alias: alias}
}

// ToSQL renders the complete SELECT statement.
func (q *Select) ToSQL() (string, error) {
	return q.render()
}

func (q *Select) render() (string, error) {
	if len(q.projections) == 0 {
		return "SELECT 1", nil
	}
	var lines []string
	lines = append(lines, q.renderSelect())
	if from := q.renderFrom(); from != "" {
		lines = append(lines, from)
	}
	where, err := q.renderWhere()
	if err != nil {
		return "", err
	}
	if where != "" {
		lines = append(lines, where)
	}
	if orderBy := q.renderOrderBy(); orderBy != "" {
		lines = append(lines, orderBy)
	}
	if limit := q.renderLimit(); limit != "" {
		lines = append(lines, limit)
	}
	return strings.Join(lines, "\n"), nil
}

func (q *Select) renderSelect() string {
	parts := make([]string, len(q.projections))
	for i, p := range q.projections {
		parts[i] = p.value.ToSQL(false) + " AS " + p.alias
	}
	return "SELECT " + strings.Join(parts, ", ")
}

func (q *Select) renderFrom() string {
	if len(q.joins) == 0 {
		return ""
	}
	parts := make([]string, len(q.joins))
	for i, j := range q.joins {
		if i == 0 {
			parts[i] = j.table.TableName + " " + j.table.Alias
		} else {
			parts[i] = j.kind + " " + j.table.TableName + " " + j.table.Alias + " ON " + j.on.ToSQL(true)
		}
	}
	return "FROM " + strings.Join(parts, " ")
}

func (q *Select) renderWhere() (string, error) {
	if len(q.wheres) == 0 {
		return "", nil
	}
	items := make([]any, len(q.wheres))
	for i, w := range q.wheres {
		items[i] = w.Expression
	}
	conj, err := expr.And(items...)
	if err != nil {
		return "", err
	}
	return "WHERE " + conj.ToSQL(false), nil
}

func (q *Select) renderOrderBy() string {
	if len(q.orders) == 0 {
		return ""
	}
	parts := make([]string, len(q.orders))
	for i, o := range q.orders {
		parts[i] = o.value.ToSQL(false) + " " + string(o.dir)
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

func (q *Select) renderLimit() string {
	switch {
	case q.hasLimit && q.offset != 0:
		return fmt.Sprintf("LIMIT %d OFFSET %d", q.limit, q.offset)
	case q.hasLimit:
		return fmt.Sprintf("LIMIT %d", q.limit)
	case q.offset != 0:
		// setOffset without setLimit: SQLite allows LIMIT -1 to mean
		// unlimited, so this still emits the offset instead of silently
		// dropping it (see the spec's "known limitation" note).
		return fmt.Sprintf("LIMIT -1 OFFSET %d", q.offset)
	default:
		return ""
	}
}
