package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type orderTerm struct {
	column    string
	direction Direction
}

// Builder constructs SELECT statements for Cloud Spanner.
// Every method returns a new Builder, so a base query can be shared
// and specialised per call site. Parameter names are generated in
// condition order (@p0, @p1, ...).
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orderBy      []orderTerm
	limitVal     int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	next := b.clone()
	next.selectCols = append(next.selectCols, columns...)
	return next
}

// Where adds a WHERE condition. Multiple calls are combined with AND.
// A nil condition is ignored so optional filters can be passed inline.
func (b *Builder) Where(condition Condition) *Builder {
	if condition == nil {
		return b
	}
	next := b.clone()
	next.whereClauses = append(next.whereClauses, condition)
	return next
}

// OrderBy appends a sort term. The first call is the primary key of the
// sort, later calls break ties.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	next := b.clone()
	next.orderBy = append(next.orderBy, orderTerm{column: column, direction: direction})
	return next
}

// Limit sets the maximum number of rows to return. Zero means unlimited.
func (b *Builder) Limit(limit int64) *Builder {
	next := b.clone()
	next.limitVal = limit
	return next
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, term := range b.orderBy {
			dir := "ASC"
			if term.direction == Desc {
				dir = "DESC"
			}
			terms = append(terms, term.column+" "+dir)
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	next := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderBy:      make([]orderTerm, len(b.orderBy)),
		limitVal:     b.limitVal,
	}
	copy(next.selectCols, b.selectCols)
	copy(next.whereClauses, b.whereClauses)
	copy(next.orderBy, b.orderBy)
	return next
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
