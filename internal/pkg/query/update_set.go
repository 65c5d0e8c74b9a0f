package query

import "cloud.google.com/go/spanner"

// UpdateSet collects the columns of a partial update in the order they are set.
// It replaces hand-built "SET a = $1, b = $2" fragments: the result is a single
// spanner.Update mutation keyed on the primary key column.
type UpdateSet struct {
	table   string
	columns []string
	values  []interface{}
	index   map[string]int
}

// NewUpdateSet starts a partial update of one table.
func NewUpdateSet(table string) *UpdateSet {
	return &UpdateSet{table: table, index: make(map[string]int)}
}

// Set records a column value. Setting the same column twice keeps the last value.
func (u *UpdateSet) Set(column string, value interface{}) *UpdateSet {
	if i, ok := u.index[column]; ok {
		u.values[i] = value
		return u
	}
	u.index[column] = len(u.columns)
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
	return u
}

// Columns returns the columns set so far, in insertion order.
func (u *UpdateSet) Columns() []string {
	return u.columns
}

// IsEmpty reports whether no column has been set.
func (u *UpdateSet) IsEmpty() bool {
	return len(u.columns) == 0
}

// Mutation builds the update for the row identified by keyColumn = key.
// It returns nil when nothing was set.
func (u *UpdateSet) Mutation(keyColumn string, key interface{}) *spanner.Mutation {
	if u.IsEmpty() {
		return nil
	}
	cols := append([]string{keyColumn}, u.columns...)
	vals := append([]interface{}{key}, u.values...)
	return spanner.Update(u.table, cols, vals)
}
