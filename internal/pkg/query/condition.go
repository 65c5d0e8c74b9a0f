package query

import "fmt"

// Condition represents a WHERE clause condition.
type Condition interface {
	// SQL returns the fragment and its parameters. paramIndex is the
	// index of the first parameter name the condition may use.
	SQL(paramIndex int) (string, map[string]interface{})
}

// compareCondition renders "field <op> @pN".
type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// Eq creates an equality condition: Eq("is_active", true) renders "is_active = @p0".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lte creates a "field <= value" condition.
func Lte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<=", value: value}
}

// Gte creates a "field >= value" condition.
func Gte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// inCondition renders "field IN UNNEST(@pN)" for an array parameter.
type inCondition struct {
	field  string
	values interface{}
}

// In creates a membership condition against an array parameter, e.g. a []string of ids.
func In(field string, values interface{}) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{name: c.values}
}

// IsNull creates a "field IS NULL" condition.
func IsNull(field string) Condition {
	return &nullCondition{field: field}
}

// IsNotNull creates a "field IS NOT NULL" condition.
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(int) (string, map[string]interface{}) {
	if c.negate {
		return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
	}
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}
