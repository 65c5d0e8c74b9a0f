package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "stock", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, stock, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("orders").Build()

	assert.Equal(t, "SELECT * FROM orders", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_ActiveDiscountWindow(t *testing.T) {
	stmt := From("discounts").
		Select("discount_id", "value").
		Where(Eq("is_active", true)).
		Where(Lte("start_date", "2026-01-01")).
		Where(Gte("end_date", "2026-01-01")).
		Build()

	assert.Equal(t, "SELECT discount_id, value FROM discounts WHERE is_active = @p0 AND start_date <= @p1 AND end_date >= @p2", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
		"p1": "2026-01-01",
		"p2": "2026-01-01",
	}, stmt.Params)
}

func TestBuilder_InUnnest(t *testing.T) {
	ids := []string{"a", "b"}
	stmt := From("discounts").
		Select("discount_id").
		Where(In("product_id", ids)).
		Build()

	assert.Equal(t, "SELECT discount_id FROM discounts WHERE product_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": ids}, stmt.Params)
}

func TestBuilder_OrderByWithTieBreaker(t *testing.T) {
	stmt := From("inventory_history").
		Select("history_id").
		OrderBy("created_at", Desc).
		OrderBy("history_id", Asc).
		Build()

	assert.Equal(t, "SELECT history_id FROM inventory_history ORDER BY created_at DESC, history_id ASC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("inventory_history").
		Select("history_id").
		Where(Eq("product_id", "p-1")).
		OrderBy("created_at", Desc).
		Limit(50).
		Build()

	assert.Equal(t, "SELECT history_id FROM inventory_history WHERE product_id = @p0 ORDER BY created_at DESC LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "p-1",
		"limit": int64(50),
	}, stmt.Params)
}

func TestBuilder_NilConditionIgnored(t *testing.T) {
	stmt := From("products").Select("product_id").Where(nil).Build()

	assert.Equal(t, "SELECT product_id FROM products", stmt.SQL)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	stmt1 := base.Where(Eq("barcode", "123")).Build()
	stmt2 := base.Where(Eq("category", "drinks")).Build()

	assert.Contains(t, stmt1.SQL, "barcode = @p0")
	assert.NotContains(t, stmt1.SQL, "category")
	assert.Contains(t, stmt2.SQL, "category = @p0")
	assert.NotContains(t, stmt2.SQL, "barcode")
	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
}

func TestCondition_ParamIndex(t *testing.T) {
	sql, params := Eq("category", "drinks").SQL(5)

	assert.Equal(t, "category = @p5", sql)
	assert.Equal(t, map[string]interface{}{"p5": "drinks"}, params)
}

func TestCondition_NullChecks(t *testing.T) {
	sql, params := IsNull("product_id").SQL(0)
	assert.Equal(t, "product_id IS NULL", sql)
	assert.Empty(t, params)

	sql, params = IsNotNull("product_id").SQL(0)
	assert.Equal(t, "product_id IS NOT NULL", sql)
	assert.Empty(t, params)
}

func TestBuilder_NullCheckDoesNotConsumeParam(t *testing.T) {
	stmt := From("discounts").
		Select("discount_id").
		Where(IsNull("product_id")).
		Where(Eq("is_active", true)).
		Build()

	assert.Equal(t, "SELECT discount_id FROM discounts WHERE product_id IS NULL AND is_active = @p0", stmt.SQL)
}

func TestBuilder_String(t *testing.T) {
	str := From("products").Select("product_id").Where(Eq("barcode", "1")).String()

	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
}
