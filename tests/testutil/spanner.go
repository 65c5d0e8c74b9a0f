package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/config"
)

// tablesChildFirst lists tables so deletes never trip a foreign key.
var tablesChildFirst = []string{
	"order_items",
	"inventory_history",
	"discounts",
	"orders",
	"products",
	"users",
}

// SetupSpannerTest creates a client against the test database and empties
// it. Tests are skipped when no emulator is configured.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner-backed test")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}
	return client, cleanup
}

// GetTestSpannerDB returns the test database path, SPANNER_TEST_DATABASE if set.
func GetTestSpannerDB() string {
	return config.GetEnvOrDefault("SPANNER_TEST_DATABASE",
		"projects/test-project/instances/dev-instance/databases/store-admin-test")
}

// CleanDatabase deletes every row from every table.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	mutations := make([]*spanner.Mutation, 0, len(tablesChildFirst))
	for _, table := range tablesChildFirst {
		mutations = append(mutations, spanner.Delete(table, spanner.AllKeys()))
	}

	_, err := client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	stmt := spanner.Statement{SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table)}
	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
