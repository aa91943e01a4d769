package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchItemsQuery(t *testing.T) {
	sql, args, err := searchItemsQuery("tornillo", 50)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM items i")
	assert.Contains(t, sql, "LEFT JOIN warehouses w ON w.id = i.warehouse_id")
	assert.Contains(t, sql, "(i.material ILIKE $1 OR i.description ILIKE $2)")
	assert.Contains(t, sql, "ORDER BY i.material LIMIT 50")
	assert.Equal(t, []any{"%tornillo%", "%tornillo%"}, args)
}

func TestSearchItemsQuery_EmptyQueryHasNoFilter(t *testing.T) {
	sql, args, err := searchItemsQuery("", 10)
	require.NoError(t, err)

	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestListMovementsQuery(t *testing.T) {
	sql, args, err := listMovementsQuery("guante", 500)
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN items i ON i.id = m.item_id")
	assert.Contains(t, sql, "LEFT JOIN suppliers s ON s.id = m.supplier_id")
	assert.Contains(t, sql, "ORDER BY m.id DESC LIMIT 500")
	assert.Len(t, args, 2)
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\x%`, likePattern(`c:\x`))
}

func TestLoadMigrations(t *testing.T) {
	list, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	assert.Equal(t, 1, list[0].Version)
	assert.Equal(t, "init", list[0].Description)
	assert.Contains(t, list[0].SQL, "CREATE TABLE IF NOT EXISTS movements")
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Version, list[i].Version)
	}
}
