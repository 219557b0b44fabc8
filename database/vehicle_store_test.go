package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
)

func TestListOrderAppendsIDTiebreaker(t *testing.T) {
	cols := listOrder(repositories.ListQuery{SortColumn: "brand"})
	require.Len(t, cols, 2)
	assert.Equal(t, clause.Column{Name: "brand"}, cols[0].Column)
	assert.Equal(t, clause.Column{Name: "id"}, cols[1].Column)
	assert.False(t, cols[1].Desc)
}

func TestListOrderTiebreakerFollowsDirection(t *testing.T) {
	cols := listOrder(repositories.ListQuery{SortColumn: "created_at", SortDesc: true})
	require.Len(t, cols, 2)
	assert.True(t, cols[0].Desc)
	assert.Equal(t, clause.Column{Name: "id"}, cols[1].Column)
	assert.True(t, cols[1].Desc)
}

func TestListOrderNoDuplicateIDTerm(t *testing.T) {
	cols := listOrder(repositories.ListQuery{SortColumn: "id", SortDesc: true})
	require.Len(t, cols, 1)
	assert.Equal(t, clause.Column{Name: "id"}, cols[0].Column)
	assert.True(t, cols[0].Desc)
}
