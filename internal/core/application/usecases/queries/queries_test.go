package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inatpos/internal/core/application/usecases/queries"
)

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetDashboardStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetDashboardStatsQuery()
	require.NoError(t, query.Validate())
}

func TestGetDashboardStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDashboardStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDashboardStatsQueryIsNotConstructed)
}

func TestNewGetStaffQuery_Valid(t *testing.T) {
	query := queries.NewGetStaffQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetMenuQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuQuery()
	require.NoError(t, query.Validate())
}
