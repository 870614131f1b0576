package queries_test

import (
	"testing"
	"time"

	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()

	query, err := queries.NewListOrdersQuery([]string{"pending", "preparing"}, "dine_in", &from, &to)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, []string{"pending", "preparing"}, query.Statuses())
	assert.Equal(t, "dine_in", query.Channel())
}

func TestNewListOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewListOrdersQuery(nil, "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Statuses())
}

func TestNewListOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery([]string{"pending", "in_flight"}, "", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvalidChannel(t *testing.T) {
	_, err := queries.NewListOrdersQuery(nil, "drive_through", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_InvertedRange(t *testing.T) {
	from := time.Now()
	to := from.Add(-time.Hour)

	_, err := queries.NewListOrdersQuery(nil, "", &from, &to)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
