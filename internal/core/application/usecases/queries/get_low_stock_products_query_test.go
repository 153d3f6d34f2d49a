package queries_test

import (
	"testing"

	"eshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLowStockProductsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetLowStockProductsQuery(5)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 5, query.Threshold())
	})

	t.Run("should fail with non-positive threshold", func(t *testing.T) {
		for _, threshold := range []int{0, -1} {
			_, err := queries.NewGetLowStockProductsQuery(threshold)

			require.ErrorIs(t, err, queries.ErrThresholdIsInvalid)
		}
	})

	t.Run("zero value query is not constructed", func(t *testing.T) {
		var query queries.GetLowStockProductsQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetLowStockProductsQueryIsNotConstructed)
	})
}
