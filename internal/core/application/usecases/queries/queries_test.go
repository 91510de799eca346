package queries_test

import (
	"testing"

	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCheckoutQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetCheckoutQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.CheckoutID())
}

func TestNewGetCheckoutQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetCheckoutQuery(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetCheckoutQuery{}.Validate(), queries.ErrGetCheckoutQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetPickupPointsQuery{}.Validate(), queries.ErrGetPickupPointsQueryIsNotConstructed)
}
