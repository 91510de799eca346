package servers_test

import (
	"reflect"
	"testing"

	"checkout/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Checkout", swagger.Info.Title)
	for _, path := range []string{
		"/api/v1/checkouts",
		"/api/v1/checkouts/{checkoutId}",
		"/api/v1/checkouts/{checkoutId}/draft",
		"/api/v1/checkouts/{checkoutId}/next",
		"/api/v1/checkouts/{checkoutId}/back",
		"/api/v1/checkouts/{checkoutId}/pickup-selector/open",
		"/api/v1/checkouts/{checkoutId}/pickup-selector/close",
		"/api/v1/checkouts/{checkoutId}/pickup-selector/select",
		"/api/v1/checkouts/{checkoutId}/finalize",
		"/api/v1/pickup-points",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}

func TestServerInterfaceCoversEveryOperation(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	iface := reflect.TypeOf((*servers.ServerInterface)(nil)).Elem()
	operations := 0
	for _, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			operations++
			_, ok := iface.MethodByName(op.OperationID)
			assert.True(t, ok, "%s %s", method, op.OperationID)
		}
	}
	assert.Equal(t, iface.NumMethod(), operations)
}
