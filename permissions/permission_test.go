package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/permissions"
)

func TestPermissions_GuestEndpointsAreOpen(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	open := []struct {
		path   string
		method string
	}{
		{"/v1/bookings", http.MethodPost},
		{"/v1/bookings/code/{code}", http.MethodGet},
		{"/v1/bookings/{id}/confirm-transfer", http.MethodPost},
		{"/v1/payments/holds/{bookingID}", http.MethodGet},
		{"/v1/rooms", http.MethodGet},
		{"/v1/rooms/{id}", http.MethodGet},
	}

	for _, endpoint := range open {
		permission := data.FindPermissions(endpoint.path, endpoint.method)
		assert.True(t, permission.Skip, "%s %s should be open to guests", endpoint.method, endpoint.path)
	}
}

func TestPermissions_StaffEndpointsStayGated(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	gated := []struct {
		path   string
		method string
		roles  []string
	}{
		{"/v1/rooms", http.MethodPost, []string{"admin"}},
		{"/v1/rooms/{id}", http.MethodPatch, []string{"admin"}},
		{"/v1/rooms/{id}/status", http.MethodPost, []string{"admin", "receptionist"}},
		{"/v1/rooms/{id}/transitions", http.MethodGet, []string{"admin", "receptionist"}},
		{"/v1/checkout/{bookingID}/process", http.MethodPost, []string{"admin", "receptionist"}},
	}

	for _, endpoint := range gated {
		permission := data.FindPermissions(endpoint.path, endpoint.method)
		assert.False(t, permission.Skip, "%s %s must require auth", endpoint.method, endpoint.path)
		assert.Equal(t, endpoint.roles, permission.Permissions)
	}
}
