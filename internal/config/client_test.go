package config

import (
	"testing"
	"time"

	"github.com/oneops/infoblox-wapi/pkg/wapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_setDefaults(t *testing.T) {
	t.Parallel()

	var client Client
	client.setDefaults()

	assert.Equal(t, "v2.5", client.WAPIVersion)
	assert.Equal(t, "default", client.DNSView)
	assert.Equal(t, uint32(60), *client.TTL)
	assert.True(t, *client.TLSVerify)
	assert.Equal(t, 30*time.Second, client.Timeout)
	assert.False(t, *client.Debug)
	assert.Zero(t, *client.MaxPages)
}

func Test_Client_Validate(t *testing.T) {
	t.Parallel()

	client := Client{
		Endpoint:           "grid.example.com",
		Username:           "admin",
		Password:           "infoblox",
		TrustStore:         "/etc/pki/infoblox.p12",
		TrustStorePassword: "changeit",
	}
	client.setDefaults()
	require.NoError(t, client.Validate())

	client.Endpoint = ""
	assert.ErrorIs(t, client.Validate(), wapi.ErrEndpointNotSet)
}

func Test_Client_Validate_zero_value(t *testing.T) {
	t.Parallel()

	// Validating without defaults set must fail, not panic.
	var client Client
	assert.ErrorIs(t, client.Validate(), wapi.ErrEndpointNotSet)
}

func Test_Client_ToWAPISettings(t *testing.T) {
	t.Parallel()

	client := Client{
		Endpoint: "grid.example.com",
		Username: "admin",
		Password: "infoblox",
	}
	client.setDefaults()

	settings := client.ToWAPISettings(nil)

	assert.Equal(t, "grid.example.com", settings.Endpoint)
	assert.Equal(t, "v2.5", settings.WAPIVersion)
	assert.Equal(t, uint32(60), *settings.TTL)
	assert.Zero(t, settings.MaxPages)

	// Converting a zero value must not panic on the MaxPages pointer.
	settings = Client{}.ToWAPISettings(nil)
	assert.Zero(t, settings.MaxPages)
}
