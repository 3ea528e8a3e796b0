package wapi

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrTo[T any](value T) *T { return &value }

func Test_Settings_SetDefaults(t *testing.T) {
	t.Parallel()

	var settings Settings
	settings.SetDefaults()

	assert.Equal(t, "v2.5", settings.WAPIVersion)
	assert.Equal(t, "default", settings.DNSView)
	assert.Equal(t, uint32(60), *settings.TTL)
	assert.True(t, *settings.TLSVerify)
	assert.Equal(t, 30*time.Second, settings.Timeout)
	assert.False(t, *settings.Debug)
	assert.NotNil(t, settings.Logger)
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
		errMessage string
	}{
		"missing_endpoint": {
			settings:   Settings{},
			errWrapped: ErrEndpointNotSet,
			errMessage: "endpoint is not set",
		},
		"missing_username": {
			settings: Settings{
				Endpoint: "infoblox.example.com",
			},
			errWrapped: ErrUsernameNotSet,
			errMessage: "username is not set",
		},
		"missing_password": {
			settings: Settings{
				Endpoint: "infoblox.example.com",
				Username: "admin",
			},
			errWrapped: ErrPasswordNotSet,
			errMessage: "password is not set",
		},
		"tls_verify_without_trust_store": {
			settings: Settings{
				Endpoint: "infoblox.example.com",
				Username: "admin",
				Password: "infoblox",
			},
			errWrapped: ErrTrustStoreNotSet,
			errMessage: "trust store path is not set: TLS verification is enabled",
		},
		"tls_verify_without_trust_store_password": {
			settings: Settings{
				Endpoint:   "infoblox.example.com",
				Username:   "admin",
				Password:   "infoblox",
				TrustStore: "/etc/pki/infoblox.p12",
			},
			errWrapped: ErrTrustStorePasswordNotSet,
			errMessage: "trust store password is not set: TLS verification is enabled",
		},
		"embedded_trust_store_without_fs": {
			settings: Settings{
				Endpoint:           "infoblox.example.com",
				Username:           "admin",
				Password:           "infoblox",
				TrustStore:         "embedded:certs/infoblox.p12",
				TrustStorePassword: "changeit",
			},
			errWrapped: ErrTrustStoreFSNotSet,
			errMessage: "trust store filesystem is not set: " +
				"for embedded trust store path embedded:certs/infoblox.p12",
		},
		"embedded_trust_store_with_fs": {
			settings: Settings{
				Endpoint:           "infoblox.example.com",
				Username:           "admin",
				Password:           "infoblox",
				TrustStore:         "embedded:certs/infoblox.p12",
				TrustStorePassword: "changeit",
				TrustStoreFS:       fstest.MapFS{},
			},
		},
		"tls_verify_with_trust_material": {
			settings: Settings{
				Endpoint:           "infoblox.example.com",
				Username:           "admin",
				Password:           "infoblox",
				TrustStore:         "/etc/pki/infoblox.p12",
				TrustStorePassword: "changeit",
			},
		},
		"tls_verify_disabled_without_trust_material": {
			settings: Settings{
				Endpoint:  "infoblox.example.com",
				Username:  "admin",
				Password:  "infoblox",
				TLSVerify: ptrTo(false),
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			settings := testCase.settings
			settings.SetDefaults()
			err := settings.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Settings_String_redacts_credentials(t *testing.T) {
	t.Parallel()

	settings := Settings{
		Endpoint:           "infoblox.example.com",
		Username:           "admin",
		Password:           "hunter2",
		TrustStore:         "/etc/pki/infoblox.p12",
		TrustStorePassword: "changeit",
	}
	settings.SetDefaults()

	s := settings.String()

	assert.NotContains(t, s, "admin")
	assert.NotContains(t, s, "hunter2")
	assert.NotContains(t, s, "changeit")
	assert.Contains(t, s, "infoblox.example.com")
}
