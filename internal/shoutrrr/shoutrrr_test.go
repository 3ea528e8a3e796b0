package shoutrrr

import (
	"testing"

	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Settings_SetDefaults(t *testing.T) {
	t.Parallel()

	var settings Settings
	settings.SetDefaults()

	assert.Equal(t, []string{}, settings.Addresses)
	assert.Equal(t, "Infoblox WAPI", settings.DefaultTitle)
	assert.NotNil(t, settings.Logger)
}

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		params     types.Params
		errMessage string
	}{
		"no_addresses": {
			params: types.Params{"title": "Infoblox WAPI"},
		},
		"custom_title": {
			settings: Settings{
				DefaultTitle: "DNS changes",
			},
			params: types.Params{"title": "DNS changes"},
		},
		"bad_address": {
			settings: Settings{
				Addresses: []string{"notaservice://x"},
			},
			errMessage: "notaservice",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, err := New(testCase.settings)

			if testCase.errMessage != "" {
				require.Error(t, err)
				require.ErrorContains(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.params, client.params)
		})
	}
}
