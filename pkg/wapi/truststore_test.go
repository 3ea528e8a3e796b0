package wapi

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func Test_loadTrustStore(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		path       string
		password   string
		embedded   fstest.MapFS
		errWrapped error
	}{
		"missing_file": {
			path:       "/does/not/exist.p12",
			errWrapped: ErrTrustStoreRead,
		},
		"missing_embedded_file": {
			path:       "embedded:certs/infoblox.p12",
			embedded:   fstest.MapFS{},
			errWrapped: ErrTrustStoreRead,
		},
		"not_pkcs12": {
			path:     "embedded:certs/infoblox.p12",
			password: "changeit",
			embedded: fstest.MapFS{
				"certs/infoblox.p12": &fstest.MapFile{
					Data: []byte("certainly not a pkcs12 archive"),
				},
			},
			errWrapped: ErrTrustStoreDecode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pool, err := loadTrustStore(testCase.path,
				testCase.password, testCase.embedded)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Nil(t, pool)
		})
	}
}
