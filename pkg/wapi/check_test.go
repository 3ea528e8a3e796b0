package wapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_checkDomain(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		domainName string
		errWrapped error
	}{
		"valid":     {domainName: "host.example.com"},
		"empty":     {errWrapped: ErrDomainNameNotSet},
		"too_long":  {domainName: longLabel(64) + ".example.com", errWrapped: ErrDomainNameNotValid},
		"wildcard":  {domainName: "*.example.com"},
		"top_level": {domainName: "localhost"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := checkDomain(testCase.domainName)

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func longLabel(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

func Test_checkIPv4(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address    string
		errWrapped error
	}{
		"valid":        {address: "10.0.0.5"},
		"empty":        {errWrapped: ErrIPv4NotValid},
		"out_of_range": {address: "300.1.1.1", errWrapped: ErrIPv4NotValid},
		"ipv6":         {address: "fd00::1", errWrapped: ErrIPv4NotValid},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := checkIPv4(testCase.address)

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func Test_checkIPv6(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address    string
		errWrapped error
	}{
		"valid":          {address: "fd00::1"},
		"empty":          {errWrapped: ErrIPv6NotValid},
		"ipv4":           {address: "10.0.0.5", errWrapped: ErrIPv6NotValid},
		"ipv4_mapped":    {address: "::ffff:10.0.0.5", errWrapped: ErrIPv6NotValid},
		"not_an_address": {address: "fd00::zz", errWrapped: ErrIPv6NotValid},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := checkIPv6(testCase.address)

			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func Test_addrField(t *testing.T) {
	t.Parallel()

	field, err := addrField("10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "ipv4addr", field)

	field, err = addrField("fd00::1")
	require.NoError(t, err)
	assert.Equal(t, "ipv6addr", field)

	_, err = addrField("not-an-ip")
	assert.ErrorIs(t, err, ErrIPNotValid)
}

func Test_reverseMapName(t *testing.T) {
	t.Parallel()

	name, err := reverseMapName("10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "5.0.0.10.in-addr.arpa", name)

	name, err = reverseMapName("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0."+
		"0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa", name)

	_, err = reverseMapName("not-an-ip")
	assert.ErrorIs(t, err, ErrIPNotValid)
}
