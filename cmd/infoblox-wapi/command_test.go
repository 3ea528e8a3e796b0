package main

import (
	"testing"

	"github.com/oneops/infoblox-wapi/pkg/wapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseCommand(t *testing.T) {
	t.Parallel()

	c, err := parseCommand([]string{"a", "create", "host.example.com", "10.0.0.5"})
	require.NoError(t, err)
	assert.Equal(t, command{
		object: "a",
		verb:   "create",
		args:   []string{"host.example.com", "10.0.0.5"},
	}, c)

	_, err = parseCommand([]string{"a"})
	assert.ErrorIs(t, err, ErrNoCommand)
}

func Test_parseDelegates(t *testing.T) {
	t.Parallel()

	delegates, err := parseDelegates([]string{
		"ns1.example.com=10.0.0.53",
		"ns2.example.com=10.0.0.54",
	})
	require.NoError(t, err)
	assert.Equal(t, []wapi.Delegate{
		{Name: "ns1.example.com", Address: "10.0.0.53"},
		{Name: "ns2.example.com", Address: "10.0.0.54"},
	}, delegates)

	_, err = parseDelegates([]string{"ns1.example.com"})
	assert.ErrorIs(t, err, ErrDelegateNotValid)
}
