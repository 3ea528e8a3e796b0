package wapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_queryPages(t *testing.T) {
	t.Parallel()

	// 5 delegated zones spread over 3 pages of at most 2.
	pages := map[string]string{ // page id to response body
		"": `{"result": [
			{"_ref": "zone_delegated/1", "fqdn": "a.example.com"},
			{"_ref": "zone_delegated/2", "fqdn": "b.example.com"}
		], "next_page_id": "789"}`,
		"789": `{"result": [
			{"_ref": "zone_delegated/3", "fqdn": "c.example.com"},
			{"_ref": "zone_delegated/4", "fqdn": "d.example.com"}
		], "next_page_id": "790"}`,
		"790": `{"result": [
			{"_ref": "zone_delegated/5", "fqdn": "e.example.com"}
		]}`,
	}

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requests++
			query := r.URL.Query()
			assert.Equal(t, "1", query.Get("_paging"))
			assert.Equal(t, "2", query.Get("_max_results"))
			body, ok := pages[query.Get("_page_id")]
			require.True(t, ok, "unexpected page id %q", query.Get("_page_id"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	zones, err := queryPages[ZoneDelegate](context.Background(),
		client, objectZoneDelegate, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, requests)
	require.Len(t, zones, 5)
	fqdns := make([]string, len(zones))
	for i, zone := range zones {
		fqdns[i] = zone.FQDN
	}
	assert.Equal(t, []string{"a.example.com", "b.example.com",
		"c.example.com", "d.example.com", "e.example.com"}, fqdns)
}

func Test_queryPages_empty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": []}`))
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	zones, err := queryPages[ZoneDelegate](context.Background(),
		client, objectZoneDelegate, 100)

	require.NoError(t, err)
	assert.Empty(t, zones)
}

func Test_queryPages_cursor_loop(t *testing.T) {
	t.Parallel()

	// A misbehaving server handing out the same cursor forever.
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": [
				{"_ref": "zone_delegated/1", "fqdn": "a.example.com"}
			], "next_page_id": "42"}`))
		}))
	t.Cleanup(server.Close)

	client, err := New(Settings{
		Endpoint:  server.URL,
		Username:  "admin",
		Password:  "infoblox",
		TLSVerify: ptrTo(false),
		MaxPages:  3,
	})
	require.NoError(t, err)

	_, err = queryPages[ZoneDelegate](context.Background(),
		client, objectZoneDelegate, 1)

	assert.ErrorIs(t, err, ErrTooManyPages)
}
