package wapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_GetARec(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/wapi/v2.5/record:a", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "host.example.com", query.Get("name:"))
			assert.False(t, query.Has("ipv4addr"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": [
				{"_ref": "record:a/abc", "name": "host.example.com",
				 "ipv4addr": "10.0.0.5", "ttl": 60, "use_ttl": true}
			]}`))
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	records, err := client.GetARec(context.Background(), "host.example.com")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10.0.0.5", records[0].IPv4Addr)
}

func Test_Client_GetARecMatching_regex(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "host.*", r.URL.Query().Get("name~"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result": []}`))
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	records, err := client.GetARecMatching(context.Background(),
		"host.*", ModifierRegex)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_Client_GetARecByIP_invalid(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://unreachable.invalid")

	_, err := client.GetARecByIP(context.Background(), "300.1.1.1")

	// The address fails validation so no network call is attempted.
	assert.ErrorIs(t, err, ErrIPv4NotValid)
	assert.ErrorContains(t, err, "300.1.1.1")
}

func Test_Client_CreateARec(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/wapi/v2.5/record:a", r.URL.Path)
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var body map[string]any
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Equal(t, map[string]any{
				"name":     "host.example.com",
				"ipv4addr": "10.0.0.5",
				"view":     "default",
				"ttl":      float64(60),
				"use_ttl":  true,
			}, body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":
				{"_ref": "record:a/abc", "name": "host.example.com",
				 "ipv4addr": "10.0.0.5", "ttl": 60, "use_ttl": true}
			}`))
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	record, err := client.CreateARec(context.Background(),
		"host.example.com", "10.0.0.5")

	require.NoError(t, err)
	assert.Equal(t, Ref("record:a/abc"), record.Ref)
	assert.Equal(t, uint32(60), record.TTL)
	assert.True(t, record.UseTTL)
}

func Test_Client_ModifyARecIP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(`{"result": [
					{"_ref": "record:a/abc", "name": "host.example.com",
					 "ipv4addr": "10.0.0.5"}
				]}`))
			case http.MethodPut:
				assert.Equal(t, "/wapi/v2.5/record:a/abc", r.URL.Path)
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"ipv4addr": "10.0.0.6"}`, string(data))
				_, _ = w.Write([]byte(`{"result":
					{"_ref": "record:a/abc", "name": "host.example.com",
					 "ipv4addr": "10.0.0.6"}
				}`))
			default:
				t.Errorf("unexpected method %s", r.Method)
			}
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	records, err := client.ModifyARecIP(context.Background(),
		"host.example.com", "10.0.0.5", "10.0.0.6")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10.0.0.6", records[0].IPv4Addr)
}

func Test_Client_DeleteARec(t *testing.T) {
	t.Parallel()

	deleted := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(`{"result": [
					{"_ref": "record:a/abc", "name": "host.example.com"},
					{"_ref": "record:a/def", "name": "host.example.com"}
				]}`))
			case http.MethodDelete:
				deleted++
				ref := r.URL.Path[len("/wapi/v2.5/"):]
				data, err := json.Marshal(map[string]string{"result": ref})
				require.NoError(t, err)
				_, _ = w.Write(data)
			default:
				t.Errorf("unexpected method %s", r.Method)
			}
		}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)

	deletedRefs, err := client.DeleteARec(context.Background(),
		"host.example.com")

	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, []string{"record:a/abc", "record:a/def"}, deletedRefs)
}
