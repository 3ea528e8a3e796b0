package wapi

import (
	"crypto/x509"
	"fmt"
	"net/http"
)

// Client is a typed client for the Infoblox WAPI. It is built once from
// its settings and is safe for concurrent use, since nothing in it is
// mutated after construction. Every operation is synchronous and blocks
// until the full HTTP exchange completes or the context is done.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	wapiVersion string
	dnsView     string
	ttl         uint32
	maxPages    uint
	logger      Logger
}

// New validates the settings, builds the TLS transport and returns a
// ready to use client. It fails fast on inconsistent settings or bad
// trust material, without any network call.
func New(settings Settings) (c *Client, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	pool, err := trustPool(settings)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient:  newHTTPClient(settings, pool, verifyHostname(settings.Endpoint)),
		baseURL:     baseURL(settings.Endpoint),
		wapiVersion: settings.WAPIVersion,
		dnsView:     settings.DNSView,
		ttl:         *settings.TTL,
		maxPages:    settings.MaxPages,
		logger:      settings.Logger,
	}, nil
}

func trustPool(settings Settings) (pool *x509.CertPool, err error) {
	if !*settings.TLSVerify {
		return nil, nil //nolint:nilnil
	}
	return loadTrustStore(settings.TrustStore,
		settings.TrustStorePassword, settings.TrustStoreFS)
}

// CloseIdleConnections closes idle connections held by the transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// newTTLReq creates a request body with the DNS view and default TTL
// set. The ttl value only takes effect on the appliance when the
// use_ttl flag is true in the same object.
func (c *Client) newTTLReq() map[string]any {
	return map[string]any{
		"view":    c.dnsView,
		"ttl":     c.ttl,
		"use_ttl": true,
	}
}
