package wapi

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// newHTTPClient assembles the HTTP channel of the client: a TLS 1.2 only
// transport that never sends the SNI extension (the appliance rejects
// handshakes carrying it), wrapped so that every request gains basic
// authentication credentials, the JSON content type and the query
// parameter forcing full object responses.
func newHTTPClient(settings Settings, pool *x509.CertPool,
	verifyHost string) *http.Client {
	//nolint:gosec
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
		// ServerName is left empty so the ClientHello carries no SNI
		// extension. Verification cannot rely on the handshake then,
		// so it is done in VerifyConnection below when enabled.
		InsecureSkipVerify: true,
	}

	if *settings.TLSVerify {
		tlsConfig.VerifyConnection = func(state tls.ConnectionState) error {
			options := x509.VerifyOptions{
				Roots:         pool,
				DNSName:       verifyHost,
				Intermediates: x509.NewCertPool(),
			}
			for _, certificate := range state.PeerCertificates[1:] {
				options.Intermediates.AddCert(certificate)
			}
			_, err := state.PeerCertificates[0].Verify(options)
			return err
		}
	}

	dialer := &net.Dialer{Timeout: settings.Timeout}
	transport := &http.Transport{
		ForceAttemptHTTP2: false,
		DialContext:       dialer.DialContext,
		// The standard transport fills in tls.Config.ServerName from
		// the request host, re-enabling SNI, so the TLS dial is done
		// here instead.
		DialTLSContext: func(ctx context.Context, network, addr string) (
			net.Conn, error) {
			connection, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			tlsConnection := tls.Client(connection, tlsConfig)
			err = tlsConnection.HandshakeContext(ctx)
			if err != nil {
				_ = connection.Close()
				return nil, err
			}
			return tlsConnection, nil
		},
		TLSHandshakeTimeout:   settings.Timeout,
		ResponseHeaderTimeout: settings.Timeout,
		IdleConnTimeout:       90 * time.Second,
	}

	var roundTripper http.RoundTripper = transport
	if *settings.Debug {
		roundTripper = &curlRoundTripper{
			proxied: roundTripper,
			logger:  settings.Logger,
		}
	}

	roundTripper = &authRoundTripper{
		proxied:   roundTripper,
		basicAuth: basicAuth(settings.Username, settings.Password),
	}

	return &http.Client{
		Transport: roundTripper,
		Timeout:   settings.Timeout,
	}
}

func basicAuth(username, password string) string {
	credentials := username + ":" + password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// authRoundTripper rewrites every outgoing request to carry the basic
// authentication header, the JSON content type and the fixed query
// parameter instructing the server to return full objects instead of
// bare references.
type authRoundTripper struct {
	proxied   http.RoundTripper
	basicAuth string
}

func (art *authRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	request = request.Clone(request.Context())

	query := request.URL.Query()
	query.Set("_return_as_object", "1")
	request.URL.RawQuery = query.Encode()

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", art.basicAuth)

	return art.proxied.RoundTrip(request)
}

// baseURL returns the WAPI base url for the endpoint, prepending the
// https scheme if the endpoint carries none.
func baseURL(endpoint string) string {
	s := endpoint
	if !strings.HasPrefix(strings.ToLower(s), "http") {
		s = "https://" + s
	}
	return s + "/wapi/"
}

// verifyHostname extracts the host name certificates are verified
// against from the endpoint.
func verifyHostname(endpoint string) string {
	parsed, err := url.Parse(baseURL(endpoint))
	if err != nil {
		return endpoint
	}
	return parsed.Hostname()
}
