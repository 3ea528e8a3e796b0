package wapi

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

// Logger is the logging sink injected at construction. It only receives
// debug transport traces and warnings about record mutations.
type Logger interface {
	Debug(s string)
	Warn(s string)
}

//go:generate mockgen -destination=mock_wapi/logger.go -package=mock_wapi . Logger

// Settings contains the connection parameters of a client.
// They are only read at construction time.
type Settings struct {
	// Endpoint is the address of the appliance management
	// interface. The https scheme is prepended if none is given.
	Endpoint string
	// WAPIVersion defaults to v2.5. Browse to
	// https://<appliance>/wapidoc/ for the version of your appliance.
	WAPIVersion string
	// Username for HTTP basic authentication. It is never logged.
	Username string
	// Password for HTTP basic authentication. It is never logged.
	Password string
	// DNSView defaults to "default".
	DNSView string
	// TTL is the default time to live in seconds set on created
	// records. It defaults to 60.
	TTL *uint32
	// TLSVerify enables server certificate verification against the
	// trust store. It defaults to true; disabling it makes the client
	// trust every certificate and host name, which is an explicit
	// opt-in insecure mode.
	TLSVerify *bool
	// TrustStore is the path to a PKCS#12 file containing trusted CA
	// certificates. A path prefixed with "embedded:" is resolved
	// against TrustStoreFS instead of the filesystem. Required when
	// TLSVerify is enabled.
	TrustStore string
	// TrustStorePassword decrypts the trust store. Required when
	// TLSVerify is enabled. It is never logged.
	TrustStorePassword string
	// TrustStoreFS resolves "embedded:" prefixed trust store paths,
	// usually an embed.FS of the calling program.
	TrustStoreFS fs.FS
	// Timeout bounds the connect, read and write time of each call.
	// It defaults to 30 seconds.
	Timeout time.Duration
	// Debug enables logging of every exchange as an equivalent curl
	// command line. It defaults to false.
	Debug *bool
	// MaxPages bounds the number of pages fetched by paged queries as
	// a safety net against a server handing out cursors forever.
	// Zero, the default, means no bound.
	MaxPages uint
	// Logger defaults to a no-op logger.
	Logger Logger
}

func (s *Settings) SetDefaults() {
	s.WAPIVersion = gosettings.DefaultComparable(s.WAPIVersion, "v2.5")
	s.DNSView = gosettings.DefaultComparable(s.DNSView, "default")
	const defaultTTL = 60
	s.TTL = gosettings.DefaultPointer(s.TTL, defaultTTL)
	s.TLSVerify = gosettings.DefaultPointer(s.TLSVerify, true)
	const defaultTimeout = 30 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	s.Debug = gosettings.DefaultPointer(s.Debug, false)
	if s.Logger == nil {
		s.Logger = &noopLogger{}
	}
}

func (s Settings) Validate() (err error) {
	switch {
	case s.Endpoint == "":
		return fmt.Errorf("%w", ErrEndpointNotSet)
	case s.Username == "":
		return fmt.Errorf("%w", ErrUsernameNotSet)
	case s.Password == "":
		return fmt.Errorf("%w", ErrPasswordNotSet)
	case s.Timeout <= 0:
		return fmt.Errorf("%w: %s", ErrTimeoutTooLow, s.Timeout)
	}

	if *s.TLSVerify {
		switch {
		case s.TrustStore == "":
			return fmt.Errorf("%w: TLS verification is enabled", ErrTrustStoreNotSet)
		case s.TrustStorePassword == "":
			return fmt.Errorf("%w: TLS verification is enabled", ErrTrustStorePasswordNotSet)
		case strings.HasPrefix(s.TrustStore, embeddedPrefix) && s.TrustStoreFS == nil:
			return fmt.Errorf("%w: for embedded trust store path %s",
				ErrTrustStoreFSNotSet, s.TrustStore)
		}
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("Infoblox WAPI client")
	node.Appendf("Endpoint: %s", s.Endpoint)
	node.Appendf("WAPI version: %s", s.WAPIVersion)
	node.Appendf("Username: %s", obfuscated(s.Username))
	node.Appendf("Password: %s", obfuscated(s.Password))
	node.Appendf("DNS view: %s", s.DNSView)
	node.Appendf("Default TTL: %ds", *s.TTL)
	node.Appendf("TLS verification: %s", gosettings.BoolToYesNo(s.TLSVerify))
	if *s.TLSVerify {
		node.Appendf("Trust store: %s", s.TrustStore)
		node.Appendf("Trust store password: %s", obfuscated(s.TrustStorePassword))
	}
	node.Appendf("Timeout: %s", s.Timeout)
	node.Appendf("Debug logging: %s", gosettings.BoolToYesNo(s.Debug))
	if s.MaxPages > 0 {
		node.Appendf("Maximum pages per query: %d", s.MaxPages)
	}
	return node
}

func obfuscated(secret string) string {
	if secret == "" {
		return "[not set]"
	}
	return "[set]"
}

type noopLogger struct{}

func (l *noopLogger) Debug(_ string) {}
func (l *noopLogger) Warn(_ string)  {}
