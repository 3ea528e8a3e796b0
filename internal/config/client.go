package config

import (
	"time"

	"github.com/oneops/infoblox-wapi/pkg/wapi"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Client holds the appliance connection settings read from environment
// variables, mirroring the settings of the wapi package.
type Client struct {
	Endpoint           string
	WAPIVersion        string
	Username           string
	Password           string
	DNSView            string
	TTL                *uint32
	TLSVerify          *bool
	TrustStore         string
	TrustStorePassword string
	Timeout            time.Duration
	Debug              *bool
	MaxPages           *uint32
}

func (c *Client) setDefaults() {
	c.WAPIVersion = gosettings.DefaultComparable(c.WAPIVersion, "v2.5")
	c.DNSView = gosettings.DefaultComparable(c.DNSView, "default")
	const defaultTTL = 60
	c.TTL = gosettings.DefaultPointer(c.TTL, defaultTTL)
	c.TLSVerify = gosettings.DefaultPointer(c.TLSVerify, true)
	const defaultTimeout = 30 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
	c.Debug = gosettings.DefaultPointer(c.Debug, false)
	c.MaxPages = gosettings.DefaultPointer(c.MaxPages, 0)
}

func (c Client) Validate() (err error) {
	settings := c.ToWAPISettings(nil)
	settings.SetDefaults()
	return settings.Validate()
}

// ToWAPISettings converts the configuration to the settings of the wapi
// client, with the given logger injected.
func (c Client) ToWAPISettings(logger wapi.Logger) (settings wapi.Settings) {
	maxPages := uint(0)
	if c.MaxPages != nil {
		maxPages = uint(*c.MaxPages)
	}
	return wapi.Settings{
		Endpoint:           c.Endpoint,
		WAPIVersion:        c.WAPIVersion,
		Username:           c.Username,
		Password:           c.Password,
		DNSView:            c.DNSView,
		TTL:                c.TTL,
		TLSVerify:          c.TLSVerify,
		TrustStore:         c.TrustStore,
		TrustStorePassword: c.TrustStorePassword,
		Timeout:            c.Timeout,
		Debug:              c.Debug,
		MaxPages:           maxPages,
		Logger:             logger,
	}
}

func (c Client) toLinesNode() *gotree.Node {
	return c.ToWAPISettings(nil).ToLinesNode()
}

func (c *Client) read(r *reader.Reader) (err error) {
	c.Endpoint = r.String("INFOBLOX_ENDPOINT", reader.ForceLowercase(false))
	c.WAPIVersion = r.String("INFOBLOX_WAPI_VERSION", reader.ForceLowercase(false))
	c.Username = r.String("INFOBLOX_USERNAME", reader.ForceLowercase(false))
	c.Password = r.String("INFOBLOX_PASSWORD", reader.ForceLowercase(false))
	c.DNSView = r.String("INFOBLOX_DNS_VIEW", reader.ForceLowercase(false))

	c.TTL, err = r.Uint32Ptr("INFOBLOX_TTL")
	if err != nil {
		return err
	}

	c.TLSVerify, err = r.BoolPtr("INFOBLOX_TLS_VERIFY")
	if err != nil {
		return err
	}

	c.TrustStore = r.String("INFOBLOX_TRUSTSTORE", reader.ForceLowercase(false))
	c.TrustStorePassword = r.String("INFOBLOX_TRUSTSTORE_PASSWORD",
		reader.ForceLowercase(false))

	c.Timeout, err = r.Duration("HTTP_TIMEOUT")
	if err != nil {
		return err
	}

	c.Debug, err = r.BoolPtr("INFOBLOX_DEBUG")
	if err != nil {
		return err
	}

	c.MaxPages, err = r.Uint32Ptr("INFOBLOX_MAX_PAGES")
	return err
}
