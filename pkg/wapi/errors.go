package wapi

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// Settings validation errors, returned by New before any I/O.
	ErrEndpointNotSet           = errors.New("endpoint is not set")
	ErrUsernameNotSet           = errors.New("username is not set")
	ErrPasswordNotSet           = errors.New("password is not set")
	ErrTimeoutTooLow            = errors.New("timeout is too low")
	ErrTrustStoreNotSet         = errors.New("trust store path is not set")
	ErrTrustStorePasswordNotSet = errors.New("trust store password is not set")
	ErrTrustStoreFSNotSet       = errors.New("trust store filesystem is not set")

	// Trust material errors, returned by New before any I/O.
	ErrTrustStoreRead    = errors.New("cannot read trust store")
	ErrTrustStoreDecode  = errors.New("cannot decode trust store")
	ErrTrustStoreNoCerts = errors.New("no certificate found in trust store")

	// Per-call transport errors.
	ErrBadHTTPStatus = errors.New("bad HTTP status")
	ErrTooManyPages  = errors.New("too many result pages")

	// Argument validation errors, returned before any network call.
	ErrDomainNameNotSet   = errors.New("domain name is not set")
	ErrDomainNameNotValid = errors.New("domain name is not valid")
	ErrIPNotValid         = errors.New("IP address is not valid")
	ErrIPv4NotValid       = errors.New("IPv4 address is not valid")
	ErrIPv6NotValid       = errors.New("IPv6 address is not valid")
	ErrValueNotSet        = errors.New("value is not set")
	ErrRefNotSet          = errors.New("object reference is not set")
)

// APIError is a structured failure reported by the appliance with a JSON
// body. It is only produced for responses carrying the JSON error content
// type; other failures wrap ErrBadHTTPStatus instead.
// See https://ipam.illinois.edu/wapidoc/#error-handling
type APIError struct {
	Message string `json:"Error"`
	Code    string `json:"code"`
	Text    string `json:"text"`
	// Status is the HTTP status code of the response.
	Status int `json:"-"`
}

func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = e.Text
	}
	s := "appliance error: " + message
	if e.Code != "" {
		s += " (code " + e.Code + ")"
	}
	return s + " (HTTP status " + strconv.Itoa(e.Status) + ")"
}

func checkNotEmpty(value, what string) (err error) {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrValueNotSet, what)
	}
	return nil
}
