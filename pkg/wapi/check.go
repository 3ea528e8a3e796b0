package wapi

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

func checkDomain(domainName string) (err error) {
	if domainName == "" {
		return fmt.Errorf("%w", ErrDomainNameNotSet)
	}
	_, ok := dns.IsDomainName(domainName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrDomainNameNotValid, domainName)
	}
	return nil
}

func checkIPv4(address string) (err error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIPv4NotValid, err)
	}
	if !addr.Is4() {
		return fmt.Errorf("%w: %q is not IPv4", ErrIPv4NotValid, address)
	}
	return nil
}

func checkIPv6(address string) (err error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIPv6NotValid, err)
	}
	if !addr.Is6() || addr.Is4In6() {
		return fmt.Errorf("%w: %q is not IPv6", ErrIPv6NotValid, address)
	}
	return nil
}

// addrField returns the record field name matching the address family
// of the given IP literal, either "ipv4addr" or "ipv6addr".
func addrField(address string) (field string, err error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIPNotValid, err)
	}
	if addr.Is4() {
		return "ipv4addr", nil
	}
	return "ipv6addr", nil
}

// reverseMapName builds the reverse mapping zone name of an IP address,
// for example 5.0.0.10.in-addr.arpa for 10.0.0.5, in the format the
// appliance expects for pointer record names.
func reverseMapName(address string) (name string, err error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIPNotValid, err)
	}
	arpa, err := dns.ReverseAddr(addr.String())
	if err != nil {
		return "", fmt.Errorf("building reverse mapping name: %w", err)
	}
	return strings.TrimSuffix(arpa, "."), nil
}
