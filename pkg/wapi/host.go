package wapi

import "context"

// GetHostRec returns the host records matching the domain name,
// compared case insensitively.
func (c *Client) GetHostRec(ctx context.Context, domainName string) (
	records []HostRecord, err error) {
	return c.GetHostRecMatching(ctx, domainName, ModifierCaseInsensitive)
}

// GetHostRecMatching returns the host records matching the domain name
// with the given search modifier.
func (c *Client) GetHostRecMatching(ctx context.Context, domainName string,
	modifier Modifier) (records []HostRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, domainName)
	return searchObjects[HostRecord](ctx, c, objectHostRecord, filter)
}

// CreateHostRec creates a host record holding the given IPv4 addresses
// with the default TTL.
func (c *Client) CreateHostRec(ctx context.Context, domainName string,
	ipv4Addresses []string) (record HostRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return record, err
	}
	addrs := make([]map[string]string, len(ipv4Addresses))
	for i, address := range ipv4Addresses {
		err = checkIPv4(address)
		if err != nil {
			return record, err
		}
		addrs[i] = map[string]string{"ipv4addr": address}
	}

	body := c.newTTLReq()
	body["name"] = domainName
	body["ipv4addrs"] = addrs
	return createObject[HostRecord](ctx, c, objectHostRecord, body)
}

// DeleteHostRec deletes every host record matching the domain name and
// returns the deleted references.
func (c *Client) DeleteHostRec(ctx context.Context, domainName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetHostRec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
