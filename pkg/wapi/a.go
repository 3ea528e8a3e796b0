package wapi

import "context"

// GetARec returns the address records matching the domain name, compared
// case insensitively.
func (c *Client) GetARec(ctx context.Context, domainName string) (
	records []ARecord, err error) {
	return c.GetARecMatching(ctx, domainName, ModifierCaseInsensitive)
}

// GetARecMatching returns the address records matching the domain name
// with the given search modifier.
func (c *Client) GetARecMatching(ctx context.Context, domainName string,
	modifier Modifier) (records []ARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	return c.searchARec(ctx, domainName, "", modifier)
}

// GetARecByIP returns the address records holding the IPv4 address.
func (c *Client) GetARecByIP(ctx context.Context, ipv4Address string) (
	records []ARecord, err error) {
	err = checkIPv4(ipv4Address)
	if err != nil {
		return nil, err
	}
	return c.searchARec(ctx, "", ipv4Address, ModifierCaseInsensitive)
}

// GetARecWithIP returns the address records matching both the domain
// name and the IPv4 address.
func (c *Client) GetARecWithIP(ctx context.Context,
	domainName, ipv4Address string) (records []ARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	err = checkIPv4(ipv4Address)
	if err != nil {
		return nil, err
	}
	return c.searchARec(ctx, domainName, ipv4Address, ModifierCaseInsensitive)
}

func (c *Client) searchARec(ctx context.Context, domainName, ipv4Address string,
	modifier Modifier) (records []ARecord, err error) {
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, domainName)
	addCriterion(filter, "ipv4addr", ModifierNone, ipv4Address)
	return searchObjects[ARecord](ctx, c, objectARecord, filter)
}

// CreateARec creates an address record with the default TTL.
func (c *Client) CreateARec(ctx context.Context,
	domainName, ipv4Address string) (record ARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return record, err
	}
	err = checkIPv4(ipv4Address)
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = domainName
	body["ipv4addr"] = ipv4Address
	return createObject[ARecord](ctx, c, objectARecord, body)
}

// ModifyARecName renames every address record matching the domain name.
func (c *Client) ModifyARecName(ctx context.Context,
	domainName, newDomainName string) (records []ARecord, err error) {
	err = checkDomain(newDomainName)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetARec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"name": newDomainName})
}

// ModifyARecIP changes the IPv4 address of every address record
// matching the domain name and existing IPv4 address.
func (c *Client) ModifyARecIP(ctx context.Context,
	domainName, ipv4Address, newIPv4Address string) (
	records []ARecord, err error) {
	err = checkIPv4(newIPv4Address)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetARecWithIP(ctx, domainName, ipv4Address)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"ipv4addr": newIPv4Address})
}

// DeleteARec deletes every address record matching the domain name and
// returns the deleted references.
func (c *Client) DeleteARec(ctx context.Context, domainName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetARec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}

// DeleteARecWithIP deletes every address record matching the domain
// name and IPv4 address and returns the deleted references.
func (c *Client) DeleteARecWithIP(ctx context.Context,
	domainName, ipv4Address string) (deletedRefs []string, err error) {
	matches, err := c.GetARecWithIP(ctx, domainName, ipv4Address)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
