package wapi

import "context"

// GetAAAARec returns the quad-A records matching the domain name,
// compared case insensitively.
func (c *Client) GetAAAARec(ctx context.Context, domainName string) (
	records []AAAARecord, err error) {
	return c.GetAAAARecMatching(ctx, domainName, ModifierCaseInsensitive)
}

// GetAAAARecMatching returns the quad-A records matching the domain
// name with the given search modifier.
func (c *Client) GetAAAARecMatching(ctx context.Context, domainName string,
	modifier Modifier) (records []AAAARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	return c.searchAAAARec(ctx, domainName, "", modifier)
}

// GetAAAARecByIP returns the quad-A records holding the IPv6 address.
func (c *Client) GetAAAARecByIP(ctx context.Context, ipv6Address string) (
	records []AAAARecord, err error) {
	err = checkIPv6(ipv6Address)
	if err != nil {
		return nil, err
	}
	return c.searchAAAARec(ctx, "", ipv6Address, ModifierCaseInsensitive)
}

// GetAAAARecWithIP returns the quad-A records matching both the domain
// name and the IPv6 address.
func (c *Client) GetAAAARecWithIP(ctx context.Context,
	domainName, ipv6Address string) (records []AAAARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	err = checkIPv6(ipv6Address)
	if err != nil {
		return nil, err
	}
	return c.searchAAAARec(ctx, domainName, ipv6Address, ModifierCaseInsensitive)
}

func (c *Client) searchAAAARec(ctx context.Context,
	domainName, ipv6Address string, modifier Modifier) (
	records []AAAARecord, err error) {
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, domainName)
	addCriterion(filter, "ipv6addr", ModifierNone, ipv6Address)
	return searchObjects[AAAARecord](ctx, c, objectAAAARecord, filter)
}

// CreateAAAARec creates a quad-A record with the default TTL.
func (c *Client) CreateAAAARec(ctx context.Context,
	domainName, ipv6Address string) (record AAAARecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return record, err
	}
	err = checkIPv6(ipv6Address)
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = domainName
	body["ipv6addr"] = ipv6Address
	return createObject[AAAARecord](ctx, c, objectAAAARecord, body)
}

// ModifyAAAARecName renames every quad-A record matching the domain name.
func (c *Client) ModifyAAAARecName(ctx context.Context,
	domainName, newDomainName string) (records []AAAARecord, err error) {
	err = checkDomain(newDomainName)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetAAAARec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"name": newDomainName})
}

// ModifyAAAARecIP changes the IPv6 address of every quad-A record
// matching the domain name and existing IPv6 address.
func (c *Client) ModifyAAAARecIP(ctx context.Context,
	domainName, ipv6Address, newIPv6Address string) (
	records []AAAARecord, err error) {
	err = checkIPv6(newIPv6Address)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetAAAARecWithIP(ctx, domainName, ipv6Address)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"ipv6addr": newIPv6Address})
}

// DeleteAAAARec deletes every quad-A record matching the domain name
// and returns the deleted references.
func (c *Client) DeleteAAAARec(ctx context.Context, domainName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetAAAARec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}

// DeleteAAAARecWithIP deletes every quad-A record matching the domain
// name and IPv6 address and returns the deleted references.
func (c *Client) DeleteAAAARecWithIP(ctx context.Context,
	domainName, ipv6Address string) (deletedRefs []string, err error) {
	matches, err := c.GetAAAARecWithIP(ctx, domainName, ipv6Address)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
