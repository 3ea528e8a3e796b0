package wapi

import "context"

// GetAuthZones returns all authoritative zones.
func (c *Client) GetAuthZones(ctx context.Context) (
	zones []ZoneAuth, err error) {
	return searchObjects[ZoneAuth](ctx, c, objectZoneAuth, c.newFilter())
}

// GetAuthZonesByDomain returns the authoritative zones for the domain
// name.
func (c *Client) GetAuthZonesByDomain(ctx context.Context,
	domainName string) (zones []ZoneAuth, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "fqdn", ModifierNone, domainName)
	return searchObjects[ZoneAuth](ctx, c, objectZoneAuth, filter)
}

// GetDelegatedZones returns all delegated zones, querying at most
// pageSize results per request and concatenating pages in server order.
func (c *Client) GetDelegatedZones(ctx context.Context, pageSize int) (
	zones []ZoneDelegate, err error) {
	return queryPages[ZoneDelegate](ctx, c, objectZoneDelegate, pageSize)
}

// GetDelegatedZonesByDomain returns the delegated zones for the domain
// name.
func (c *Client) GetDelegatedZonesByDomain(ctx context.Context,
	domainName string) (zones []ZoneDelegate, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "fqdn", ModifierNone, domainName)
	return searchObjects[ZoneDelegate](ctx, c, objectZoneDelegate, filter)
}

// CreateDelegatedZone delegates the domain name to the given name
// servers with the delegation TTL in seconds.
func (c *Client) CreateDelegatedZone(ctx context.Context, domainName string,
	delegateTo []Delegate, delegatedTTL uint32) (zone ZoneDelegate, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return zone, err
	}
	if len(delegateTo) == 0 {
		return zone, checkNotEmpty("", "delegate_to")
	}

	body := map[string]any{
		"fqdn":          domainName,
		"view":          c.dnsView,
		"delegate_to":   delegateTo,
		"delegated_ttl": delegatedTTL,
	}
	return createObject[ZoneDelegate](ctx, c, objectZoneDelegate, body)
}

// ModifyDelegatedZone applies the given parameter changes to every
// delegated zone for the domain name.
func (c *Client) ModifyDelegatedZone(ctx context.Context, domainName string,
	params map[string]any) (zones []ZoneDelegate, err error) {
	matches, err := c.GetDelegatedZonesByDomain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, params)
}

// DeleteDelegatedZone deletes every delegated zone for the domain name
// and returns the deleted references.
func (c *Client) DeleteDelegatedZone(ctx context.Context,
	domainName string) (deletedRefs []string, err error) {
	matches, err := c.GetDelegatedZonesByDomain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
