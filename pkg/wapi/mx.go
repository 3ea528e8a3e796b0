package wapi

import "context"

// GetMXRec returns the mail exchange records matching the domain name,
// compared case insensitively.
func (c *Client) GetMXRec(ctx context.Context, domainName string) (
	records []MXRecord, err error) {
	return c.GetMXRecMatching(ctx, domainName, ModifierCaseInsensitive)
}

// GetMXRecMatching returns the mail exchange records matching the
// domain name with the given search modifier.
func (c *Client) GetMXRecMatching(ctx context.Context, domainName string,
	modifier Modifier) (records []MXRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, domainName)
	return searchObjects[MXRecord](ctx, c, objectMXRecord, filter)
}

// GetMXRecWithExchanger returns the mail exchange records matching the
// domain name and mail exchanger host.
func (c *Client) GetMXRecWithExchanger(ctx context.Context,
	domainName, mailExchanger string) (records []MXRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	err = checkDomain(mailExchanger)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "name", ModifierCaseInsensitive, domainName)
	addCriterion(filter, "mail_exchanger", ModifierNone, mailExchanger)
	return searchObjects[MXRecord](ctx, c, objectMXRecord, filter)
}

// CreateMXRec creates a mail exchange record with the default TTL. The
// mail exchanger host must map to address records, never to canonical
// records. Smaller preference values are more preferred when several
// mail servers are available.
func (c *Client) CreateMXRec(ctx context.Context,
	domainName, mailExchanger string, preference uint16) (
	record MXRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return record, err
	}
	err = checkDomain(mailExchanger)
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = domainName
	body["mail_exchanger"] = mailExchanger
	body["preference"] = preference
	return createObject[MXRecord](ctx, c, objectMXRecord, body)
}

// ModifyMXRecName renames every mail exchange record matching the
// domain name.
func (c *Client) ModifyMXRecName(ctx context.Context,
	domainName, newDomainName string) (records []MXRecord, err error) {
	err = checkDomain(newDomainName)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetMXRec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"name": newDomainName})
}

// DeleteMXRec deletes every mail exchange record matching the domain
// name and returns the deleted references.
func (c *Client) DeleteMXRec(ctx context.Context, domainName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetMXRec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}

// DeleteMXRecWithExchanger deletes every mail exchange record matching
// the domain name and mail exchanger and returns the deleted references.
func (c *Client) DeleteMXRecWithExchanger(ctx context.Context,
	domainName, mailExchanger string) (deletedRefs []string, err error) {
	matches, err := c.GetMXRecWithExchanger(ctx, domainName, mailExchanger)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
