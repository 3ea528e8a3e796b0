package wapi

import "context"

// GetPTRRecByIP returns the pointer records for the IP address, IPv4 or
// IPv6; the filter field name follows the address family.
func (c *Client) GetPTRRecByIP(ctx context.Context, ipAddress string) (
	records []PTRRecord, err error) {
	field, err := addrField(ipAddress)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, field, ModifierNone, ipAddress)
	return searchObjects[PTRRecord](ctx, c, objectPTRRecord, filter)
}

// GetPTRRecByDomain returns the pointer records for the pointer domain
// name, compared case insensitively.
func (c *Client) GetPTRRecByDomain(ctx context.Context, ptrdname string) (
	records []PTRRecord, err error) {
	err = checkDomain(ptrdname)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "ptrdname", ModifierCaseInsensitive, ptrdname)
	return searchObjects[PTRRecord](ctx, c, objectPTRRecord, filter)
}

// CreatePTRRec creates a pointer record for the IP address with the
// default TTL. The record name is the reverse mapping name of the
// address, in-addr.arpa or ip6.arpa depending on the address family.
func (c *Client) CreatePTRRec(ctx context.Context,
	ipAddress, ptrdname string) (record PTRRecord, err error) {
	err = checkDomain(ptrdname)
	if err != nil {
		return record, err
	}
	field, err := addrField(ipAddress)
	if err != nil {
		return record, err
	}
	name, err := reverseMapName(ipAddress)
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = name
	body["ptrdname"] = ptrdname
	body[field] = ipAddress
	return createObject[PTRRecord](ctx, c, objectPTRRecord, body)
}

// ModifyPTRRec changes the pointer domain name of every pointer record
// for the IP address.
func (c *Client) ModifyPTRRec(ctx context.Context,
	ipAddress, newPtrdname string) (records []PTRRecord, err error) {
	err = checkDomain(newPtrdname)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetPTRRecByIP(ctx, ipAddress)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"ptrdname": newPtrdname})
}

// DeletePTRRecByIP deletes every pointer record for the IP address and
// returns the deleted references.
func (c *Client) DeletePTRRecByIP(ctx context.Context, ipAddress string) (
	deletedRefs []string, err error) {
	matches, err := c.GetPTRRecByIP(ctx, ipAddress)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}

// DeletePTRRecByDomain deletes every pointer record for the pointer
// domain name and returns the deleted references.
func (c *Client) DeletePTRRecByDomain(ctx context.Context, ptrdname string) (
	deletedRefs []string, err error) {
	matches, err := c.GetPTRRecByDomain(ctx, ptrdname)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
