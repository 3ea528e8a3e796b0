package wapi

import "context"

// GetTXTRec returns the text records matching the domain name, compared
// case insensitively.
func (c *Client) GetTXTRec(ctx context.Context, domainName string) (
	records []TXTRecord, err error) {
	return c.GetTXTRecMatching(ctx, domainName, ModifierCaseInsensitive)
}

// GetTXTRecMatching returns the text records matching the domain name
// with the given search modifier.
func (c *Client) GetTXTRecMatching(ctx context.Context, domainName string,
	modifier Modifier) (records []TXTRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return nil, err
	}
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, domainName)
	return searchObjects[TXTRecord](ctx, c, objectTXTRecord, filter)
}

// CreateTXTRec creates a text record with the default TTL.
func (c *Client) CreateTXTRec(ctx context.Context,
	domainName, text string) (record TXTRecord, err error) {
	err = checkDomain(domainName)
	if err != nil {
		return record, err
	}
	err = checkNotEmpty(text, "text")
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = domainName
	body["text"] = text
	return createObject[TXTRecord](ctx, c, objectTXTRecord, body)
}

// ModifyTXTRec changes the text of every text record matching the
// domain name.
func (c *Client) ModifyTXTRec(ctx context.Context,
	domainName, newText string) (records []TXTRecord, err error) {
	err = checkNotEmpty(newText, "text")
	if err != nil {
		return nil, err
	}
	matches, err := c.GetTXTRec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"text": newText})
}

// DeleteTXTRec deletes every text record matching the domain name and
// returns the deleted references.
func (c *Client) DeleteTXTRec(ctx context.Context, domainName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetTXTRec(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
