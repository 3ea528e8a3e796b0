package wapi

import "context"

// GetCNameRec returns the canonical records matching the alias name,
// compared case insensitively.
func (c *Client) GetCNameRec(ctx context.Context, aliasName string) (
	records []CNameRecord, err error) {
	return c.GetCNameRecMatching(ctx, aliasName, ModifierCaseInsensitive)
}

// GetCNameRecMatching returns the canonical records matching the alias
// name with the given search modifier.
func (c *Client) GetCNameRecMatching(ctx context.Context, aliasName string,
	modifier Modifier) (records []CNameRecord, err error) {
	err = checkDomain(aliasName)
	if err != nil {
		return nil, err
	}
	return c.searchCNameRec(ctx, aliasName, "", modifier)
}

// GetCNameRecWithCanonical returns the canonical records matching both
// the alias name and the canonical name.
func (c *Client) GetCNameRecWithCanonical(ctx context.Context,
	aliasName, canonicalName string) (records []CNameRecord, err error) {
	err = checkDomain(aliasName)
	if err != nil {
		return nil, err
	}
	err = checkDomain(canonicalName)
	if err != nil {
		return nil, err
	}
	return c.searchCNameRec(ctx, aliasName, canonicalName, ModifierCaseInsensitive)
}

// GetCNameRecByCanonical returns the canonical records pointing at the
// canonical name, compared case insensitively.
func (c *Client) GetCNameRecByCanonical(ctx context.Context,
	canonicalName string) (records []CNameRecord, err error) {
	err = checkDomain(canonicalName)
	if err != nil {
		return nil, err
	}
	return c.searchCNameRec(ctx, "", canonicalName, ModifierCaseInsensitive)
}

func (c *Client) searchCNameRec(ctx context.Context,
	aliasName, canonicalName string, modifier Modifier) (
	records []CNameRecord, err error) {
	filter := c.newFilter()
	addCriterion(filter, "name", modifier, aliasName)
	addCriterion(filter, "canonical", modifier, canonicalName)
	return searchObjects[CNameRecord](ctx, c, objectCNameRecord, filter)
}

// CreateCNameRec creates a canonical record with the default TTL.
// Canonical records must always point at another domain name, never
// directly at an IP address.
func (c *Client) CreateCNameRec(ctx context.Context,
	aliasName, canonicalName string) (record CNameRecord, err error) {
	err = checkDomain(aliasName)
	if err != nil {
		return record, err
	}
	err = checkDomain(canonicalName)
	if err != nil {
		return record, err
	}

	body := c.newTTLReq()
	body["name"] = aliasName
	body["canonical"] = canonicalName
	return createObject[CNameRecord](ctx, c, objectCNameRecord, body)
}

// ModifyCNameRecName renames the alias of every canonical record
// matching the alias name.
func (c *Client) ModifyCNameRecName(ctx context.Context,
	aliasName, newAliasName string) (records []CNameRecord, err error) {
	err = checkDomain(newAliasName)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetCNameRec(ctx, aliasName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"name": newAliasName})
}

// ModifyCNameRecCanonical repoints every canonical record matching the
// alias name at a new canonical name.
func (c *Client) ModifyCNameRecCanonical(ctx context.Context,
	aliasName, newCanonicalName string) (records []CNameRecord, err error) {
	err = checkDomain(newCanonicalName)
	if err != nil {
		return nil, err
	}
	matches, err := c.GetCNameRec(ctx, aliasName)
	if err != nil {
		return nil, err
	}
	return modifyRecords(ctx, c, matches, map[string]any{"canonical": newCanonicalName})
}

// DeleteCNameRec deletes every canonical record matching the alias name
// and returns the deleted references.
func (c *Client) DeleteCNameRec(ctx context.Context, aliasName string) (
	deletedRefs []string, err error) {
	matches, err := c.GetCNameRec(ctx, aliasName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}

// DeleteCNameRecWithCanonical deletes every canonical record matching
// both the alias and canonical names and returns the deleted references.
func (c *Client) DeleteCNameRecWithCanonical(ctx context.Context,
	aliasName, canonicalName string) (deletedRefs []string, err error) {
	matches, err := c.GetCNameRecWithCanonical(ctx, aliasName, canonicalName)
	if err != nil {
		return nil, err
	}
	return deleteRecords(ctx, c, matches)
}
