package wapi

import (
	"context"
	"fmt"
)

// DeleteRef deletes the object with the given reference and returns the
// deleted reference. Deleting a reference that no longer exists fails
// with the error the appliance reports, never a silent success.
func (c *Client) DeleteRef(ctx context.Context, ref Ref) (
	deletedRef string, err error) {
	if ref == "" {
		return "", fmt.Errorf("%w", ErrRefNotSet)
	}
	c.logger.Warn("deleting record " + string(ref))
	return deleteObject(ctx, c, ref)
}

// ModifyTTL overrides the time to live of the object with the given
// reference, setting the use_ttl flag so the value takes effect.
func (c *Client) ModifyTTL(ctx context.Context, ref Ref, newTTL uint32) (
	record TTLRecord, err error) {
	if ref == "" {
		return record, fmt.Errorf("%w", ErrRefNotSet)
	}
	c.logger.Warn(fmt.Sprintf("changing TTL of record %s to %d seconds", ref, newTTL))

	body := map[string]any{
		"ttl":     newTTL,
		"use_ttl": true,
	}
	return modifyObject[TTLRecord](ctx, c, ref, body)
}
