package wapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// WAPI object types of the records and zones this client manages.
const (
	objectARecord      = "record:a"
	objectAAAARecord   = "record:aaaa"
	objectCNameRecord  = "record:cname"
	objectHostRecord   = "record:host"
	objectMXRecord     = "record:mx"
	objectPTRRecord    = "record:ptr"
	objectTXTRecord    = "record:txt"
	objectZoneAuth     = "zone_auth"
	objectZoneDelegate = "zone_delegated"
)

// The four primitives every record operation is built from.

func searchObjects[T any](ctx context.Context, c *Client, objectType string,
	filter url.Values) (objects []T, err error) {
	res, err := do[[]T](ctx, c, http.MethodGet, objectType, filter, nil)
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

func createObject[T any](ctx context.Context, c *Client, objectType string,
	body map[string]any) (object T, err error) {
	res, err := do[T](ctx, c, http.MethodPost, objectType, nil, body)
	if err != nil {
		return object, err
	}
	return res.Result, nil
}

func modifyObject[T any](ctx context.Context, c *Client, ref Ref,
	body map[string]any) (object T, err error) {
	res, err := do[T](ctx, c, http.MethodPut, string(ref), nil, body)
	if err != nil {
		return object, err
	}
	return res.Result, nil
}

func deleteObject(ctx context.Context, c *Client, ref Ref) (
	deletedRef string, err error) {
	res, err := do[string](ctx, c, http.MethodDelete, string(ref), nil, nil)
	if err != nil {
		return "", err
	}
	return res.Result, nil
}

// modifyRecords applies the same field changes to each record, in the
// order the records were returned by the search that found them. The
// first failing update aborts the remaining ones; records already
// modified are not rolled back.
func modifyRecords[T Record](ctx context.Context, c *Client, records []T,
	changes map[string]any) (modified []T, err error) {
	modified = make([]T, 0, len(records))
	for _, record := range records {
		c.logger.Warn("modifying record " + string(record.Reference()))
		object, err := modifyObject[T](ctx, c, record.Reference(), changes)
		if err != nil {
			return nil, fmt.Errorf("modifying record %s: %w",
				record.Reference(), err)
		}
		modified = append(modified, object)
	}
	return modified, nil
}

// deleteRecords deletes each record sequentially and returns the
// references deleted. Same fail fast, no rollback semantics as
// modifyRecords.
func deleteRecords[T Record](ctx context.Context, c *Client, records []T) (
	deletedRefs []string, err error) {
	deletedRefs = make([]string, 0, len(records))
	for _, record := range records {
		c.logger.Warn("deleting record " + string(record.Reference()))
		deletedRef, err := deleteObject(ctx, c, record.Reference())
		if err != nil {
			return nil, fmt.Errorf("deleting record %s: %w",
				record.Reference(), err)
		}
		deletedRefs = append(deletedRefs, deletedRef)
	}
	return deletedRefs, nil
}
