package wapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// queryPages fetches every page of a paged query, at most pageSize
// results per request, and returns the order preserving concatenation
// of all pages. The loop trusts the server pagination contract: it
// terminates when a response carries no next page cursor, and a server
// handing out a repeating cursor would loop until the MaxPages setting
// bound, if any, is reached.
func queryPages[T any](ctx context.Context, c *Client, objectType string,
	pageSize int) (all []T, err error) {
	query := c.newFilter()
	query.Set("_paging", "1")
	query.Set("_max_results", strconv.Itoa(pageSize))

	pages := uint(0)
	for {
		res, err := do[[]T](ctx, c, http.MethodGet, objectType, query, nil)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Result...)

		if res.NextPageID == "" {
			return all, nil
		}

		pages++
		if c.maxPages > 0 && pages >= c.maxPages {
			return nil, fmt.Errorf("%w: %d pages fetched and the server "+
				"returned another page cursor", ErrTooManyPages, pages)
		}

		c.logger.Debug("querying next page id " + res.NextPageID)
		query.Set("_page_id", res.NextPageID)
	}
}
