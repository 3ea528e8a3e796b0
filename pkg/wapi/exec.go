package wapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// do executes a single WAPI call and is the only place touching raw
// HTTP semantics; every operation of the client is a composition over
// it. A successful response is decoded into the result envelope. A
// failed response with the JSON error content type is decoded into an
// *APIError; any other failure wraps ErrBadHTTPStatus or the underlying
// transport error. Errors are never retried here.
func do[T any](ctx context.Context, c *Client, method, objectPath string,
	query url.Values, body any) (res result[T], err error) {
	requestURL := c.baseURL + c.wapiVersion + "/" + objectPath
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return res, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return res, fmt.Errorf("creating http request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return res, fmt.Errorf("doing http request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusOK &&
		response.StatusCode < http.StatusMultipleChoices {
		decoder := json.NewDecoder(response.Body)
		err = decoder.Decode(&res)
		if err != nil {
			return res, fmt.Errorf("decoding response body: %w", err)
		}
		return res, nil
	}

	return res, decodeError(response)
}

// decodeError maps a non-success response to an error, depending on the
// response content type as documented by the WAPI error handling.
func decodeError(response *http.Response) (err error) {
	contentType := response.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "application/json" {
		return fmt.Errorf("%w: %s", ErrBadHTTPStatus, response.Status)
	}

	apiError := &APIError{Status: response.StatusCode}
	decoder := json.NewDecoder(response.Body)
	decodeErr := decoder.Decode(apiError)
	if decodeErr != nil {
		return fmt.Errorf("%w: %s: decoding error body: %w",
			ErrBadHTTPStatus, response.Status, decodeErr)
	}
	return apiError
}
