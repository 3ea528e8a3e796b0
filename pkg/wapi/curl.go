package wapi

import (
	"bytes"
	"io"
	"net/http"
	"sort"
	"strings"
)

// curlRoundTripper renders every request as an equivalent curl command
// line and every response as a single status line, both emitted to the
// injected logger. It never alters request or response semantics.
type curlRoundTripper struct {
	proxied http.RoundTripper
	logger  Logger
}

func (crt *curlRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	crt.logger.Debug(requestToCurl(request))

	response, err = crt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	crt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToCurl(request *http.Request) (s string) {
	parts := []string{"curl", "-sSk"}

	if request.Method != http.MethodGet {
		parts = append(parts, "-X", request.Method)
	}

	keys := make([]string, 0, len(request.Header))
	for key := range request.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := strings.Join(request.Header.Values(key), ",")
		if key == "Authorization" {
			// credentials are never logged
			value = "[redacted]"
		}
		parts = append(parts, "-H", singleQuoted(key+": "+value))
	}

	if request.Body != nil {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		parts = append(parts, "--data", singleQuoted(bodyString))
	}

	parts = append(parts, singleQuoted(request.URL.String()))
	return strings.Join(parts, " ")
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func singleQuoted(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	if err != nil {
		bodyString = "error reading body: " + err.Error()
	} else {
		bodyString = strings.TrimSpace(string(b))
		_ = body.Close()
		newBody = io.NopCloser(bytes.NewBuffer(b))
	}
	return newBody, bodyString
}
