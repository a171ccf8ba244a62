// Package httpclient provides the resty client shared by the outbound REST calls.
package httpclient

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// New returns a resty client with retries disabled. A zero timeout waits
// indefinitely.
func New(timeout time.Duration) *resty.Client {
	c := resty.New().
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// StatusError reports a non-2xx response from a remote service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.StatusCode, e.Body)
}

// CheckResponse returns a *StatusError when resp is not a 2xx response.
func CheckResponse(service string, resp *resty.Response) error {
	if resp == nil {
		return fmt.Errorf("%s: empty response", service)
	}
	if resp.IsSuccess() {
		return nil
	}
	body := truncate(strings.TrimSpace(resp.String()), maxErrorBody)
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
