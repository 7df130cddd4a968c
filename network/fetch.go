package network

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/colorful-cli/colorful/log"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"
)

// RequestIDHeader carries the id logged for every request.
const RequestIDHeader = "X-Request-ID"

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// HTTPFetcher performs GET requests and returns the response body.
type HTTPFetcher struct {
	// Client defaults to the shared Client when nil.
	Client    *http.Client
	UserAgent string
}

// Fetch issues a GET request for url. It is cancelled together with ctx.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = Client
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	entry := log.WithFields(logrus.Fields{"request": id, "url": url})
	entry.Debug("GET")

	resp, err := ctxhttp.Do(ctx, client, req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		entry.Warn(resp.Status)
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", id, err)
	}

	entry.WithField("bytes", len(body)).Debug(resp.Status)
	return body, nil
}
