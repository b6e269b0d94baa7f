package http

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// StatusError is returned when a response status is not 2xx.
//
// Use errors.As to inspect the code:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.Code == 404 {
//	    // page does not exist
//	}
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.Code, e.Status, e.URL)
}

// Client wraps HTTP operations with WikiArt-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Status checking, with non-2xx responses reported as *StatusError
//
// Requests are never retried.
//
// Example usage:
//
//	client := NewClient("wikiart-palette", 60*time.Second)
//
//	// Fetch HTML content
//	html, err := client.GetString(ctx, "https://www.wikiart.org/en/claude-monet/all-works/text-list")
//
//	// Fetch image bytes
//	data, err := client.DownloadBytes(ctx, imageURL)
type Client struct {
	rc *resty.Client
}

// NewClient creates a new HTTP client.
//
// A zero timeout leaves requests unbounded, like the default net/http client.
func NewClient(userAgent string, timeout time.Duration) *Client {
	rc := resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)

	return &Client{rc: rc}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx (a *StatusError)
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/image.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{URL: url, Code: resp.StatusCode(), Status: resp.Status()}
	}

	return resp.Body(), nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like HTML.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Artwork images are small enough to be held in memory; the bytes are
// written verbatim by the downloader and decoded by the sampler.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
