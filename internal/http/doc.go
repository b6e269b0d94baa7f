// Package http provides an HTTP client configured for WikiArt requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Status checking via StatusError
//
// It is built on go-resty/resty. No retry or caching is configured: every
// call is a single round trip.
//
// # Basic Usage
//
//	client := http.NewClient("wikiart-palette", time.Minute)
//
//	// Fetch HTML page
//	html, err := client.GetString(ctx, "https://www.wikiart.org/en/claude-monet/all-works/text-list")
//
//	// Download image bytes
//	data, err := client.DownloadBytes(ctx, imageURL)
package http
