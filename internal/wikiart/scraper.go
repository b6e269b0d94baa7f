package wikiart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/handiism/wikiart-palette/internal/http"
	"github.com/handiism/wikiart-palette/internal/model"
)

// ErrArtistNotFound is returned when the catalog page of an artist does
// not answer with a success status.
//
// This typically occurs when:
//   - The artist is not in the WikiArt database
//   - The artist name has a typo
var ErrArtistNotFound = errors.New("this artist is not in the WikiArt database or there is a typo")

// ArtistSlug converts an artist display name to its URL slug by
// lowercasing it and replacing spaces with hyphens.
//
//	ArtistSlug("Claude Monet") // "claude-monet"
func ArtistSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// CatalogURL builds the URL of the "all works" text list of an artist.
//
//	CatalogURL("https://www.wikiart.org", model.English, "Claude Monet")
//	// "https://www.wikiart.org/en/claude-monet/all-works/text-list"
func CatalogURL(baseURL string, lang model.Language, artistName string) string {
	return fmt.Sprintf("%s/%s/%s/all-works/text-list", strings.TrimRight(baseURL, "/"), lang.Path(), ArtistSlug(artistName))
}

// Scraper fetches WikiArt pages and extracts catalog and image data.
//
// Every method is a plain sequence of GET requests. Nothing is retried
// and nothing is cached.
//
// Example usage:
//
//	scraper := NewScraper(client, "https://www.wikiart.org")
//
//	artworks, err := scraper.FetchCatalog(ctx, "Claude Monet", model.English)
//	if errors.Is(err, ErrArtistNotFound) {
//	    return
//	}
//
//	for _, art := range artworks {
//	    data, err := scraper.FetchImage(ctx, art.Href)
//	    ...
//	}
type Scraper struct {
	client  *http.Client
	baseURL string
}

// NewScraper creates a new Scraper resolving hrefs against baseURL.
func NewScraper(client *http.Client, baseURL string) *Scraper {
	return &Scraper{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchCatalog retrieves and parses the catalog page of an artist.
//
// Returns ErrArtistNotFound if the page answers with a non-success
// status. An artist with no listed works yields an empty slice and no
// error.
func (s *Scraper) FetchCatalog(ctx context.Context, artistName string, lang model.Language) ([]*model.Artwork, error) {
	catalogURL := CatalogURL(s.baseURL, lang, artistName)

	body, err := s.client.Get(ctx, catalogURL)
	if err != nil {
		var se *http.StatusError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, catalogURL)
		}
		return nil, fmt.Errorf("could not fetch catalog: %w", err)
	}

	return ParseCatalog(bytes.NewReader(body))
}

// ArtworkURL returns the absolute URL of an artwork page.
func (s *Scraper) ArtworkURL(href string) string {
	return s.baseURL + href
}

// FetchImageURL retrieves an artwork page and returns the absolute URL of
// its primary image. Relative image sources are resolved against the
// artwork page URL.
//
// Returns ErrImageNotFound if the page has no primary image or answers
// with a non-success status.
func (s *Scraper) FetchImageURL(ctx context.Context, href string) (string, error) {
	pageURL := s.ArtworkURL(href)

	body, err := s.client.Get(ctx, pageURL)
	if err != nil {
		return "", notFoundOnStatus(err)
	}

	src, err := ParseImageURL(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	return resolve(pageURL, src), nil
}

// FetchImage retrieves the raw bytes of the primary image of an artwork.
//
// Two round trips are needed: the image URL is only known once the
// artwork page has been parsed.
func (s *Scraper) FetchImage(ctx context.Context, href string) ([]byte, error) {
	imageURL, err := s.FetchImageURL(ctx, href)
	if err != nil {
		return nil, err
	}

	data, err := s.client.DownloadBytes(ctx, imageURL)
	if err != nil {
		return nil, notFoundOnStatus(err)
	}

	return data, nil
}

func notFoundOnStatus(err error) error {
	var se *http.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	return err
}

func resolve(pageURL, src string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
