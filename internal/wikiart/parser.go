package wikiart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/wikiart-palette/internal/model"
)

const (
	// catalogRowSelector matches the links of the "all works" text list.
	catalogRowSelector = "li.painting-list-text-row a"

	// primaryImageSelector matches the main image of an artwork page.
	primaryImageSelector = `img[itemprop="image"]`
)

// ErrImageNotFound is returned when an artwork page has no primary image.
//
// This is not fatal for a run: the artwork is skipped and the pipeline
// continues with the next one.
var ErrImageNotFound = errors.New("image not found on artwork page")

// ParseCatalog extracts artworks from an artist's text-list catalog page.
//
// Each row link becomes one Artwork, in document order:
//
//	<li class="painting-list-text-row">
//	    <a href="/en/claude-monet/impression-sunrise">Impression, sunrise</a>
//	    <span>, 1872</span>
//	</li>
//
// The title is the trimmed link text and the href is kept as-is
// (site-relative). Links without an href attribute are ignored.
//
// A page with no rows yields an empty, non-nil slice.
func ParseCatalog(r io.Reader) ([]*model.Artwork, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog HTML: %w", err)
	}

	artworks := make([]*model.Artwork, 0)
	doc.Find(catalogRowSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		title := strings.TrimSpace(s.Text())
		artworks = append(artworks, model.NewArtwork(len(artworks), title, href))
	})

	return artworks, nil
}

// ParseImageURL extracts the src of the primary image of an artwork page.
//
// WikiArt marks the full-size image with itemprop="image":
//
//	<img itemprop="image" src="https://uploads.wikiart.org/images/....jpg">
//
// Returns ErrImageNotFound if no such image (or no src) is present.
func ParseImageURL(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse artwork HTML: %w", err)
	}

	src, ok := doc.Find(primaryImageSelector).First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return "", ErrImageNotFound
	}

	return strings.TrimSpace(src), nil
}
