package model

import "fmt"

// Artwork represents a single entry of an artist's WikiArt catalog.
//
// Artwork carries everything the pipeline learns about one painting:
//   - Index and Href, from the catalog text list
//   - Title, written to the titles file
//   - Color, filled in once the artwork image has been sampled
//
// Keeping the sampled color on the artwork itself means a skipped
// artwork (no image on its page) never shifts the colors of the
// artworks after it.
//
// Example:
//
//	art := NewArtwork(0, "The Starry Night", "/en/vincent-van-gogh/the-starry-night-1889")
//	art.ImageFileName() // "image_1.jpg"
type Artwork struct {
	// Index is the 0-based position of the artwork in the catalog listing.
	Index int

	// Title is the trimmed link text of the catalog row.
	Title string

	// Href is the site-relative URL of the artwork page.
	Href string

	// Color is the representative color of the artwork image.
	// Nil until sampled, and left nil when the page has no image.
	Color *RGB
}

// NewArtwork creates an unsampled Artwork.
func NewArtwork(index int, title, href string) *Artwork {
	return &Artwork{
		Index: index,
		Title: title,
		Href:  href,
	}
}

// HasColor returns true if a color has been sampled for the artwork.
func (a *Artwork) HasColor() bool {
	return a.Color != nil
}

// ImageFileName returns the file name used when the artwork image is
// downloaded. Numbering is 1-based and follows the catalog order.
func (a *Artwork) ImageFileName() string {
	return ImageFileName(a.Index)
}

// ImageFileName returns "image_<index+1>.jpg".
func ImageFileName(index int) string {
	return fmt.Sprintf("image_%d.jpg", index+1)
}

// Titles returns the titles of artworks in order.
func Titles(artworks []*Artwork) []string {
	titles := make([]string, len(artworks))
	for i, a := range artworks {
		titles[i] = a.Title
	}
	return titles
}

// Hrefs returns the hrefs of artworks in order.
func Hrefs(artworks []*Artwork) []string {
	hrefs := make([]string, len(artworks))
	for i, a := range artworks {
		hrefs[i] = a.Href
	}
	return hrefs
}

// SampledColors returns the hex codes of sampled artworks in catalog
// order, skipping artworks without a color.
func SampledColors(artworks []*Artwork) []string {
	var hexes []string
	for _, a := range artworks {
		if a.HasColor() {
			hexes = append(hexes, a.Color.Hex())
		}
	}
	return hexes
}
