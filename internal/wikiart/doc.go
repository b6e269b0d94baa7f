// Package wikiart provides functionality to fetch and parse WikiArt pages
// and extract artwork information.
//
// The package handles two page types:
//
//  1. The artist catalog ("all works" text list), giving titles and hrefs
//  2. Artwork pages, giving the URL of the full-size image
//
// # Catalog Parsing
//
//	artworks, err := wikiart.ParseCatalog(strings.NewReader(html))
//	for _, art := range artworks {
//	    fmt.Println(art.Title, art.Href) // e.g. "Water Lilies /en/claude-monet/water-lilies-1916"
//	}
//
// # Fetching
//
// The Scraper combines the HTTP client with the parsers:
//
//	scraper := wikiart.NewScraper(client, "https://www.wikiart.org")
//	artworks, err := scraper.FetchCatalog(ctx, "Claude Monet", model.English)
//	data, err := scraper.FetchImage(ctx, artworks[0].Href)
//
// # Errors
//
//   - ErrArtistNotFound: the catalog page did not answer with a success
//     status; the run should stop.
//   - ErrImageNotFound: an artwork page has no primary image; the artwork
//     should be skipped.
package wikiart
