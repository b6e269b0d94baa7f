// Package model defines the core data structures used throughout
// the wikiart-palette application.
//
// # Artwork
//
// Artwork represents one row of an artist's catalog, together with the
// color sampled from its image:
//
//	art := model.NewArtwork(0, "Title", "/en/artist/title")
//	fmt.Println(art.ImageFileName()) // "image_1.jpg"
//
// # RGB
//
// RGB is a sampled color. It converts to the "#rrggbb" form written to
// the palette, and exposes the HSL and luminance values used for sorting:
//
//	c := model.RGB{R: 255, G: 0, B: 0}
//	c.Hex()       // "#ff0000"
//	c.HSL()       // 0, 1, 0.5
//	c.Luminance() // 54.213
//
// # Language
//
// Language selects the catalog locale and the output filename suffix:
//
//	lang := model.ParseLanguage("français")
//	lang.Path()   // "fr"
//	lang.Suffix() // "_fr"
package model
