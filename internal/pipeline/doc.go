// Package pipeline provides the orchestration logic turning an artist's
// WikiArt catalog into a color palette.
//
// # Manager
//
// The Manager coordinates the entire run:
//
//  1. Fetch the artist catalog and save titles and links
//  2. Download full-size images (optional)
//  3. Sample the average color of every artwork
//  4. Sort the colors and render the palette SVG
//
// # Basic Usage
//
//	manager := pipeline.NewManager(settings, afero.NewOsFs(), func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx)
//	if errors.Is(err, wikiart.ErrArtistNotFound) {
//	    os.Exit(1)
//	}
//	fmt.Println(result.Palette.SVGPath)
//
// # Concurrency
//
// Artworks are processed one at a time by default. Setting
// MaxConcurrentFetches above 1 fetches that many artworks in parallel;
// results are stored per artwork so file numbering and palette order do
// not depend on completion order.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The callback may be invoked from several goroutines at once.
//
// # Errors
//
// An artwork page without a primary image is logged as a warning and
// skipped. Any other failure (network, decoding, file system) stops the
// run and is returned wrapped.
package pipeline
