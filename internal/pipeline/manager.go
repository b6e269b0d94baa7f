package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/http"
	ioutils "github.com/handiism/wikiart-palette/internal/io"
	"github.com/handiism/wikiart-palette/internal/model"
	"github.com/handiism/wikiart-palette/internal/palette"
	"github.com/handiism/wikiart-palette/internal/wikiart"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	titlesFileBase = "artworks_titles"
	linksFileBase  = "artworks_webpage_urls"

	// ImagesDir is the subfolder of the output path receiving downloads.
	ImagesDir = "download_imgs"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Catalog is the outcome of the catalog step.
type Catalog struct {
	Artworks   []*model.Artwork
	TitlesPath string
	LinksPath  string
}

// Result lists everything a run produced.
type Result struct {
	Catalog    *Catalog
	ImagePaths []string
	Palette    *palette.Output
	HexCodes   []string
}

// Manager coordinates a palette run.
type Manager struct {
	settings     *config.Settings
	fs           afero.Fs
	scraper      *wikiart.Scraper
	imageService *ioutils.ImageService
	renderer     *palette.Renderer

	totalItems int32
	doneItems  int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new pipeline Manager writing to fs.
func NewManager(settings *config.Settings, fs afero.Fs, onProgress func(ProgressEvent)) *Manager {
	client := http.NewClient(settings.UserAgent, settings.Timeout())

	return &Manager{
		settings:     settings,
		fs:           fs,
		scraper:      wikiart.NewScraper(client, settings.BaseURL),
		imageService: ioutils.NewImageService(),
		renderer:     palette.NewRenderer(fs),
		onProgress:   onProgress,
	}
}

// Run executes the whole pipeline: catalog, optional download, color
// sampling and palette rendering.
//
// Returns wikiart.ErrArtistNotFound (wrapped) when the artist lookup
// fails; no file is written in that case.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	catalog, err := m.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Catalog: catalog}

	if len(catalog.Artworks) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No artworks listed for %s, nothing to render", m.settings.ArtistName), Level: LevelWarning})
		return result, nil
	}

	if m.settings.DownloadImages {
		result.ImagePaths, err = m.DownloadImages(ctx, catalog.LinksPath)
		if err != nil {
			return nil, err
		}
	}

	if err := m.SampleColors(ctx, catalog.Artworks); err != nil {
		return nil, err
	}

	hexes := model.SampledColors(catalog.Artworks)
	out, sorted, err := m.RenderPalette(hexes)
	if err != nil {
		return nil, err
	}
	result.Palette = out
	result.HexCodes = sorted

	return result, nil
}

// FetchCatalog fetches the artist catalog and writes the titles and links
// files to the output path.
func (m *Manager) FetchCatalog(ctx context.Context) (*Catalog, error) {
	lang := m.settings.ToLanguage()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching catalog: %s", wikiart.CatalogURL(m.settings.BaseURL, lang, m.settings.ArtistName)), Level: LevelVerbose})

	artworks, err := m.scraper.FetchCatalog(ctx, m.settings.ArtistName, lang)
	if err != nil {
		if errors.Is(err, wikiart.ErrArtistNotFound) {
			m.progress(ProgressEvent{Message: "This artist is not in the WikiArt database or there is a typo.", Level: LevelError})
		}
		return nil, err
	}

	if err := ioutils.EnsureDir(m.fs, m.settings.OutputPath); err != nil {
		return nil, fmt.Errorf("could not create output folder: %w", err)
	}

	titlesPath, err := ioutils.UniqueFileName(m.fs, m.settings.OutputPath, titlesFileBase+lang.Suffix(), ".txt")
	if err != nil {
		return nil, err
	}
	if err := ioutils.WriteLines(m.fs, titlesPath, model.Titles(artworks)); err != nil {
		return nil, fmt.Errorf("could not write titles: %w", err)
	}

	linksPath, err := ioutils.UniqueFileName(m.fs, m.settings.OutputPath, linksFileBase+lang.Suffix(), ".json")
	if err != nil {
		return nil, err
	}
	if err := ioutils.WriteJSON(m.fs, linksPath, model.Hrefs(artworks)); err != nil {
		return nil, fmt.Errorf("could not write links: %w", err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d artworks for %s", len(artworks), m.settings.ArtistName), Level: LevelInfo})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Titles file: %s", titlesPath), Level: LevelVerbose})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Links file: %s", linksPath), Level: LevelVerbose})

	return &Catalog{Artworks: artworks, TitlesPath: titlesPath, LinksPath: linksPath}, nil
}

// DownloadImages downloads the primary image of every artwork listed in the
// links file to the download_imgs subfolder.
//
// Returns the written paths in link order. Artworks without an image are
// skipped and leave no entry.
func (m *Manager) DownloadImages(ctx context.Context, linksPath string) ([]string, error) {
	var hrefs []string
	if err := ioutils.ReadJSON(m.fs, linksPath, &hrefs); err != nil {
		return nil, fmt.Errorf("could not read links file %s: %w", linksPath, err)
	}

	dir := filepath.Join(m.settings.OutputPath, ImagesDir)
	if err := ioutils.EnsureDir(m.fs, dir); err != nil {
		return nil, fmt.Errorf("could not create images folder: %w", err)
	}

	paths := make([]string, len(hrefs))
	m.resetProgress(len(hrefs))

	err := m.forEach(ctx, len(hrefs), func(ctx context.Context, i int) error {
		data, err := m.scraper.FetchImage(ctx, hrefs[i])
		if err != nil {
			if errors.Is(err, wikiart.ErrImageNotFound) {
				atomic.AddInt32(&m.doneItems, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Image not found for URL: %s", m.scraper.ArtworkURL(hrefs[i])), Level: LevelWarning})
				return nil
			}
			return fmt.Errorf("could not download %s: %w", hrefs[i], err)
		}

		data, err = m.prepareImage(data)
		if err != nil {
			return fmt.Errorf("could not re-encode %s: %w", hrefs[i], err)
		}

		path := filepath.Join(dir, model.ImageFileName(i))
		if err := ioutils.WriteFile(m.fs, path, data); err != nil {
			return fmt.Errorf("could not save %s: %w", path, err)
		}
		paths[i] = path

		done := atomic.AddInt32(&m.doneItems, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded (%d/%d) : %s", done, len(hrefs), path), Level: LevelInfo})
		return nil
	})
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %d/%d images to %s", len(written), len(hrefs), dir), Level: LevelSuccess})
	return written, nil
}

// SampleColors stores the average color of every artwork's primary image
// on the artwork itself. Artworks without an image keep a nil Color.
func (m *Manager) SampleColors(ctx context.Context, artworks []*model.Artwork) error {
	m.resetProgress(len(artworks))

	err := m.forEach(ctx, len(artworks), func(ctx context.Context, i int) error {
		art := artworks[i]
		data, err := m.scraper.FetchImage(ctx, art.Href)
		if err != nil {
			if errors.Is(err, wikiart.ErrImageNotFound) {
				atomic.AddInt32(&m.doneItems, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Image not found for URL: %s", m.scraper.ArtworkURL(art.Href)), Level: LevelWarning})
				return nil
			}
			return fmt.Errorf("could not fetch image for %s: %w", art.Href, err)
		}

		c, err := m.imageService.AverageColor(data)
		if err != nil {
			return fmt.Errorf("could not sample %s: %w", art.Href, err)
		}
		art.Color = &c

		done := atomic.AddInt32(&m.doneItems, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Color extracted (%d/%d) : %s %s", done, len(artworks), c.Hex(), art.Title), Level: LevelVerbose})
		return nil
	})
	if err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Sampled %d/%d colors", len(model.SampledColors(artworks)), len(artworks)), Level: LevelInfo})
	return nil
}

// RenderPalette sorts hexes with the configured mode and writes the palette
// SVG and hex codes list to the output path.
func (m *Manager) RenderPalette(hexes []string) (*palette.Output, []string, error) {
	mode := m.settings.ToSortMode()
	sorted := palette.Sort(hexes, mode)

	out, err := m.renderer.Write(m.settings.OutputPath, mode.FileBase(), sorted)
	if err != nil {
		return nil, nil, fmt.Errorf("could not write palette: %w", err)
	}

	side := palette.SideLength(len(sorted))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Palette (%s, %dx%d): %s", mode, side, side, out.SVGPath), Level: LevelSuccess})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Hex codes: %s", out.HexCodesPath), Level: LevelVerbose})

	return out, sorted, nil
}

// GetProgress returns the progress of the current step. Skipped
// artworks count as done.
func (m *Manager) GetProgress() (done, total int32) {
	return atomic.LoadInt32(&m.doneItems), atomic.LoadInt32(&m.totalItems)
}

// forEach runs fn for every index in [0, n), in order when a single
// worker is configured and on a bounded pool otherwise. The first error
// cancels the remaining items.
func (m *Manager) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers())

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// Wait always cancels gctx; only the caller's context reports an
	// interrupted run.
	return ctx.Err()
}

func (m *Manager) prepareImage(data []byte) ([]byte, error) {
	var err error
	if m.settings.ResizeImages {
		data, err = m.imageService.ResizeImage(data, m.settings.ImageMaxSize, m.settings.ImageMaxSize)
		if err != nil {
			return nil, err
		}
	}
	if m.settings.ConvertImagesToJPG {
		data, err = m.imageService.ConvertToJPEG(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (m *Manager) resetProgress(total int) {
	atomic.StoreInt32(&m.totalItems, int32(total))
	atomic.StoreInt32(&m.doneItems, 0)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
