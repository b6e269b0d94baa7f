package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/pipeline"
	"github.com/handiism/wikiart-palette/internal/prompt"
	"github.com/handiism/wikiart-palette/internal/wikiart"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			os.Exit(130)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	artist      string
	output      string
	download    bool
	mode        string
	language    string
	concurrency int
	verbose     bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "wikiart-palette",
		Short: "Build a color palette from an artist's WikiArt catalog",
		Long: `wikiart-palette fetches the list of works of an artist on WikiArt,
samples the average color of every artwork and renders them as a tiled SVG.

Without --artist the settings are asked interactively.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)

			settings, err := loadSettings(cmd, &opts)
			if err != nil {
				logger.Error("Could not load config", "err", err)
				return err
			}

			if settings.ArtistName == "" {
				if err := prompt.New(stdin, stdout).Fill(settings); err != nil {
					logger.Error("Could not read settings", "err", err)
					return err
				}
			}

			return run(cmd.Context(), settings, afero.NewOsFs(), logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or TOML config file")
	f.StringVarP(&opts.artist, "artist", "a", "", "artist name, e.g. \"Claude Monet\"")
	f.StringVarP(&opts.output, "output", "o", "", "output folder")
	f.BoolVarP(&opts.download, "download", "d", false, "download the full-size images")
	f.StringVarP(&opts.mode, "mode", "m", "", "palette order: basic, shade or luminance")
	f.StringVarP(&opts.language, "language", "l", "", "catalog language: english or français")
	f.IntVarP(&opts.concurrency, "concurrency", "j", 0, "number of artworks fetched in parallel")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// loadSettings reads the config file, if any, and applies the flags that
// were set on the command line over it.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("artist") {
		settings.ArtistName = opts.artist
	}
	if f.Changed("output") {
		settings.OutputPath = opts.output
	}
	if f.Changed("download") {
		settings.DownloadImages = opts.download
	}
	if f.Changed("mode") {
		settings.SortMode = opts.mode
	}
	if f.Changed("language") {
		settings.Language = opts.language
	}
	if f.Changed("concurrency") {
		settings.MaxConcurrentFetches = opts.concurrency
	}

	return settings, nil
}

func run(ctx context.Context, settings *config.Settings, fs afero.Fs, logger *log.Logger) error {
	prog := newProgress(logger)
	manager := pipeline.NewManager(settings, fs, progressLogger(logger))

	logger.Info("WikiArt palette", "artist", settings.ArtistName, "mode", settings.ToSortMode(), "language", settings.ToLanguage())

	result, err := manager.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// The pipeline already reported an unknown artist.
		if !errors.Is(err, wikiart.ErrArtistNotFound) {
			logger.Error("Run failed", "err", err)
		}
		return err
	}

	if result.Palette == nil {
		prog.done("Done, no palette rendered")
		return nil
	}
	prog.done(fmt.Sprintf("Palette of %d colors written to %s", len(result.HexCodes), result.Palette.SVGPath))
	return nil
}
