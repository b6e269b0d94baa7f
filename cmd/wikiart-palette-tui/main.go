package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/tui"
	"github.com/spf13/afero"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(settings, afero.NewOsFs()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
