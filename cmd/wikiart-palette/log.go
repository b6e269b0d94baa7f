package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/handiism/wikiart-palette/internal/pipeline"
)

// newLogger creates a timestamped logger writing to w.
// Verbose enables debug messages.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progressLogger forwards pipeline events to logger.
//
// Verbose events are logged at debug level, so they only show with
// --verbose.
func progressLogger(logger *log.Logger) func(pipeline.ProgressEvent) {
	return func(event pipeline.ProgressEvent) {
		switch event.Level {
		case pipeline.LevelVerbose:
			logger.Debug(event.Message)
		case pipeline.LevelWarning:
			logger.Warn(event.Message)
		case pipeline.LevelError:
			logger.Error(event.Message)
		default:
			logger.Info(event.Message)
		}
	}
}

// progress logs completion of a run with the elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Palette written (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
