// Package prompt asks for run settings on an interactive terminal.
//
// Questions are asked in a fixed order: artist name, output folder,
// download choice, sort mode and title language. Unrecognized mode and
// language answers fall back to basic and english.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/model"
	"github.com/handiism/wikiart-palette/internal/palette"
)

// ErrNoInput is returned when the input ends before a required answer.
var ErrNoInput = errors.New("no input")

// Prompter reads answers line by line from an input and writes the
// questions to an output.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask writes question and returns the trimmed answer. At end of input
// the answer is empty and ErrNoInput is returned.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Fill asks every question and stores the answers in s.
//
// The artist name is required. Every other question shows the current
// value of s in brackets, and an empty or missing answer keeps it, so
// values already set from flags or a config file survive. Unrecognized
// mode and language answers fall back to basic and english.
func (p *Prompter) Fill(s *config.Settings) error {
	artist, err := p.Ask("Artist name: ")
	if err != nil {
		return fmt.Errorf("artist name: %w", err)
	}
	if artist == "" {
		return errors.New("artist name is required")
	}
	s.ArtistName = artist

	folder, err := p.Ask(fmt.Sprintf("Folder path [%s]: ", s.OutputPath))
	if err != nil && !errors.Is(err, ErrNoInput) {
		return err
	}
	if folder != "" {
		s.OutputPath = folder
	}

	download, err := p.Ask(fmt.Sprintf("Download images? (yes/no) [%s]: ", yesNo(s.DownloadImages)))
	if err != nil && !errors.Is(err, ErrNoInput) {
		return err
	}
	if download != "" {
		s.DownloadImages = ParseYesNo(download)
	}

	mode, err := p.Ask(fmt.Sprintf("Mode (basic/shade/luminance) [%s]: ", s.ToSortMode()))
	if err != nil && !errors.Is(err, ErrNoInput) {
		return err
	}
	if mode != "" {
		s.SortMode = palette.ParseSortMode(mode).String()
	}

	lang, err := p.Ask(fmt.Sprintf("Language (english/français) [%s]: ", s.ToLanguage()))
	if err != nil && !errors.Is(err, ErrNoInput) {
		return err
	}
	if lang != "" {
		s.Language = model.ParseLanguage(lang).String()
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ParseYesNo reports whether answer means yes.
func ParseYesNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "o", "oui", "true", "1":
		return true
	}
	return false
}
