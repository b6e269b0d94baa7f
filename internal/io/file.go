// Package ioutils provides file system utilities for wikiart-palette.
//
// This package contains functions for:
//   - Collision-free output file names
//   - Line-oriented and JSON file writing
//   - Directory creation
//
// Every function takes an afero.Fs so that the pipeline can write to the
// real disk (afero.NewOsFs) and tests to memory (afero.NewMemMapFs).
package ioutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// UniqueFileName returns a path inside dir that does not exist yet.
//
// The first candidate is "<base><ext>". While it exists, a zero-padded
// counter starting at 01 is appended to the base name.
//
// Example:
//
//	// dir already has artworks_titles_en.txt
//	UniqueFileName(fs, dir, "artworks_titles_en", ".txt")
//	// Returns dir/artworks_titles_en_01.txt
func UniqueFileName(fs afero.Fs, dir, base, ext string) (string, error) {
	path := filepath.Join(dir, base+ext)
	for counter := 1; ; counter++ {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%02d%s", base, counter, ext))
	}
}

// WriteLines writes each line followed by a newline.
//
// The file is created with mode 0644, or truncated if it exists.
func WriteLines(fs afero.Fs, path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return afero.WriteFile(fs, path, []byte(sb.String()), 0644)
}

// WriteJSON writes v as JSON indented with four spaces.
//
// HTML characters are not escaped, so hrefs and titles stay readable.
// The file ends at the closing bracket, without a trailing newline.
func WriteJSON(fs afero.Fs, path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), 0644)
}

// ReadJSON reads the file at path and unmarshals it into v.
func ReadJSON(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// WriteFile writes data to a file, creating it if necessary.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0755)
}
