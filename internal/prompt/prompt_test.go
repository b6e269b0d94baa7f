package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/handiism/wikiart-palette/internal/config"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantArtist   string
		wantOutput   string
		wantDownload bool
		wantMode     string
		wantLanguage string
	}{
		{
			name:         "all answers",
			input:        "Claude Monet\n/tmp/monet\nyes\nshade\nfrançais\n",
			wantArtist:   "Claude Monet",
			wantOutput:   "/tmp/monet",
			wantDownload: true,
			wantMode:     "shade",
			wantLanguage: "français",
		},
		{
			name:         "defaults on empty answers",
			input:        "Claude Monet\n\n\n\n\n",
			wantArtist:   "Claude Monet",
			wantOutput:   ".",
			wantMode:     "basic",
			wantLanguage: "english",
		},
		{
			name:         "unrecognized mode and language",
			input:        "  Banksy  \nout\nno\nrainbow\nklingon\n",
			wantArtist:   "Banksy",
			wantOutput:   "out",
			wantMode:     "basic",
			wantLanguage: "english",
		},
		{
			name:         "input ends after artist",
			input:        "Banksy\n",
			wantArtist:   "Banksy",
			wantOutput:   ".",
			wantMode:     "basic",
			wantLanguage: "english",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			var out bytes.Buffer

			if err := New(strings.NewReader(tt.input), &out).Fill(s); err != nil {
				t.Fatalf("Fill failed: %v", err)
			}

			if s.ArtistName != tt.wantArtist {
				t.Errorf("ArtistName = %q, want %q", s.ArtistName, tt.wantArtist)
			}
			if s.OutputPath != tt.wantOutput {
				t.Errorf("OutputPath = %q, want %q", s.OutputPath, tt.wantOutput)
			}
			if s.DownloadImages != tt.wantDownload {
				t.Errorf("DownloadImages = %v, want %v", s.DownloadImages, tt.wantDownload)
			}
			if s.SortMode != tt.wantMode {
				t.Errorf("SortMode = %q, want %q", s.SortMode, tt.wantMode)
			}
			if s.Language != tt.wantLanguage {
				t.Errorf("Language = %q, want %q", s.Language, tt.wantLanguage)
			}
		})
	}
}

func TestFill_QuestionOrder(t *testing.T) {
	var out bytes.Buffer
	if err := New(strings.NewReader("a\nb\nno\nbasic\nenglish\n"), &out).Fill(config.DefaultSettings()); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	text := out.String()
	order := []string{"Artist name", "Folder path", "Download images", "Mode", "Language"}
	last := -1
	for _, q := range order {
		i := strings.Index(text, q)
		if i <= last {
			t.Fatalf("question %q out of order in %q", q, text)
		}
		last = i
	}
}

func TestFill_MissingArtist(t *testing.T) {
	s := config.DefaultSettings()

	if err := New(strings.NewReader(""), &bytes.Buffer{}).Fill(s); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
	if err := New(strings.NewReader("\n"), &bytes.Buffer{}).Fill(s); err == nil {
		t.Error("expected error for empty artist name")
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes", true},
		{"Y", true},
		{" oui ", true},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseYesNo(tt.input); got != tt.want {
				t.Errorf("ParseYesNo(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFill_EmptyAnswersKeepCurrentValues(t *testing.T) {
	s := config.DefaultSettings()
	s.OutputPath = "/palettes"
	s.DownloadImages = true
	s.SortMode = "luminance"
	s.Language = "français"

	var out bytes.Buffer
	if err := New(strings.NewReader("Claude Monet\n\n\n\n\n"), &out).Fill(s); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	if s.OutputPath != "/palettes" || !s.DownloadImages || s.SortMode != "luminance" || s.Language != "français" {
		t.Errorf("settings changed by empty answers: %+v", s)
	}
	for _, shown := range []string{"[/palettes]", "[yes]", "[luminance]", "[français]"} {
		if !strings.Contains(out.String(), shown) {
			t.Errorf("prompt output %q should show %s", out.String(), shown)
		}
	}

	// Explicit answers still replace the current values.
	if err := New(strings.NewReader("Claude Monet\n\nno\nshade\nenglish\n"), &bytes.Buffer{}).Fill(s); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if s.DownloadImages || s.SortMode != "shade" || s.Language != "english" {
		t.Errorf("explicit answers not applied: %+v", s)
	}
}
