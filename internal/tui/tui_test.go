package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/model"
	"github.com/handiism/wikiart-palette/internal/palette"
	"github.com/handiism/wikiart-palette/internal/pipeline"
	"github.com/handiism/wikiart-palette/internal/wikiart"
	"github.com/spf13/afero"
)

func newTestModel() Model {
	return NewModel(config.DefaultSettings(), afero.NewMemMapFs())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Options(t *testing.T) {
	m := newTestModel()

	m = update(t, m, key("ctrl+d"))
	if !m.download {
		t.Error("ctrl+d should enable downloads")
	}

	m = update(t, m, key("ctrl+s"))
	if m.mode != palette.ModeShade {
		t.Errorf("mode = %s, want shade", m.mode)
	}
	m = update(t, m, key("ctrl+s"))
	m = update(t, m, key("ctrl+s"))
	if m.mode != palette.ModeBasic {
		t.Errorf("mode = %s, want basic after a full cycle", m.mode)
	}

	m = update(t, m, key("ctrl+l"))
	if m.language != model.French {
		t.Errorf("language = %s, want français", m.language)
	}

	m = update(t, m, key("ctrl+t"))
	if !m.verbose {
		t.Error("ctrl+t should enable verbose output")
	}
}

func TestModel_TypingAndFocus(t *testing.T) {
	m := newTestModel()

	m = update(t, m, key("Monet"))
	if m.artist.Value() != "Monet" {
		t.Errorf("artist = %q, want %q", m.artist.Value(), "Monet")
	}

	m = update(t, m, key("tab"))
	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	m = update(t, m, key("/x"))
	if m.folder.Value() != "./x" {
		t.Errorf("folder = %q, want %q", m.folder.Value(), "./x")
	}
	if m.artist.Value() != "Monet" {
		t.Error("typing in the folder must not change the artist")
	}
}

func TestModel_EnterRequiresArtist(t *testing.T) {
	m := update(t, newTestModel(), key("enter"))
	if m.state != StateInput {
		t.Errorf("state = %d, want StateInput", m.state)
	}
}

func TestModel_RunSettings(t *testing.T) {
	m := newTestModel()
	m = update(t, m, key(" Claude Monet "))
	m = update(t, m, key("ctrl+d"))
	m = update(t, m, key("ctrl+s"))
	m = update(t, m, key("ctrl+s"))
	m = update(t, m, key("ctrl+l"))

	s := m.runSettings()
	if s.ArtistName != "Claude Monet" {
		t.Errorf("ArtistName = %q", s.ArtistName)
	}
	if !s.DownloadImages || s.SortMode != "luminance" || s.Language != "français" {
		t.Errorf("settings = %+v", s)
	}
	if m.settings.ArtistName != "" {
		t.Error("base settings must not be modified")
	}
}

func TestModel_ProgressLogs(t *testing.T) {
	m := newTestModel()
	m.state = StateRunning

	m = update(t, m, ProgressMsg{Event: pipeline.ProgressEvent{Message: "hidden", Level: pipeline.LevelVerbose}})
	if len(m.logs) != 0 {
		t.Errorf("verbose event should be filtered, logs = %v", m.logs)
	}

	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: pipeline.ProgressEvent{Message: "line", Level: pipeline.LevelInfo}})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("got %d logs, want %d", len(m.logs), maxLogs)
	}
	if !strings.Contains(m.View(), "line") {
		t.Error("logs should be rendered")
	}
}

func TestModel_RunDone(t *testing.T) {
	m := newTestModel()
	m.state = StateRunning

	failed := update(t, m, RunDoneMsg{Err: wikiart.ErrArtistNotFound})
	if failed.state != StateError || !errors.Is(failed.err, wikiart.ErrArtistNotFound) {
		t.Errorf("state = %d, err = %v", failed.state, failed.err)
	}
	if !strings.Contains(failed.View(), "not in the WikiArt database") {
		t.Error("error view should show the message")
	}

	result := &pipeline.Result{
		HexCodes: []string{"#ff0000"},
		Palette:  &palette.Output{SVGPath: "/out/palette_basic.svg", HexCodesPath: "/out/hex_codes_list.txt"},
	}
	done := update(t, m, RunDoneMsg{Result: result})
	if done.state != StateComplete {
		t.Fatalf("state = %d, want StateComplete", done.state)
	}
	if !strings.Contains(done.View(), "/out/palette_basic.svg") {
		t.Error("complete view should show the palette path")
	}

	again := update(t, done, key("r"))
	if again.state != StateInput || again.result != nil {
		t.Error("r should reset to the input form")
	}
}

func TestModel_Cancelled(t *testing.T) {
	m := newTestModel()
	m.state = StateRunning
	m.cancel()

	m = update(t, m, RunDoneMsg{Err: errors.New("context canceled")})
	if m.state != StateError || !strings.Contains(m.err.Error(), "cancelled") {
		t.Errorf("state = %d, err = %v", m.state, m.err)
	}
}
