// Package tui provides a Bubble Tea terminal user interface for wikiart-palette.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/wikiart-palette/internal/config"
	"github.com/handiism/wikiart-palette/internal/model"
	"github.com/handiism/wikiart-palette/internal/palette"
	"github.com/handiism/wikiart-palette/internal/pipeline"
	"github.com/spf13/afero"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E07A5F")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81B29A"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#81B29A")).
			Padding(1, 2)
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	artist   textinput.Model
	folder   textinput.Model
	focus    int
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	fs       afero.Fs
	logs     []LogEntry
	result   *pipeline.Result
	err      error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc
	events chan pipeline.ProgressEvent

	manager *pipeline.Manager

	done  int32
	total int32

	// Options
	download bool
	mode     palette.SortMode
	language model.Language
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model starting from settings and writing
// to fs.
func NewModel(settings *config.Settings, fs afero.Fs) Model {
	artist := textinput.New()
	artist.Placeholder = "Claude Monet"
	artist.SetValue(settings.ArtistName)
	artist.Focus()
	artist.CharLimit = 200
	artist.Width = 60

	folder := textinput.New()
	folder.Placeholder = "."
	folder.SetValue(settings.OutputPath)
	folder.CharLimit = 500
	folder.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E07A5F"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		artist:   artist,
		folder:   folder,
		spinner:  sp,
		progress: prog,
		settings: settings,
		fs:       fs,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		download: settings.DownloadImages,
		mode:     settings.ToSortMode(),
		language: settings.ToLanguage(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one pipeline event.
	ProgressMsg struct {
		Event pipeline.ProgressEvent
	}

	// RunDoneMsg is sent when the pipeline returns.
	RunDoneMsg struct {
		Result *pipeline.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				m.cancel()
				return m, tea.Quit
			}
			if m.state == StateRunning {
				m.cancel()
			}
			return m, nil

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.artist.Value()) != "" {
				return m.start()
			}
			return m, nil

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.toggleFocus()
			}
			return m, nil

		case "ctrl+d":
			if m.state == StateInput {
				m.download = !m.download
			}
			return m, nil

		case "ctrl+s":
			if m.state == StateInput {
				m.mode = (m.mode + 1) % 3
			}
			return m, nil

		case "ctrl+l":
			if m.state == StateInput {
				m.language = (m.language + 1) % 2
			}
			return m, nil

		case "ctrl+t":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}
			return m, nil

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				return m.reset(), nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		if msg.Event.Level == pipeline.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case RunDoneMsg:
		m.result = msg.Result
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errors.New("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			m.done, m.total = m.manager.GetProgress()
			var percent float64
			if m.total > 0 {
				percent = float64(m.done) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		if m.focus == 0 {
			m.artist, cmd = m.artist.Update(msg)
		} else {
			m.folder, cmd = m.folder.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.artist.Blur()
		m.folder.Focus()
		return
	}
	m.focus = 0
	m.folder.Blur()
	m.artist.Focus()
}

// runSettings returns a copy of the base settings with the form values
// applied.
func (m Model) runSettings() *config.Settings {
	s := *m.settings
	s.ArtistName = strings.TrimSpace(m.artist.Value())
	if folder := strings.TrimSpace(m.folder.Value()); folder != "" {
		s.OutputPath = folder
	}
	s.DownloadImages = m.download
	s.SortMode = m.mode.String()
	s.Language = m.language.String()
	return &s
}

// start creates the manager and launches the run in the background.
// Events flow through a channel so none is lost between ticks.
func (m Model) start() (tea.Model, tea.Cmd) {
	events := make(chan pipeline.ProgressEvent, 64)
	ctx := m.ctx

	m.events = events
	m.manager = pipeline.NewManager(m.runSettings(), m.fs, func(event pipeline.ProgressEvent) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	})
	m.state = StateRunning

	return m, tea.Batch(runPipeline(ctx, m.manager, events), waitForEvent(events), tickProgress(), m.spinner.Tick)
}

func (m Model) reset() Model {
	m.state = StateInput
	m.logs = nil
	m.result = nil
	m.err = nil
	m.done = 0
	m.total = 0
	m.manager = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.focus = 1
	m.toggleFocus()
	return m
}

// runPipeline runs the manager and closes events once it returns.
func runPipeline(ctx context.Context, manager *pipeline.Manager, events chan pipeline.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		result, err := manager.Run(ctx)
		close(events)
		return RunDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent blocks until the next pipeline event. A nil channel
// yields no command.
func waitForEvent(events <-chan pipeline.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("WikiArt Palette"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Turn an artist's catalog into a color palette"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Artist name:"))
	b.WriteString("\n")
	b.WriteString(m.artist.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Folder path:"))
	b.WriteString("\n")
	b.WriteString(m.folder.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Download images (ctrl+d)\n", checkbox(m.download)))
	b.WriteString(fmt.Sprintf("  Mode: %s (ctrl+s)\n", m.mode))
	b.WriteString(fmt.Sprintf("  Language: %s (ctrl+l)\n", m.language))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+t)\n", checkbox(m.verbose)))

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Building palette for %s...", strings.TrimSpace(m.artist.Value()))))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Artworks: %d/%d", m.done, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	if m.result == nil || m.result.Palette == nil {
		return boxStyle.Render("No artworks listed, no palette rendered.")
	}

	return boxStyle.Render(fmt.Sprintf(
		"Palette complete!\n\n"+
			"Colors: %d\n"+
			"Images: %d\n"+
			"Palette: %s\n"+
			"Hex codes: %s",
		len(m.result.HexCodes),
		len(m.result.ImagePaths),
		m.result.Palette.SVGPath,
		m.result.Palette.HexCodesPath,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: next field • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new palette • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, fs afero.Fs) error {
	p := tea.NewProgram(NewModel(settings, fs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
