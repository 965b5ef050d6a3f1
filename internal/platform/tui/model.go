package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/gesnake/internal/app"
	"github.com/vovakirdan/gesnake/internal/core"
	"github.com/vovakirdan/gesnake/internal/registry"
)

// Each grid cell is two terminal columns wide so cells look roughly square.
const cellWidth = 2

// Field plus the HUD line and the help footer.
const (
	minWidth  = core.GridSize * cellWidth
	minHeight = core.GridSize + 2
)

func init() {
	registry.Register("terminal", func(int) app.Frontend {
		return &Frontend{}
	})
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// ID implements app.Frontend.
func (f *Frontend) ID() string { return "terminal" }

// Title implements app.Frontend.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements app.Frontend.
func (f *Frontend) Run(ctx context.Context, s *app.Session) error {
	if err := checkTerminal(int(os.Stdout.Fd())); err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(s, core.DefaultConfig()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// checkTerminal fails when fd is not a terminal large enough for the field.
func checkTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return errors.New("tui: stdout is not a terminal")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	if w < minWidth || h < minHeight {
		return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d", w, h, minWidth, minHeight)
	}
	return nil
}

// Model is the Bubble Tea model for one session.
type Model struct {
	session  *app.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the session.
func NewModel(s *app.Session, cfg core.RuntimeConfig) Model {
	return Model{
		session: s,
		screen:  core.NewScreen(core.GridSize*cellWidth, core.GridSize),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the frame clock, the simulation clock and the session watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.config.FrameRate),
		simTickCmd(m.config.TickInterval),
		waitSessionCmd(m.session),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SimTickMsg:
		m.session.Tick()
		return m, simTickCmd(m.config.TickInterval)

	case FrameMsg:
		return m, frameCmd(m.config.FrameRate)

	case sessionDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionRestart:
		m.session.Restart()
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < minWidth || m.height < minHeight) {
		return errorStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d", minWidth, minHeight))
	}

	v := m.session.Render(m.screen, cellWidth)

	var b strings.Builder
	b.WriteString(hudLine(v.State.Score, v.State.Length, v.Best, v.Gesture))
	b.WriteRune('\n')
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(m.help.View(m.keys))

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}
