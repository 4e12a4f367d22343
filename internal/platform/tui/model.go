package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a Model.
type Options struct {
	Session *blockfall.Session
	Glyphs  blockfall.GlyphSet
	KeyMap  core.KeyMap
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a blockfall session.
type Model struct {
	session *blockfall.Session
	glyphs  blockfall.GlyphSet
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	seed    func() int64

	frame    blockfall.Frame
	last     blockfall.Step
	ticking  bool // a TickMsg is pending
	paused   bool
	quitting bool
}

// NewModel creates a model showing the session's empty board.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Session.Config()

	return Model{
		session: opts.Session,
		glyphs:  opts.Glyphs,
		keys:    NewKeyMap(opts.KeyMap),
		help:    help.New(),
		logger:  logger,
		seed:    func() int64 { return time.Now().UnixNano() },
		frame:   emptyFrame(cfg.Width, cfg.Height),
		ticking: true,
	}
}

func emptyFrame(w, h int) blockfall.Frame {
	return blockfall.Frame{Width: w, Height: h, Cells: make([]blockfall.Cell, w*h)}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Config().TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.move(blockfall.Left)

	case key.Matches(msg, m.keys.Right):
		m.move(blockfall.Right)

	case key.Matches(msg, m.keys.Pause):
		if !m.last.Done {
			m.paused = !m.paused
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	}

	return m, nil
}

func (m Model) move(d blockfall.Direction) {
	if m.paused || m.last.Done {
		return
	}
	applied := m.session.ApplyInput(d)
	m.logger.Debug("input", "direction", int(d), "applied", applied)
}

// reset starts a new game and resumes ticking if the loop had stopped.
func (m Model) reset() (tea.Model, tea.Cmd) {
	seed := m.seed()
	if err := m.session.Reset(seed); err != nil {
		m.logger.Error("reset", "err", err)
		return m, nil
	}
	m.logger.Info("new game", "seed", seed)

	cfg := m.session.Config()
	m.frame = emptyFrame(cfg.Width, cfg.Height)
	m.last = blockfall.Step{}
	m.paused = false
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(cfg.TickInterval)
}

// handleTick advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	interval := m.session.Config().TickInterval
	if m.paused {
		return m, tickCmd(interval)
	}

	step := m.session.Advance()
	m.frame = step.Frame
	m.last = step

	if step.Spawned {
		m.logger.Debug("spawn", "tick", step.Tick, "index", step.Index, "kind", step.Kind)
	}
	if step.Full {
		m.logger.Warn("board full, spawning stopped", "tick", step.Tick)
	}
	if step.Done {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.frame.Size()
	screen := core.NewScreen(cols, rows)
	m.frame.Draw(screen, 0, 0, m.glyphs)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("BLOCKFALL"),
		RenderScreen(screen),
		statusStyle.Render(m.status()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) status() string {
	snap := m.session.Snapshot()
	line := fmt.Sprintf("tick %d  pieces %d/%d", m.session.Tick(), len(snap.Pieces), blockfall.Capacity)
	if snap.Active >= 0 {
		p := snap.Pieces[snap.Active]
		line += fmt.Sprintf("  active %s @ %d,%d", p.Kind, p.Anchor.X, p.Anchor.Y)
	}

	switch {
	case m.last.Done:
		line += "  game over, r to restart"
	case m.paused:
		line += "  paused"
	case m.session.Full():
		line += "  board full"
	}
	return line
}

// Run starts the Bubble Tea program for the session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
