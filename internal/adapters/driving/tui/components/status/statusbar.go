// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/litholog/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/litholog/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateProcessing State = "processing"
	StateError      State = "error"
	StateHelp       State = "help"
)

// Bar displays run details and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	runID   string
	density domain.DensitySource
	rows    int
	cursor  int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateProcessing:
		return s.styles.Muted.Render("Processing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
		if s.runID == "" {
			return s.styles.Muted.Render("Ready")
		}
	}

	parts := []string{
		s.styles.Normal.Render(fmt.Sprintf("row %d/%d", s.cursor+1, s.rows)),
		s.densityLabel(),
		s.styles.Muted.Render(shortID(s.runID)),
	}
	return strings.Join(parts, "  ")
}

func (s *Bar) densityLabel() string {
	text := fmt.Sprintf("RHOB %s", s.density)
	if s.density == domain.DensityImputed {
		return s.styles.Warning.Render(text)
	}
	return s.styles.Success.Render(text)
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetDataset records the run details of the displayed dataset.
func (s *Bar) SetDataset(ds *domain.AnnotatedDataset) {
	if ds == nil {
		s.runID, s.density, s.rows = "", "", 0
		return
	}
	s.runID = ds.RunID
	s.density = ds.DensitySource
	s.rows = ds.Len()
}

// SetCursor sets the highlighted row index.
func (s *Bar) SetCursor(cursor int) {
	s.cursor = cursor
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
