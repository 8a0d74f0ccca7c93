// Package tui is an interactive viewer that steps through the stages of a
// dealt round one screen at a time.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerhands/internal/display"
)

const helpText = "←/p prev • →/n/space next • ↑/↓ scroll • q quit"

// Model is the Bubble Tea model for the round viewer
type Model struct {
	logger *log.Logger
	title  string
	stages []display.Stage
	index  int

	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a viewer over the given stages. title is shown in the
// header, typically the round ID.
func NewModel(title string, stages []display.Stage, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Minimal initial size, resized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	m := &Model{
		logger:   logger.WithPrefix("tui"),
		title:    title,
		stages:   stages,
		viewport: vp,
	}
	m.syncContent()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "right", "n", "l", " ", "enter":
			m.Next()
			return m, nil
		case "left", "p", "h", "backspace":
			m.Prev()
			return m, nil
		case "home":
			m.goTo(0)
			return m, nil
		case "end":
			m.goTo(len(m.stages) - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.stages) == 0 {
		return "No stages to show.\n"
	}

	header := HeaderStyle.Render(m.title) + " " +
		StageStyle.Render(fmt.Sprintf("Stage %d/%d: %s", m.index+1, len(m.stages), m.stages[m.index].Title))
	body := PaneStyle.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, HelpStyle.Render(helpText))
}

// Next advances to the following stage, stopping at the last one
func (m *Model) Next() {
	m.goTo(m.index + 1)
}

// Prev returns to the previous stage, stopping at the first one
func (m *Model) Prev() {
	m.goTo(m.index - 1)
}

// Index returns the current stage index
func (m *Model) Index() int {
	return m.index
}

// Current returns the stage on screen
func (m *Model) Current() display.Stage {
	if len(m.stages) == 0 {
		return display.Stage{}
	}
	return m.stages[m.index]
}

func (m *Model) goTo(i int) {
	if len(m.stages) == 0 {
		return
	}
	i = max(0, min(i, len(m.stages)-1))
	if i == m.index {
		return
	}
	m.index = i
	m.syncContent()
}

func (m *Model) syncContent() {
	if len(m.stages) == 0 {
		return
	}
	m.viewport.SetContent(m.stages[m.index].Body)
	m.viewport.GotoTop()
}

func (m *Model) resize() {
	// Header, help line and pane border
	const chrome = 4
	m.viewport.Width = max(1, m.width-2)
	m.viewport.Height = max(1, m.height-chrome)
}

// Run shows the stages until the user quits
func Run(title string, stages []display.Stage, logger *log.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(title, stages, logger), opts...).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
