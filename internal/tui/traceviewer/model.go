// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Bubbletea model for browsing a recorded execution trace
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package traceviewer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/bfi/foundation/bf/ast"
	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// Model is the Bubbletea model of the trace viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Trace state
	trace    Trace
	selected int

	// Configuration
	title string
	lines []string
	load  func(ctx context.Context) Trace

	// ctx is cancelled when the viewer quits, stopping a run in progress
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds trace viewer configuration
type Config struct {
	// Title shown in the header, usually the program path
	Title string

	// Source is the program text, used to show the current source line
	Source string

	// Load runs the program and returns the trace. It is called once from
	// a command so the spinner keeps running. ctx is cancelled when the
	// user quits.
	Load func(ctx context.Context) Trace
}

// New creates a new trace viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		spinner: sp,
		loading: cfg.Load != nil,
		title:   cfg.Title,
		lines:   strings.Split(cfg.Source, "\n"),
		load:    cfg.Load,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	load, ctx := m.load, m.ctx
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return traceLoadedMsg{trace: load(ctx)} },
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 5 // Tape strip + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case traceLoadedMsg:
		m.loading = false
		m.trace = msg.trace
		m.selected = 0
		m.updateViewportContent()
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "up", "k":
		m.selectStep(m.selected - 1)
	case "down", "j":
		m.selectStep(m.selected + 1)
	case "pgup", "b":
		m.selectStep(m.selected - m.pageSize())
	case "pgdown", "f", " ":
		m.selectStep(m.selected + m.pageSize())
	case "g", "home":
		m.selectStep(0)
	case "G", "end":
		m.selectStep(len(m.trace.Frames) - 1)
	}
	return m, nil
}

func (m Model) pageSize() int {
	if m.viewport.Height > 1 {
		return m.viewport.Height
	}
	return 10
}

// selectStep moves the selection and keeps it inside the viewport
func (m *Model) selectStep(i int) {
	if len(m.trace.Frames) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.trace.Frames) {
		i = len(m.trace.Frames) - 1
	}
	m.selected = i
	m.updateViewportContent()

	if !m.ready {
		return
	}
	if i < m.viewport.YOffset {
		m.viewport.SetYOffset(i)
	} else if i >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(i - m.viewport.Height + 1)
	}
}

// Selected returns the index of the selected frame
func (m Model) Selected() int {
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading trace..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(StepPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderTape())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	header := LogoStyle.Render(Logo)
	if m.title != "" {
		header += "  " + HelpDescStyle.Render(m.title)
	}
	if m.loading {
		header += "  " + m.spinner.View() + " running..."
	}
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTape renders the cell window of the selected step
func (m Model) renderTape() string {
	if len(m.trace.Frames) == 0 {
		return TapePanelStyle.Width(m.width - 2).Render("no steps recorded")
	}

	frame := m.trace.Frames[m.selected]
	cells := make([]string, 0, len(frame.Cells))
	for i, value := range frame.Cells {
		index := frame.CellsOffset + i
		cells = append(cells, RenderCell(index, value, index == frame.Pointer))
	}
	return TapePanelStyle.Width(m.width - 2).Render(strings.Join(cells, ""))
}

// renderStatusBar renders the selected step and the run outcome
func (m Model) renderStatusBar() string {
	var left string
	if len(m.trace.Frames) > 0 {
		frame := m.trace.Frames[m.selected]
		left = fmt.Sprintf("step %d/%d  ptr=%d  cell=%d  %s",
			frame.Step, m.trace.Total, frame.Pointer, frame.Cell, m.sourceLine(frame.Pos))
	}

	var right string
	switch {
	case m.loading:
		right = m.spinner.View()
	case m.trace.Err != nil:
		right = StatusErrorStyle.Render(string(bfierror.GetCode(m.trace.Err)))
	default:
		right = StatusOKStyle.Render("OK")
	}
	if m.trace.Truncated {
		right = StatusTruncatedStyle.Render("truncated") + "  " + right
	}
	right += "  " + HelpDescStyle.Render(fmt.Sprintf("out %dB", len(m.trace.Output)))

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("↑/↓", "Step"),
		RenderKeyHint("PgUp/PgDn", "Page"),
		RenderKeyHint("g/G", "First/Last"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// sourceLine returns the trimmed source line of pos
func (m Model) sourceLine(pos ast.Position) string {
	if !pos.IsValid() || pos.Line > len(m.lines) {
		return ""
	}
	line := strings.TrimSpace(m.lines[pos.Line-1])
	if len(line) > 40 {
		line = line[:40] + "…"
	}
	return strconv.Quote(line)
}

// updateViewportContent renders one line per recorded step
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for i, frame := range m.trace.Frames {
		line := formatFrame(frame.Step, frame.Op, frame.Pos, frame.Pointer, frame.Cell)
		if i == m.selected {
			line = StepSelectedStyle.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	if m.trace.Err != nil {
		content.WriteString(StatusErrorStyle.Render(m.trace.Err.Error()))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

func formatFrame(step int64, op ast.Op, pos ast.Position, pointer int, cell byte) string {
	opStyle := StepOpStyle
	if op == ast.OpLoop {
		opStyle = StepLoopStyle
	}
	return fmt.Sprintf("%s %s %s %s",
		StepNumberStyle.Render(fmt.Sprintf("%8d", step)),
		opStyle.Render(fmt.Sprintf("%-10s", op)),
		StepTextStyle.Render(fmt.Sprintf("@%-7s", pos)),
		StepTextStyle.Render(fmt.Sprintf("ptr=%-6d cell=%3d", pointer, cell)),
	)
}

// Run starts the trace viewer
func Run(cfg Config) error {
	m := New(cfg)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
