// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Styles for the trace viewer TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package traceviewer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Step list styles
var (
	StepPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StepNumberStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StepOpStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	StepLoopStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StepTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	StepSelectedStyle = lipgloss.NewStyle().
				Background(ColorBgSelected).
				Foreground(ColorText).
				Bold(true)
)

// Tape strip styles
var (
	TapePanelStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	CellPointerStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true).
				Underline(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusTruncatedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "bfi trace"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderCell renders one tape cell, highlighting the pointer cell
func RenderCell(index int, value byte, pointer bool) string {
	text := fmt.Sprintf("%d:%3d", index, value)
	if pointer {
		return CellPointerStyle.Render("[" + text + "]")
	}
	return CellStyle.Render(" " + text + " ")
}
