// Package render turns search trees and results into text: an indented tree
// diagram with solution branches highlighted, one-line path strings, and the
// full run report printed by the command-line front end.
//
// Rendering is a pure function of the tree; no search logic lives here.
package render

import "github.com/charmbracelet/lipgloss"

// Palette used by DefaultStyles.
var (
	ColorGoal   = lipgloss.Color("#2CD7C7") // bright teal - goal nodes
	ColorPath   = lipgloss.Color("#20B9B4") // primary teal - solution path
	ColorTitle  = lipgloss.Color("#1D9EA3") // vibrant teal - headings
	ColorMuted  = lipgloss.Color("#2C4A54") // slate - tree branches, rules
	ColorFailed = lipgloss.Color("#E74C3C") // red - unsolved outcome
)

// Styles holds the lipgloss styles applied to each kind of output fragment.
type Styles struct {
	Goal    lipgloss.Style // goal marker and label
	OnPath  lipgloss.Style // nodes on a solution path
	Branch  lipgloss.Style // tree connectors
	Title   lipgloss.Style // section headings
	Rule    lipgloss.Style // horizontal rules
	Failure lipgloss.Style // unsolved and error messages
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Goal:    lipgloss.NewStyle().Bold(true).Foreground(ColorGoal),
		OnPath:  lipgloss.NewStyle().Foreground(ColorPath),
		Branch:  lipgloss.NewStyle().Foreground(ColorMuted),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorTitle),
		Rule:    lipgloss.NewStyle().Foreground(ColorMuted),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(ColorFailed),
	}
}

// PlainStyles returns styles that emit no escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Goal:    plain,
		OnPath:  plain,
		Branch:  plain,
		Title:   plain,
		Rule:    plain,
		Failure: plain,
	}
}
