package client

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal colors (ANSI 256)
var (
	cPrimary = lipgloss.Color("63")  // blue
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	mutedStyle   = lipgloss.NewStyle().Foreground(cMuted)
)

func heading(s string) string {
	return headingStyle.Render(s)
}

// verdict renders a pass/fail label
func verdict(ok bool, pass, fail string) string {
	if ok {
		return goodStyle.Render(pass)
	}
	return badStyle.Render(fail)
}
