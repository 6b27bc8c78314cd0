package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// swatch renders a block filled with color on terminals and nothing elsewhere.
func swatch(color string, tty bool) string {
	if !tty || color == "" {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ") + " "
}
