package tui

import (
	"github.com/charmbracelet/lipgloss"

	"advanced-ai/internal/conversation"
)

type styles struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	User        lipgloss.Style
	AI          lipgloss.Style
	System      lipgloss.Style
	Generating  lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Field       lipgloss.Style
	FocusField  lipgloss.Style
	Input       lipgloss.Style
	InputLocked lipgloss.Style
	Button      lipgloss.Style
}

func stylesFor(theme conversation.Theme) styles {
	bg, fg := lipgloss.Color("#1a1a2e"), lipgloss.Color("#e0e0e0")
	if theme == conversation.ThemeLight {
		bg, fg = lipgloss.Color("#f4f4f4"), lipgloss.Color("#333333")
	}

	bubble := lipgloss.NewStyle().Padding(0, 1).MarginBottom(1)
	return styles{
		App:         lipgloss.NewStyle().Background(bg).Foreground(fg),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(fg),
		Subtle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8aa0")),
		User:        bubble.Background(lipgloss.Color("#4a4a6a")).Foreground(lipgloss.Color("#ffffff")),
		AI:          bubble.Background(lipgloss.Color("#2a2a3a")).Foreground(lipgloss.Color("#e0e0e0")),
		System:      bubble.Background(lipgloss.Color("#3a3a4a")).Foreground(lipgloss.Color("#b0b0b0")),
		Generating:  bubble.Background(lipgloss.Color("#3a3a4a")).Foreground(lipgloss.Color("#b0b0b0")).Italic(true),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4a4a6a")).Padding(1, 3),
		PanelTitle:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Field:       lipgloss.NewStyle().PaddingLeft(2),
		FocusField:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#555555")),
		InputLocked: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#333333")).Faint(true),
		Button:      lipgloss.NewStyle().Background(lipgloss.Color("#4a4a6a")).Foreground(lipgloss.Color("#ffffff")).Padding(0, 2),
	}
}
