package tui

import "github.com/charmbracelet/lipgloss"

var (
	green  = lipgloss.Color("#25D366")
	navy   = lipgloss.Color("#101F38")
	grey   = lipgloss.Color("#8A94A6")
	red    = lipgloss.Color("#E53935")
	border = lipgloss.Color("#2A3850")
)

type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Content   lipgloss.Style
	Form      lipgloss.Style
	Label     lipgloss.Style
	Footer    lipgloss.Style
	Link      lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Background(navy).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(grey).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Foreground(green).
			Padding(0, 2).
			Bold(true).
			Underline(true),
		Content: lipgloss.NewStyle().
			Padding(1, 1),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(grey).
			Width(18),
		Footer: lipgloss.NewStyle().
			Foreground(grey).
			Padding(0, 1),
		Link:   lipgloss.NewStyle().Foreground(green),
		Notice: lipgloss.NewStyle().Foreground(green).Padding(0, 1),
		Error:  lipgloss.NewStyle().Foreground(red).Padding(0, 1),
		Help:   lipgloss.NewStyle().Foreground(grey).Padding(0, 1),
	}
}
