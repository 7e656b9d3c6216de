package view

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Header
	ProfileRankStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	ProfileAvatarStyle = lipgloss.NewStyle().
				Foreground(DraculaPurple)

	// Navigation
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)
	TabCountStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange)

	// Section titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	ExtraTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple).
			Bold(true).
			Padding(0, 1)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true).
			Padding(1, 1)

	// Card styles
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan)
	CardTitleFocusedStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	CardRatingStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)
	CardMetaStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	CardBodyStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	CardFlagOnStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange).
			Bold(true)

	// Show more control
	ShowMoreStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 2)
	ShowMoreFocusedStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(DraculaPink).
				Padding(0, 2)

	// Detail overlay styles
	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaPink).
			Padding(0, 1)
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailTaglineStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Italic(true)
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	DetailCloseStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	DetailCloseFocusedStyle = lipgloss.NewStyle().
				Foreground(DraculaRed).
				Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)

	SelectedItemStyle = lipgloss.NewStyle().
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(DraculaPink).
				PaddingLeft(1)
)
