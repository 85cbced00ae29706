package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	NavActive lipgloss.Style
	NavItem   lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style

	Screen   lipgloss.Style // calculator / timer display
	Entry    lipgloss.Style
	Progress string // progress bar fill colour
}

var DarkTheme = Theme{
	Name:    "dark",
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),

	NavActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#F9E2AF")),
	NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("#BAC2DE")),
	Card:      lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#45475A")).PaddingLeft(1),
	CardFocus: lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#89B4FA")).PaddingLeft(1),

	ModalBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4")),

	Screen:   lipgloss.NewStyle().Background(lipgloss.Color("#181825")).Foreground(lipgloss.Color("#CDD6F4")).Padding(0, 1),
	Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Progress: "#89B4FA",
}

var LightTheme = Theme{
	Name:    "light",
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#1E66F5")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4C4F69")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#8839EF")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D20F39")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),

	NavActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#FE640B")),
	NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5F77")),
	Card:      lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#BCC0CC")).PaddingLeft(1),
	CardFocus: lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#1E66F5")).PaddingLeft(1),

	ModalBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#1E66F5")).Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4C4F69")),

	Screen:   lipgloss.NewStyle().Background(lipgloss.Color("#E6E9EF")).Foreground(lipgloss.Color("#4C4F69")).Padding(0, 1),
	Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DF8E1D")),
	Progress: "#1E66F5",
}

// ThemeFor returns the named theme, dark unless name is "light".
func ThemeFor(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == LightTheme.Name {
		return DarkTheme
	}
	return LightTheme
}
