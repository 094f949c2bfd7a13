package appview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	back         lipgloss.Style
	card         lipgloss.Style
	name         lipgloss.Style
	handle       lipgloss.Style
	body         lipgloss.Style
	meta         lipgloss.Style
	liked        lipgloss.Style
	action       lipgloss.Style
	comment      lipgloss.Style
	commentUser  lipgloss.Style
	empty        lipgloss.Style
	status       lipgloss.Style
	badgeHigh    lipgloss.Style
	badgeMid     lipgloss.Style
	badgeLow     lipgloss.Style
	chatMine     lipgloss.Style
	chatTheirs   lipgloss.Style
	lock         lipgloss.Style
	cta          lipgloss.Style
	sectionTitle lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		back:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		name:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		handle:       lipgloss.NewStyle().Faint(true),
		body:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		liked:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		action:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		commentUser:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110")),
		empty:        lipgloss.NewStyle().Faint(true),
		status:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		badgeHigh:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		badgeMid:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
		badgeLow:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		chatMine:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		chatTheirs:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		lock:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		cta:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		sectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

func (s styles) urgencyBadge(label string) lipgloss.Style {
	switch label {
	case "Critical", "High":
		return s.badgeHigh
	case "Medium":
		return s.badgeMid
	default:
		return s.badgeLow
	}
}
