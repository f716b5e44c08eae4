package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/notmytype/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// badge colors follow the score: green, amber, red
var badgeStyles = map[model.ScoreTier]lipgloss.Style{
	model.ScoreExcellent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	model.ScoreAcceptable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	model.ScorePoor:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
}
