package sheet

import "github.com/charmbracelet/lipgloss"

// Style controls the sheet's rendering.
type Style struct {
	Header          lipgloss.Style
	RowNumber       lipgloss.Style
	RowNumberActive lipgloss.Style
	Separator       lipgloss.Style

	Cell      lipgloss.Style
	ReadOnly  lipgloss.Style
	Selection lipgloss.Style
	Active    lipgloss.Style
	Editor    lipgloss.Style

	Status lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		RowNumber:       dim,
		RowNumberActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Separator:       dim,
		Cell:            lipgloss.NewStyle(),
		ReadOnly:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Selection:       lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Active:          lipgloss.NewStyle().Reverse(true),
		Editor:          lipgloss.NewStyle().Underline(true),
		Status:          dim,
	}
}
