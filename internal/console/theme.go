package console

import "github.com/charmbracelet/lipgloss"

// Styles for the console views. Presentation only; nothing here
// carries behaviour.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	focusedLabelStyle = labelStyle.Copy().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	toastStyles = map[ToastLevel]lipgloss.Style{
		ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ToastWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ToastLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)
