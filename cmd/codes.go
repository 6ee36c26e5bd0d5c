package cmd

import (
	"fmt"
	"strconv"

	"checkatron/core/diffsql"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	legendTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7D56F4")).
				Bold(true).
				MarginBottom(1)
	legendHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFAA00")).
				Bold(true)
	legendCodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D9FF")).
			Bold(true)
	legendScopeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))
)

// codesCmd prints the status code legend.
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Show the status codes used in the result table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderLegend(diffsql.Legend))
	},
}

func renderLegend(entries []diffsql.LegendEntry) string {
	const codeWidth, scopeWidth = 6, 12

	lines := []string{
		legendTitleStyle.Render("Status codes"),
		legendHeaderStyle.Width(codeWidth).Render("CODE") +
			legendHeaderStyle.Width(scopeWidth).Render("SCOPE") +
			legendHeaderStyle.Render("MEANING"),
	}
	for _, e := range entries {
		lines = append(lines,
			legendCodeStyle.Width(codeWidth).Render(strconv.Itoa(int(e.Code)))+
				legendScopeStyle.Width(scopeWidth).Render(e.Scope)+
				e.Description)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func init() {
	RootCmd.AddCommand(codesCmd)
}
