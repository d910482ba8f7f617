package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
)

// londonHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func londonHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// jumpForm creates a huh form to pick a day. The chosen index is written
// to result.
func jumpForm(state *SharedState, result *int) *huh.Form {
	days := state.Days()
	if len(days) == 0 {
		return nil
	}

	options := make([]huh.Option[int], 0, len(days))
	for i, d := range days {
		label := fmt.Sprintf("%s  %s", formatter.DayHeading(d), d.Title)
		options = append(options, huh.NewOption(label, i))
	}
	if cur, ok := state.Selection.CurrentDay(); ok {
		*result = cur
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Zu welchem Tag?").
				Options(options...).
				Value(result),
		),
	).WithTheme(londonHuhTheme()).WithShowHelp(false)
}

// startJumpForm pushes the jump form; completing it opens the chosen day.
func startJumpForm(state *SharedState) tea.Cmd {
	var index int
	form := jumpForm(state, &index)
	return startWizardCmd(state, "Springen", form, func() tea.Cmd {
		return openDay(index)
	})
}
