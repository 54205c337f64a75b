package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Blackgod0/Passcode-manager/internal/strength"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// one color per tier, very weak red through very strong green
var tierColors = [5]lipgloss.Color{"196", "202", "220", "112", "46"}

const barWidth = 30

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password strength"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	for _, hint := range strength.Hints(a.state.Input) {
		b.WriteString(hintStyle.Render("! " + hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderEvaluation())

	if alts := a.alternatives(); a.state.Analysis != nil && len(alts) > 0 {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(a.renderAlternatives(alts)))
		b.WriteString("\n")
	}

	if a.generated != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Generated: "))
		b.WriteString(a.generated)
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderEvaluation() string {
	var b strings.Builder

	if a.state.Loading {
		b.WriteString(dimStyle.Render("Evaluating…"))
		b.WriteString("\n")
	}

	if a.state.Analysis != nil {
		tier := strength.Classify(a.state.Analysis.Score)
		label := tier.Label
		if a.state.Advisory != nil {
			label = tier.DisplayLabel(a.state.Advisory.Classification)
		}

		filled := barWidth * tier.Proportion / 100
		bar := lipgloss.NewStyle().Foreground(tierColors[tier.Score]).Render(strings.Repeat("█", filled)) +
			barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

		b.WriteString(bar)
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%.1f bits, %d chars)", a.state.Analysis.Entropy, a.state.Analysis.Length)))
		b.WriteString("\n")

		if a.state.Advisory != nil {
			if a.state.Advisory.Explanation != "" {
				b.WriteString(a.state.Advisory.Explanation)
				b.WriteString("\n")
			}
			for _, s := range a.state.Advisory.Suggestions {
				b.WriteString(dimStyle.Render("• " + s))
				b.WriteString("\n")
			}
		}
	}

	if a.state.Err != "" {
		b.WriteString(errStyle.Render("Error: " + a.state.Err))
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) renderAlternatives(alts []string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Alternatives"))
	b.WriteString("\n")
	for i, alt := range alts {
		prefix := "  "
		line := alt
		if i == a.altCursor {
			prefix = "> "
			line = selectedStyle.Render(alt)
		}
		b.WriteString(prefix + line)
		if i < len(alts)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
