package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/apogee/internal/experiment"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	diffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// Summary renders a styled block for one case outcome.
func Summary(out *experiment.Outcome) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s case", out.Model)))
	b.WriteString("\n")
	row(&b, "apogee", fmt.Sprintf("%.3f m", out.Apogee.Height))
	row(&b, "crossing time", fmt.Sprintf("%.4f s", out.Apogee.CrossingTime))
	row(&b, "crossing index", fmt.Sprintf("%d", out.Apogee.CrossingIndex))

	names := make([]string, 0, len(out.Metrics))
	for name := range out.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row(&b, name, fmt.Sprintf("%.4f", out.Metrics[name]))
	}

	return b.String()
}

// ComparisonSummary renders both outcomes and the percent difference.
func ComparisonSummary(cmp *experiment.Comparison) string {
	var b strings.Builder

	b.WriteString(Summary(cmp.Inviscid))
	b.WriteString("\n")
	b.WriteString(Summary(cmp.Viscous))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("apogee change"))
	b.WriteString(diffStyle.Render(fmt.Sprintf("%.3e %%", cmp.PercentDiff)))
	b.WriteString("\n")

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
