package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/slok/checkmycrypto/internal/model"
)

const barWidth = 40

// RenderScan renders the scan simulator widget.
func RenderScan(st model.ScanState) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("CHECKMYCRYPTO CORE") + "\n\n")
	sb.WriteString(boldStyle.Render(st.Address.Value) + "  " + accentStyle.Render("[n] switch") + "  " + accentStyle.Render("[enter] check") + "\n\n")

	switch st.Phase {
	case model.ScanPhaseScanning:
		sb.WriteString(boldStyle.Render("Scanning the blockchain...") + "\n")
	case model.ScanPhaseResolved:
		sb.WriteString(renderReport(st.Report()))
	default:
		sb.WriteString(mutedStyle.Render("Enter an address to check") + "\n")
	}

	return panelStyle.Render(sb.String())
}

func renderReport(r *model.ScanReport) string {
	if r == nil {
		return ""
	}

	style := successStyle
	icon := "✓"
	if r.Outcome == model.OutcomeRisky {
		style = dangerStyle
		icon = "!"
	}

	filled := r.TrustScore * barWidth / model.TrustScoreMax
	bar := style.Render(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", barWidth-filled))

	var sb strings.Builder
	sb.WriteString(style.Bold(true).Render(icon+" "+r.Headline) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("Darknet & Mixers:  "), r.DarknetExposure))
	sb.WriteString(fmt.Sprintf("%s %s\n\n", mutedStyle.Render("Sanctions lists:   "), r.SanctionsLists))
	sb.WriteString(fmt.Sprintf("%s %d/%d\n", mutedStyle.Render("TRUST SCORE"), r.TrustScore, model.TrustScoreMax))
	sb.WriteString(bar + "\n")

	return sb.String()
}

// RenderWorkflow renders the workflow visualizer widget.
func RenderWorkflow(st model.WorkflowState) string {
	current := st.Current()

	nodes := make([]string, 0, len(model.WorkflowNodes())*2)
	for i, n := range model.WorkflowNodes() {
		if i > 0 {
			nodes = append(nodes, faintStyle.Render(" ── "))
		}

		style := nodeStyle
		if n == current.ActiveNode {
			c := nodeColor(string(n))
			style = style.BorderForeground(c).Foreground(c).Bold(true)
		}
		nodes = append(nodes, style.Render(strings.ToUpper(string(n))))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, nodes...)
	caption := boldStyle.Render(current.Caption)

	return panelStyle.Render(row + "\n\n" + caption)
}

// RenderRisk renders the static risk distribution widget.
func RenderRisk(dist model.RiskDistribution) string {
	var sb strings.Builder
	sb.WriteString(boldStyle.Render(fmt.Sprintf("%d%%", dist.HighRiskPercent)) + " " + mutedStyle.Render(strings.ToUpper(dist.Label)))
	sb.WriteString("   " + dangerStyle.Render("●") + " " + dist.Badge + "\n\n")

	for _, s := range dist.Segments {
		width := 0
		if dist.Circumference > 0 {
			width = int(s.Length / dist.Circumference * barWidth)
		}
		style := successStyle
		switch s.Level {
		case model.RiskLevelHigh:
			style = dangerStyle
		case model.RiskLevelWarning:
			style = lipgloss.NewStyle().Foreground(orange)
		case model.RiskLevelSafe:
			style = accentStyle
		}
		sb.WriteString(fmt.Sprintf("%-8s %s\n", s.Level, style.Render(strings.Repeat("█", width))))
	}
	sb.WriteString("\n")

	rows := make([][]string, 0, len(dist.Categories))
	for _, c := range dist.Categories {
		rows = append(rows, []string{lipgloss.NewStyle().Foreground(categoryColor(c.Color)).Render("●"), c.Name})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...)
	sb.WriteString(t.String())

	return panelStyle.Render(sb.String())
}
