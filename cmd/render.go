package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/taskscore/internal/aiclass"
	"github.com/abhisek/taskscore/internal/engine"
	"github.com/abhisek/taskscore/internal/heuristic"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
)

// bandColors mirrors the tier palette across the five heuristic bands.
var bandColors = map[heuristic.Band]string{
	heuristic.BandTiny:   "#4CAF50",
	heuristic.BandSmall:  "#8BC34A",
	heuristic.BandMedium: "#FF9800",
	heuristic.BandBig:    "#FF5722",
	heuristic.BandEpic:   "#f44336",
}

// levelBadge renders a level name as a coloured pill.
func levelBadge(kind engine.Kind, level string) string {
	color := "#94A3B8"
	label := strings.ToUpper(level)
	switch kind {
	case engine.KindTier:
		if info, ok := aiclass.LookupTier(aiclass.Tier(level)); ok {
			color = info.Color
			label = info.Icon + " " + strings.ToUpper(info.Name)
		}
	case engine.KindBand:
		if c, ok := bandColors[heuristic.Band(level)]; ok {
			color = c
		}
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(label)
}

func renderClassification(task string, c engine.TaskClassification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", levelBadge(c.Kind, c.Level), lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d pts", c.Points)))
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Task"), task)
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Source"), c.Source)
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Rationale"), c.Rationale)
	if c.TimeEstimate != "" {
		fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Estimate"), c.TimeEstimate)
	}
	if c.Confidence != nil {
		fmt.Fprintf(&b, "%s%.0f%%\n", labelStyle.Render("Confidence"), *c.Confidence)
	}
	if c.Complexity != nil {
		fmt.Fprintf(&b, "%s%.2f\n", labelStyle.Render("Complexity"), *c.Complexity)
	}
	if c.AIError != "" {
		fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("AI error"), errStyle.Render(c.AIError))
	}
	return b.String()
}
