package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/taskscore/internal/aiclass"
	"github.com/abhisek/taskscore/internal/engine"
	"github.com/abhisek/taskscore/internal/heuristic"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the AI tiers and the heuristic bands",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "AI Tiers")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, t := range aiclass.Tiers() {
			fmt.Fprintf(out, "%s  %3d-%-3d pts  %s\n",
				levelBadge(engine.KindTier, string(t.Tier)), t.Min, t.Max, dimStyle.Render(t.Description))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Heuristic Bands")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, b := range heuristic.Bands() {
			fmt.Fprintf(out, "%s  difficulty %.2f-%.2f  %3d pts\n",
				levelBadge(engine.KindBand, string(b.Band)), b.Min, b.Max, b.BasePoints)
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Heuristic rewards are capped at %d points.", heuristic.MaxPoints)))
		return nil
	},
}
