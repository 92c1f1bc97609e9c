package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether AI classification is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		status := eng.Status(cmd.Context())
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		}

		available := errStyle.Render("no")
		if status.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render("AI"), available)
		fmt.Fprintf(out, "%s%v\n", labelStyle.Render("API key"), status.HasAPIKey)
		fmt.Fprintf(out, "%s%s (%s)\n", labelStyle.Render("Model"), status.Model, appConfig.LLM.Provider)
		fmt.Fprintf(out, "%s%d\n", labelStyle.Render("Requests"), status.RequestCount)
		if status.LastError != "" {
			fmt.Fprintf(out, "%s%s\n", labelStyle.Render("Last error"), errStyle.Render(status.LastError))
		}
		if !status.HasAPIKey {
			fmt.Fprintln(out, dimStyle.Render("Run `taskscore key set <key>` to enable AI classification."))
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("json", false, "Print the status as JSON")
}
