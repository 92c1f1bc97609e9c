package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [task...]",
	Short: "Classify a task and show its point reward",
	Long: "Classify the task given as arguments. With no arguments, every non-empty line\n" +
		"read from stdin is classified as a separate task.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		var tasks []string
		if len(args) > 0 {
			tasks = []string{strings.Join(args, " ")}
		} else {
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if line := strings.TrimSpace(sc.Text()); line != "" {
					tasks = append(tasks, line)
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read tasks: %w", err)
			}
		}
		if len(tasks) == 0 {
			return fmt.Errorf("no task given")
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		results := eng.ClassifyBatch(cmd.Context(), tasks)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if len(results) == 1 {
				return enc.Encode(results[0])
			}
			return enc.Encode(results)
		}

		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, renderClassification(tasks[i], r))
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print the classification as JSON")
}
