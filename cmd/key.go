package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the API key used for AI classification",
}

var keySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store an API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if !eng.SetAPIKey(cmd.Context(), args[0]) {
			return fmt.Errorf("API key not stored: key is empty or the database rejected it")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key stored. AI classification is enabled.")
		return nil
	},
}

var keyRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.RemoveAPIKey(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API key removed. Tasks will be scored locally.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyRemoveCmd)
}
