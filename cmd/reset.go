package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"assay/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all assessments and results",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes everything, re-run with --force to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Save(store.SlotAssessments, []byte("[]")); err != nil {
			return fmt.Errorf("clear assessments: %w", err)
		}
		if err := st.Save(store.SlotResults, []byte("[]")); err != nil {
			return fmt.Errorf("clear results: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation guard")
}
