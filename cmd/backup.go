package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"assay/internal/backup"
	"assay/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Write all data to a JSON backup file",
	Long:  "Write every assessment and result to a single JSON file. With no argument the backup goes to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		assessments, results, err := openRepos(st)
		if err != nil {
			return err
		}

		data, err := backup.Encode(time.Now().UnixMilli(), assessments.List(), results.List())
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d assessments and %d results to %s\n",
			assessments.Count(), results.Count(), args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace all data from a JSON backup file",
	Long:  "Validate a backup file and replace the current assessments and results with its contents. Refuses to overwrite existing data without --force.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		file, err := backup.Decode(data)
		if err != nil {
			return fmt.Errorf("invalid backup: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		assessments, results, err := openRepos(st)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if (assessments.Count() > 0 || results.Count() > 0) && !force {
			return fmt.Errorf("store already holds %d assessments and %d results, re-run with --force to replace them",
				assessments.Count(), results.Count())
		}

		if err := saveSlot(st, store.SlotAssessments, file.Assessments); err != nil {
			return err
		}
		if err := saveSlot(st, store.SlotResults, file.Results); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d assessments and %d results from %s\n",
			len(file.Assessments), len(file.Results), args[0])
		return nil
	},
}

func saveSlot(kv store.KV, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	if err := kv.Save(slot, data); err != nil {
		return fmt.Errorf("restore slot %q: %w", slot, err)
	}
	return nil
}

func init() {
	restoreCmd.Flags().Bool("force", false, "Replace existing data without asking")
}
