package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"assay/internal/assessment"
	"assay/internal/export"
	"assay/internal/result"
)

var exportCmd = &cobra.Command{
	Use:   "export <assessment>",
	Short: "Export an assessment's results as Markdown",
	Long:  "Export every recorded result of one assessment as Markdown, matched by id or by title (case-insensitive). Prints to stdout unless --copy is given.",
	Args:  cobra.ExactArgs(1),
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

		a, err := findAssessment(assessments, args[0])
		if err != nil {
			return err
		}

		ordered := result.SortedNewestFirst(results.ListByAssessment(a.ID))
		md := export.FormatResults(a, ordered)

		if toClipboard, _ := cmd.Flags().GetBool("copy"); toClipboard {
			if err := clipboard.WriteAll(md); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d results to clipboard.\n", len(ordered))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("copy", false, "Copy to clipboard instead of printing")
}

// findAssessment matches by exact id first, then by case-insensitive
// title. Ambiguous titles are an error rather than a silent pick.
func findAssessment(repo *assessment.Repository, key string) (assessment.Assessment, error) {
	if a, err := repo.Get(key); err == nil {
		return a, nil
	}

	var matches []assessment.Assessment
	for _, a := range repo.List() {
		if strings.EqualFold(a.Title, key) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return assessment.Assessment{}, fmt.Errorf("no assessment matches %q", key)
	case 1:
		return matches[0], nil
	default:
		return assessment.Assessment{}, fmt.Errorf("%d assessments titled %q, use the id instead", len(matches), key)
	}
}
