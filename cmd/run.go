package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"assay/internal/app"
	"assay/internal/assessment"
	"assay/internal/result"
	"assay/internal/store"
)

// runApp opens the store, builds the repositories, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	assessments, results, err := openRepos(st)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Assessments: assessments,
		Results:     results,
	})
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func openRepos(st *store.Store) (*assessment.Repository, *result.Repository, error) {
	assessments, err := assessment.NewRepository(st)
	if err != nil {
		return nil, nil, fmt.Errorf("load assessments: %w", err)
	}
	results, err := result.NewRepository(st)
	if err != nil {
		return nil, nil, fmt.Errorf("load results: %w", err)
	}
	return assessments, results, nil
}
