package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <plan.yaml>",
		Short: "Import a YAML plan file",
		Long: `Import replaces nothing and appends everything: each run inserts the
plan's items, dependencies, and milestones as new records inside one
transaction. A plan that fails validation leaves the database untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan: %w", err)
			}

			result, err := app.Import.ImportPlan(context.Background(), data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d items, %d dependencies, %d milestones\n",
				result.Items, result.Dependencies, result.Milestones)
			return nil
		},
	}
}
