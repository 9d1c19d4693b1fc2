package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage dependencies between work items",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepListCmd(app),
		newDepRemoveCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var (
		depType string
		lag     int
	)

	cmd := &cobra.Command{
		Use:   "add <predecessor-id> <successor-id>",
		Short: "Add a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Dependencies.Add(context.Background(), args[0], args[1], domain.DependencyType(depType), lag)
			if err != nil {
				return err
			}
			fmt.Println("Added dependency.")
			return nil
		},
	}

	cmd.Flags().StringVar(&depType, "type", string(domain.FinishToStart), "Dependency type: finish_to_start, start_to_start, finish_to_finish")
	cmd.Flags().IntVar(&lag, "lag", 0, "Lead/lag in days (negative for lead)")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Dependencies.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(deps))
			for _, d := range deps {
				rows = append(rows, []string{
					formatter.TruncID(d.PredecessorID),
					formatter.TruncID(d.SuccessorID),
					string(d.Type),
					strconv.Itoa(d.LeadLagDays),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"FROM", "TO", "TYPE", "LAG"},
				rows,
			))
			return nil
		},
	}
}

func newDepRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <predecessor-id> <successor-id>",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Dependencies.Remove(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
