package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// applyDateFlag sets or clears an optional date pointer from its flag,
// treating an explicitly empty flag value as "clear the date".
func applyDateFlag(flags *pflag.FlagSet, name, value string, dst **time.Time) error {
	if !flags.Changed(name) {
		return nil
	}
	d, err := parseDayFlag(name, value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

// parseDayFlag parses an optional YYYY-MM-DD flag into a date pointer.
func parseDayFlag(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDay(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return domain.DayPtr(d), nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var (
		title, start, end, status, assignee string
		row                                 int
		critical                            bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new work item",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &domain.WorkItem{
				Title:        title,
				Status:       domain.WorkItemStatus(status),
				RowIndex:     row,
				AssigneeName: assignee,
				Critical:     critical,
			}
			var err error
			if w.StartDate, err = parseDayFlag("start", start); err != nil {
				return err
			}
			if w.EndDate, err = parseDayFlag("end", end); err != nil {
				return err
			}

			if err := app.WorkItems.Create(context.Background(), w); err != nil {
				return err
			}

			fmt.Printf("Created work item %s (%s)\n", w.Title, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Work item title (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", string(domain.WorkItemPlanned), "Status: planned, in_progress, done, blocked")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee name")
	cmd.Flags().IntVar(&row, "row", -1, "Chart row index (-1 appends)")
	cmd.Flags().BoolVar(&critical, "critical", false, "Mark as critical path")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.WorkItems.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, w := range items {
				rows = append(rows, []string{
					formatter.TruncID(w.ID),
					strconv.Itoa(w.RowIndex),
					w.Title,
					formatter.StatusIndicator(w.Status),
					formatter.DateSpan(w),
					formatter.CriticalBadge(w.Critical),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "ROW", "TITLE", "STATUS", "DATES", ""},
				rows,
			))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var (
		title, start, end, status, assignee string
		critical                            bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := app.WorkItems.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				w.Title = title
			}
			if cmd.Flags().Changed("status") {
				w.Status = domain.WorkItemStatus(status)
			}
			if cmd.Flags().Changed("assignee") {
				w.AssigneeName = assignee
			}
			if cmd.Flags().Changed("critical") {
				w.Critical = critical
			}
			if err := applyDateFlag(cmd.Flags(), "start", start, &w.StartDate); err != nil {
				return err
			}
			if err := applyDateFlag(cmd.Flags(), "end", end, &w.EndDate); err != nil {
				return err
			}

			if err := app.WorkItems.Update(ctx, w); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", w.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Work item title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&status, "status", "", "Status: planned, in_progress, done, blocked")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee name")
	cmd.Flags().BoolVar(&critical, "critical", false, "Mark as critical path")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.WorkItems.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
