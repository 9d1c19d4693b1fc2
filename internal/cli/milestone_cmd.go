package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "milestone",
		Aliases: []string{"ms"},
		Short:   "Manage milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneLinkCmd(app),
		newMilestoneUnlinkCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var (
		title  string
		target string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := domain.ParseDay(target)
			if err != nil {
				return fmt.Errorf("--target: %w", err)
			}
			m := &domain.Milestone{Title: title, TargetDate: date}
			if err := app.Milestones.Create(context.Background(), m); err != nil {
				return err
			}
			fmt.Printf("Created milestone %s (%s)\n", m.Title, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Milestone title (required)")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := app.Milestones.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(milestones))
			for _, m := range milestones {
				rows = append(rows, []string{
					formatter.TruncID(m.ID),
					m.Title,
					domain.FormatDay(m.TargetDate),
					formatter.RelativeDate(m.TargetDate),
					strconv.Itoa(len(m.LinkedWorkItemIDs)) + " linked",
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "TITLE", "TARGET", "WHEN", "ITEMS"},
				rows,
			))
			return nil
		},
	}
}

func newMilestoneLinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link <milestone-id> <item-id>",
		Short: "Link a work item to a milestone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Milestones.Link(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Linked.")
			return nil
		},
	}
}

func newMilestoneUnlinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <milestone-id> <item-id>",
		Short: "Unlink a work item from a milestone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Milestones.Unlink(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Unlinked.")
			return nil
		},
	}
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Milestones.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
