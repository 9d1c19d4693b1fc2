package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/service"
	"github.com/alexanderramin/chronos/internal/theme"
	"github.com/alexanderramin/chronos/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline     service.TimelineService
	WorkItems    service.WorkItemService
	Dependencies service.DependencyService
	Milestones   service.MilestoneService
	Import       service.ImportService

	Theme       *theme.Registry
	DefaultZoom timeline.ZoomLevel
	TouchMode   bool

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronos" command and registers all
// subcommands against the provided App. Running with no subcommand opens
// the chart TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronos",
		Short: "Interactive Gantt timeline for your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(app)
		},
	}

	root.AddCommand(
		newChartCmd(app),
		newImportCmd(app),
		newItemCmd(app),
		newDepCmd(app),
		newMilestoneCmd(app),
	)

	return root
}

func newChartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Open the interactive timeline chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(app)
		},
	}
}

// runChart starts the bubbletea program with mouse tracking enabled and
// repaints on theme switches.
func runChart(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("the chart needs an interactive terminal; pipe-friendly output is available via `chronos item list`")
	}

	p := tea.NewProgram(
		newAppModel(app),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Palette switches only change how tokens resolve; a repaint is all
	// the chart needs.
	unsubscribe := app.Theme.Subscribe(func() {
		p.Send(refreshViewMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
