// Package cli provides the command-line interface for taskdeck.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupTask = "task"
	groupView = "view"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Terminal task manager",
		Long: `taskdeck is a terminal task manager. Tasks live in memory for the
duration of the session: create, edit, toggle and delete them, and slice
the view by filter, search and sort.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	deleteCmd := newDeleteCommand(c)
	deleteCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupView

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupView

	root.AddCommand(
		addCmd,
		toggleCmd,
		editCmd,
		deleteCmd,
		listCmd,
		statsCmd,
	)

	return root
}

// launchTUI starts the bubbletea program.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
