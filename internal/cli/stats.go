package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TaskStatsUseCase().Execute(cmd.Context(), usecase.TaskStatsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Total:           %d\n", out.Total)
			_, _ = fmt.Fprintf(w, "Completed:       %d\n", out.Completed)
			_, _ = fmt.Fprintf(w, "Pending:         %d\n", out.Pending)
			_, _ = fmt.Fprintf(w, "High priority:   %d\n", out.HighPriority)
			_, _ = fmt.Fprintf(w, "Due today:       %d\n", out.DueToday)
			_, _ = fmt.Fprintf(w, "Completion rate: %d%%\n", out.CompletionRate)
			return nil
		},
	}
	return cmd
}
