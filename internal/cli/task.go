package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Due         string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

Examples:
  # Create a task due tomorrow
  taskdeck add --title "Write report" --due 2026-03-01

  # Create a high priority task with tags
  taskdeck add --title "Fix login bug" --priority high --tag bug --tag urgent`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := domain.NewTaskDraft(c.Clock.Now())
			draft.Title = opts.Title
			draft.Description = opts.Description
			if opts.Priority != "" {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				draft.Priority = p
			}
			if opts.Status != "" {
				s, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				draft.Status = s
			}
			if opts.Due != "" {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
				draft.DueDate = due
			}
			for _, tag := range opts.Tags {
				draft.AddTag(tag)
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{Draft: draft})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			if out.Task.DueSoon {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Due soon.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium, high")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Status: todo, in-progress, completed")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tag (repeatable)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newEditCommand creates the edit command for updating tasks.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Status      string
		Due         string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an existing task",
		Long: `Update fields of an existing task. Only the given flags change;
everything else keeps its current value. --tag replaces the tag list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := c.Tasks.Get(id)
			if err != nil {
				return err
			}
			if task == nil {
				return domain.ErrTaskNotFound
			}

			draft := domain.DraftOf(task)
			if cmd.Flags().Changed("title") {
				draft.Title = opts.Title
			}
			if cmd.Flags().Changed("desc") {
				draft.Description = opts.Description
			}
			if opts.Priority != "" {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				draft.Priority = p
			}
			if opts.Status != "" {
				s, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				draft.Status = s
			}
			if opts.Due != "" {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
				draft.DueDate = due
			}
			if cmd.Flags().Changed("tag") {
				draft.Tags = nil
				for _, tag := range opts.Tags {
					draft.AddTag(tag)
				}
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), usecase.EditTaskInput{TaskID: id, Draft: draft})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority: low, medium, high")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status: todo, in-progress, completed")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Replacement tag list (repeatable)")

	return cmd
}

// newToggleCommand creates the toggle command for flipping completion.
func newToggleCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip a task's completion",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if out.Task == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d.\n", id)
				return nil
			}

			state := "pending"
			if out.Task.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s.\n", out.Task.ID, state)
			return nil
		},
	}
	return cmd
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long:    "Delete a task. Asks for confirmation unless --yes is given.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := c.Tasks.Get(id)
			if err != nil {
				return err
			}
			if task == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No task #%d.\n", id)
				return nil
			}

			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %q? [y/N] ", task.Title)) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		Search string
		Sort   string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task list.

Output format is tab-separated with columns:
  ID, DONE, PRIORITY, STATUS, DUE, TITLE, TAGS

Examples:
  # Tasks due within the next three days
  taskdeck list --filter dueSoon

  # Search by title, description or tag
  taskdeck list --search report

  # Order by priority
  taskdeck list --sort priority`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := c.Config.InitialQuery()
			if opts.Filter != "" {
				f, err := domain.ParseFilter(opts.Filter)
				if err != nil {
					return err
				}
				query.Filter = f
			}
			if opts.Sort != "" {
				k, err := domain.ParseSortKey(opts.Sort)
				if err != nil {
					return err
				}
				query.Sort = k
			}
			query.Search = opts.Search

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Query: query})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d tasks.\n", len(out.Tasks), out.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Filter: all, active, completed, highPriority, dueSoon")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Substring search over title, description and tags")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "o", "", "Sort: dueDate, priority, title, created")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tSTATUS\tDUE\tTITLE\tTAGS")

	for _, task := range tasks {
		tagsStr := "-"
		if len(task.Tags) > 0 {
			tagsStr = "[" + strings.Join(task.Tags, ",") + "]"
		}

		dueStr := domain.FormatDate(task.DueDate)
		if task.DueSoon && !task.Completed {
			dueStr += " !"
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			StatusIcon(task.Completed),
			task.Priority,
			task.Status,
			dueStr,
			task.Title,
			tagsStr,
		)
	}
}

// StatusIcon returns the completion marker used in list output.
func StatusIcon(completed bool) string {
	if completed {
		return "x"
	}
	return "-"
}

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

// confirm reads a y/N answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
