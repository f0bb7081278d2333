package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/planner"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage the task list",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRenameCmd(app),
		newTaskRemoveCmd(app),
		newTaskMoveCmd(app),
		newTaskScheduleCmd(app),
		newTaskTemplatesCmd(),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due, tags, template string
	var interactive bool
	priority := newPriorityValue()

	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a task to the end of the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.TaskInput{
				Title:    strings.Join(args, " "),
				Priority: priority.p,
				DueDate:  due,
				Tags:     tags,
			}
			if template != "" {
				tpl, ok := planner.LookupTemplate(template)
				if !ok {
					return fmt.Errorf("unknown template %q (available: %s)", template, strings.Join(planner.TemplateNames(), ", "))
				}
				in.Title = tpl.Title(in.Title)
				if !cmd.Flags().Changed("tags") {
					in.Tags = tpl.Tags
				}
			}
			if interactive {
				if err := requireInteractive(app); err != nil {
					return err
				}
				if err := taskForm(&in).Run(); err != nil {
					return err
				}
			}

			if _, err := app.Board.CreateTask(cmd.Context(), in); err != nil {
				return err
			}
			tasks := app.Board.Tasks()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskCreated(tasks[len(tasks)-1], len(tasks)-1))
			return nil
		},
	}

	cmd.Flags().Var(priority, "priority", "Priority: low, medium or high")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVarP(&template, "template", "t", "", "Start from a template ("+strings.Join(planner.TemplateNames(), ", ")+")")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the task in a form")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var search string
	filter := newFilterValue()

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Board.SetFilter(filter.mode); err != nil {
				return err
			}
			res := app.Board.Search(search)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(res.Tasks))
			return nil
		},
	}

	cmd.Flags().VarP(filter, "filter", "f", "Filter: "+filterNames())
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only tasks whose title or tags contain this text")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			view, err := app.Board.ToggleTaskCompletion(cmd.Context(), index, !undo)
			if err != nil {
				return err
			}
			state := "done"
			if undo {
				state = "open"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d marked %s.\n", index, state)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(view.Progress))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task open again")

	return cmd
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <index> <title...>",
		Short: "Change a task's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			if _, err := app.Board.RenameTaskInline(cmd.Context(), index, title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d renamed to %s.\n", index, formatter.Bold(title))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			title := ""
			if tasks := app.Board.Tasks(); index >= 0 && index < len(tasks) {
				title = tasks[index].Title
			}
			if _, err := app.Board.DeleteTask(cmd.Context(), index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d %s.\n", index, formatter.Bold(title))
			return nil
		},
	}
}

func newTaskMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a task to another position in the list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			if err := app.Board.PickUpTask(from); err != nil {
				return err
			}
			view, err := app.Board.DropOnTask(cmd.Context(), to)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(view))
			return nil
		},
	}
}

func newTaskScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <index> <day> <time>",
		Short: "Copy a task into a weekly slot, e.g. schedule 0 Mon 9:30",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := app.Board.PickUpTask(index); err != nil {
				return err
			}
			grid, err := app.Board.DropOnSlot(cmd.Context(), args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(grid, false))
			return nil
		},
	}
}

func newTaskTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List quick task templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, name := range planner.TemplateNames() {
				tpl, _ := planner.LookupTemplate(name)
				rows = append(rows, []string{name, fmt.Sprintf("%q", tpl.TitlePrefix), tpl.Tags})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"NAME", "TITLE PREFIX", "TAGS"}, rows))
			return nil
		},
	}
}
