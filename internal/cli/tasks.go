package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/tasks"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func newAddCmd(opt *Options) *cobra.Command {
	var deadline string
	cmd := &cobra.Command{
		Use:   "add <message...> --deadline YYYY-MM-DD",
		Short: "Add a task (message can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			if err := opt.app.Tasks.Add(msg, deadline); err != nil {
				if errors.Is(err, tasks.ErrBlank) {
					return usageError("tasklist add <message...> --deadline YYYY-MM-DD")
				}
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", opt.app.Tasks.Len()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD or DD-MM-YYYY)")
	return cmd
}

func newListCmd(opt *Options) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks with 1-based positions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if group {
				printGrouped(w, opt)
				return nil
			}
			all := opt.app.Tasks.Tasks()
			if len(all) == 0 {
				fmt.Fprintln(w, ui.Current().Muted.Render("no tasks"))
				return nil
			}
			for i, t := range all {
				fmt.Fprintln(w, formatRow(tasks.Entry{Position: i, Task: t}))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/completed")
	return cmd
}

func printGrouped(w io.Writer, opt *Options) {
	t := ui.Current()
	pending, completed := tasks.Partition(opt.app.Tasks.Tasks())

	lines := []string{t.Title.Render(fmt.Sprintf("Pending (%d)", len(pending)))}
	for _, e := range pending {
		lines = append(lines, formatRow(e))
	}
	lines = append(lines, "", t.Title.Render(fmt.Sprintf("Completed (%d)", len(completed))))
	for _, e := range completed {
		lines = append(lines, formatRow(e))
	}
	total := len(pending) + len(completed)
	lines = append(lines, "", ui.ProgressBar(len(completed), total, 20))
	fmt.Fprintln(w, ui.Panel(lines))
}

func formatRow(e tasks.Entry) string {
	t := ui.Current()
	msg := e.Task.Message
	if e.Task.IsComplete {
		msg = t.Done.Render(msg)
	}
	return fmt.Sprintf("%3d. %s %s  %s",
		e.Position+1,
		ui.Checkbox(e.Task.IsComplete),
		msg,
		t.Muted.Render("due "+e.Task.Deadline+"  added "+e.Task.CreatedAt),
	)
}

func newDoneCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "done <n>",
		Short: "Toggle completion of task n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePosition(opt, "done", args[0])
			if err != nil {
				return err
			}
			if err := opt.app.Tasks.ToggleComplete(i); err != nil {
				return fmt.Errorf("done: %w", err)
			}
			state := "pending"
			if t, _ := opt.app.Tasks.Get(i); t.IsComplete {
				state = "completed"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("#%d marked %s", i+1, state))
			return nil
		},
	}
}

func newRemoveCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete task n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePosition(opt, "rm", args[0])
			if err != nil {
				return err
			}
			if err := opt.app.Tasks.Delete(i); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newMoveCmd(opt *Options, dir string) *cobra.Command {
	return &cobra.Command{
		Use:   dir + " <n>",
		Short: "Move task n " + dir + " one position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parsePosition(opt, dir, args[0])
			if err != nil {
				return err
			}
			move, to, edge := opt.app.Tasks.MoveUp, i, "top"
			if dir == "down" {
				move, to, edge = opt.app.Tasks.MoveDown, i+2, "bottom"
			}
			if err := move(i); err != nil {
				if errors.Is(err, tasks.ErrBoundary) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Muted.Render(fmt.Sprintf("#%d is already at the %s", i+1, edge)))
					return nil
				}
				return fmt.Errorf("%s: %w", dir, err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("moved to #%d", to))
			return nil
		},
	}
}

func newClearCmd(opt *Options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks (asks for confirmation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := opt.app.Tasks.Len()
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete all %d tasks? This cannot be undone. [y/N] ", n)
				if !confirmed(cmd.InOrStdin()) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Muted.Render("cancelled"))
					return nil
				}
			}
			if err := opt.app.Tasks.DeleteAll(); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("deleted %d tasks", n))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func confirmed(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// parsePosition turns a 1-based CLI index into a validated 0-based position.
func parsePosition(opt *Options, verb, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", verb, arg)
	}
	have := opt.app.Tasks.Len()
	if n < 1 || n > have {
		return 0, fmt.Errorf("%s: index out of range: have %d, got %d (run `tasklist ls` to see valid indexes)", verb, have, n)
	}
	return n - 1, nil
}
