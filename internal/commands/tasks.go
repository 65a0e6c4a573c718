package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-projects/internal/client"
	"github.com/adanyl0v/go-projects/internal/client/views"
)

func newTaskCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks of a project",
	}

	cmd.AddCommand(newTaskAddCmd(opts))
	cmd.AddCommand(newTaskStatusCmd(opts, "done", "Mark a task completed", client.StatusCompleted))
	cmd.AddCommand(newTaskStatusCmd(opts, "undo", "Mark a task pending again", client.StatusPending))
	cmd.AddCommand(newTaskDeleteCmd(opts))
	return cmd
}

func newTaskAddCmd(opts *rootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <project-id> <title>",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects+"/"+args[0])
			if err != nil {
				return err
			}

			task, err := session.API().AddTask(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.Success(fmt.Sprintf("Added task %s (%s)", task.Title, task.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}

func newTaskStatusCmd(opts *rootOptions, use, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <project-id> <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects+"/"+args[0])
			if err != nil {
				return err
			}

			task, err := session.API().UpdateTaskStatus(cmd.Context(), args[0], args[1], status)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.Title, task.Status)
			return nil
		},
	}
}

func newTaskDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id> <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects+"/"+args[0])
			if err != nil {
				return err
			}

			err = session.API().DeleteTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Task deleted")
			return nil
		},
	}
}
