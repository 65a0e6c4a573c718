package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-projects/internal/client"
	"github.com/adanyl0v/go-projects/internal/client/views"
	"github.com/adanyl0v/go-projects/internal/models"
)

func newProjectsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "projects"},
		Short:   "List your projects with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects)
			if err != nil {
				return err
			}

			summaries, err := session.ListProjects(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), views.ProjectList(session.Username(), summaries))
			return nil
		},
	}
}

func newProjectCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <project-id>",
		Short: "Show a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects+"/"+args[0])
			if err != nil {
				return err
			}

			project, err := session.API().GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), views.Project(project))
			return nil
		},
	}

	cmd.AddCommand(newProjectCreateCmd(opts))
	cmd.AddCommand(newProjectDeleteCmd(opts))
	return cmd
}

func newProjectCreateCmd(opts *rootOptions) *cobra.Command {
	var req client.CreateProjectRequest

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a project",
		Example: `  projects project create --name "Portfolio" --type "Web Development" --duration "3 weeks"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects)
			if err != nil {
				return err
			}

			project, err := session.CreateProject(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, client.ErrProjectLimit) {
					return fmt.Errorf("you already have %d projects, delete one first", client.MaxProjects)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.Success(fmt.Sprintf("Created project %s (%s)", project.Name, project.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "project name")
	cmd.Flags().StringVar(&req.Type, "type", "", "one of: "+strings.Join(models.ProjectTypes, ", "))
	cmd.Flags().StringVar(&req.Duration, "duration", "", `planned duration such as "3 weeks" (days, weeks, months)`)
	cmd.Flags().StringVar(&req.Description, "description", "", "project description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

func newProjectDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project with all its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := opts.guard(cmd.Context(), client.ViewProjects)
			if err != nil {
				return err
			}

			err = session.API().DeleteProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Project deleted")
			return nil
		},
	}
}
