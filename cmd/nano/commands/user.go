package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

// NewUserCommand creates the user command group.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect the signed-in user",
	}

	cmd.AddCommand(newUserShowCommand())
	cmd.AddCommand(newUserProjectsCommand())

	return cmd
}

func newUserShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.CurrentUser(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("fetching current user: %w", err)
			}

			user := resp.Data

			handled, err := renderStructured(user)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			_ = table.Append("Name", user.Data.Name)
			_ = table.Append("Slug", user.Data.Slug)
			_ = table.Append("ID", fmt.Sprintf("%d", user.GetID()))
			_ = table.Append("Email", stringOrNA(user.Data.Email))
			_ = table.Append("Time zone", user.Data.TimeZone)
			_ = table.Append("Bio", stringOrNA(user.Data.Bio))
			_ = table.Append("Member since", user.Data.CreatedAt.Format("2006-01-02"))

			return table.Render()
		},
	}
}

func newUserProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the signed-in user's projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			user, err := client.CurrentUser(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("fetching current user: %w", err)
			}

			query := nano.NewQuery().Filter("user_id", uint64(user.Data.GetID()))

			projects, err := nano.GetAllAs[*nano.ProjectObject](cmd.Context(), client, nano.KindProject, query)
			if err != nil {
				return fmt.Errorf("fetching projects: %w", err)
			}

			handled, err := renderStructured(projects.Data)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Title", "ID", "Status", "Type", "Created")

			for _, project := range projects.Data {
				_ = table.Append(
					project.Data.Title,
					fmt.Sprintf("%d", project.GetID()),
					project.Data.Status.String(),
					project.Data.WritingType.String(),
					project.Data.CreatedAt.Format("2006-01-02"),
				)
			}

			return table.Render()
		},
	}
}
