package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search NAME",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.SearchUsers(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("searching users: %w", err)
			}

			handled, err := renderStructured(resp.Data)
			if handled {
				return err
			}

			if len(resp.Data) == 0 {
				fmt.Println("No users found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Slug", "ID", "Location")

			for _, user := range resp.Data {
				_ = table.Append(
					user.Data.Name,
					user.Data.Slug,
					fmt.Sprintf("%d", user.GetID()),
					stringOrNA(user.Data.Location),
				)
			}

			return table.Render()
		},
	}
}
