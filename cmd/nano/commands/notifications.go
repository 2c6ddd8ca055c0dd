package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNotificationsCommand creates the notifications command.
func NewNotificationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List the signed-in user's notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Notifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching notifications: %w", err)
			}

			handled, err := renderStructured(resp.Data)
			if handled {
				return err
			}

			if len(resp.Data) == 0 {
				fmt.Println("No notifications")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("When", "Headline", "Status")

			for _, notification := range resp.Data {
				_ = table.Append(
					notification.Data.DisplayAt.Format("2006-01-02 15:04"),
					notification.Data.Headline,
					notification.Data.DisplayStatus.String(),
				)
			}

			return table.Render()
		},
	}
}
