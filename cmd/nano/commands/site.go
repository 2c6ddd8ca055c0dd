package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFundometerCommand creates the fundometer command.
func NewFundometerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fundometer",
		Short: "Show the fundraising tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			fund, err := client.Fundometer(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching fundometer: %w", err)
			}

			handled, err := renderStructured(fund)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Goal", "Raised", "Donors")
			_ = table.Append(
				fmt.Sprintf("$%d", fund.Goal),
				fmt.Sprintf("$%.2f", float64(fund.Raised)),
				fmt.Sprintf("%d", fund.DonorCount),
			)

			return table.Render()
		},
	}
}

// NewStoreCommand creates the store command.
func NewStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "List merchandise store items",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			items, err := client.StoreItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching store items: %w", err)
			}

			handled, err := renderStructured(items)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Title", "Handle", "Image")

			for _, item := range items {
				_ = table.Append(item.Title, item.Handle, string(item.Image))
			}

			return table.Render()
		},
	}
}

// NewPageCommand creates the page command.
func NewPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page SLUG",
		Short: "Show a content page",
		Long:  `Show a content page by slug, e.g. "pep-talks" or "about-nano"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Page(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetching page: %w", err)
			}

			handled, err := renderStructured(resp.Data)
			if handled {
				return err
			}

			page := resp.Data

			fmt.Println(page.Data.Headline)
			fmt.Println()
			fmt.Println(page.Data.Body)

			return nil
		},
	}
}

// NewOffersCommand creates the offers command.
func NewOffersCommand() *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "offers",
		Short: "List current sponsor offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if random {
				resp, err := client.RandomOffer(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetching random offer: %w", err)
				}

				handled, err := renderStructured(resp.Data)
				if handled {
					return err
				}

				fmt.Println(resp.Data.Data.Headline)

				return nil
			}

			offers, err := client.Offers(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching offers: %w", err)
			}

			handled, err := renderStructured(offers)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Headline", "Code", "Expires")

			for _, offer := range offers {
				expires := NotAvailable
				if offer.Data.Data.ExpiresAt != nil {
					expires = offer.Data.Data.ExpiresAt.Format("2006-01-02")
				}

				_ = table.Append(
					offer.Data.Data.Headline,
					stringOrNA(offer.Data.Data.OfferCode),
					expires,
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "show one random offer")

	return cmd
}
