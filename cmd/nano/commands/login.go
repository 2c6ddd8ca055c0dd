package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wrimolabs/nanowrimo/pkg/nanoclient"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to NaNoWriMo",
		Long:  "Sign in with your NaNoWriMo credentials and save the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username or email: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			config := loadConfig()

			client, err := nanoclient.NewWithLogin(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			config.Username = username

			// Persist the session token, never the password
			if tokenHolder, ok := client.(interface{ SessionToken() string }); ok {
				config.Token = tokenHolder.SessionToken()
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s\n", username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if not given)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of NaNoWriMo",
		Long:  "End the current session and forget the saved token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token == "" {
				fmt.Println("Not signed in")

				return nil
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			// The saved token is dropped even when the API call fails
			err = client.Logout(cmd.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: logout request failed: %v\n", err)
			}

			config.Token = ""

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("Signed out")

			return nil
		},
	}
}
