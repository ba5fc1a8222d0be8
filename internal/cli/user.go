package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	userCmd.AddCommand(newUserGuestCmd())
	userCmd.AddCommand(newUserRegisterCmd())
	userCmd.AddCommand(newUserLoginCmd())
	userCmd.AddCommand(newUserLogoutCmd())
	userCmd.AddCommand(newUserMeCmd())

	return userCmd
}

func newUserGuestCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Create a guest user and save the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGuestRequest{DisplayName: displayName}

			var resp response.AuthResponse
			if err := client.Post("/api/v1/users/guest", req, &resp); err != nil {
				return err
			}

			if err := cfg.SaveToken(resp.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			return Print(&resp)
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name for the guest user")

	return cmd
}

func newUserRegisterCmd() *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Register a new user account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.RegisterRequest{
				Username:    args[0],
				Password:    args[1],
				DisplayName: displayName,
			}

			var resp response.AuthResponse
			if err := client.Post("/api/v1/users/register", req, &resp); err != nil {
				return err
			}

			if err := cfg.SaveToken(resp.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			return Print(&resp)
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to username)")

	return cmd
}

func newUserLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and save the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.LoginRequest{
				Username: args[0],
				Password: args[1],
			}

			var resp response.AuthResponse
			if err := client.Post("/api/v1/users/login", req, &resp); err != nil {
				return err
			}

			if err := cfg.SaveToken(resp.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			return Print(&resp)
		},
	}
}

func newUserLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/users/logout", nil, nil); err != nil {
				return err
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}

func newUserMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.User
			if err := client.Get("/api/v1/users/me", &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}
}
