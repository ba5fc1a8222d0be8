package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp map[string]string
			if err := client.Get("/api/v1/health", &resp); err != nil {
				return err
			}

			return Print(resp)
		},
	}
}
