package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexibook/wordsearch-go/internal/api/response"
)

func newLeaderboardCmd() *cobra.Command {
	lbCmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard query commands",
	}

	lbCmd.AddCommand(newLeaderboardMatchingCmd())
	lbCmd.AddCommand(newLeaderboardWordSearchCmd())

	return lbCmd
}

func newLeaderboardMatchingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "matching <book-id> <difficulty>",
		Short: "Show the matching game leaderboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/leaderboards/matching/%s/%s?limit=%d", args[0], args[1], limit)

			var resp response.MatchingLeaderboard
			if err := client.Get(path, &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries")

	return cmd
}

func newLeaderboardWordSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "wordsearch <book-id> <difficulty>",
		Short: "Show the word-search leaderboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/leaderboards/wordsearch/%s/%s?limit=%d", args[0], args[1], limit)

			var resp response.WordSearchLeaderboard
			if err := client.Get(path, &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries")

	return cmd
}
