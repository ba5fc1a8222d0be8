package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
)

func newScoreCmd() *cobra.Command {
	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Score submission commands",
	}

	scoreCmd.AddCommand(newScoreMatchingCmd())
	scoreCmd.AddCommand(newScoreWordSearchCmd())

	return scoreCmd
}

func newScoreMatchingCmd() *cobra.Command {
	var (
		mistakes  int
		timeSpent int
	)

	cmd := &cobra.Command{
		Use:   "matching <book-id> <difficulty>",
		Short: "Submit a matching game result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SubmitMatchingScoreRequest{
				BookID:     args[0],
				Difficulty: args[1],
				Mistakes:   mistakes,
				TimeSpent:  timeSpent,
			}

			var resp response.GameScore
			if err := client.Post("/api/v1/scores/matching", req, &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}

	cmd.Flags().IntVar(&mistakes, "mistakes", 0, "Number of mismatches made")
	cmd.Flags().IntVar(&timeSpent, "time", 0, "Time spent in seconds")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newScoreWordSearchCmd() *cobra.Command {
	var (
		timeSeconds int
		wordsFound  int
		totalWords  int
	)

	cmd := &cobra.Command{
		Use:   "wordsearch <book-id> <difficulty>",
		Short: "Submit a word-search completion time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SubmitWordSearchScoreRequest{
				BookID:      args[0],
				Difficulty:  args[1],
				TimeSeconds: timeSeconds,
				WordsFound:  wordsFound,
				TotalWords:  totalWords,
			}

			var resp response.WordSearchScore
			if err := client.Post("/api/v1/scores/wordsearch", req, &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}

	cmd.Flags().IntVar(&timeSeconds, "time", 0, "Completion time in seconds")
	cmd.Flags().IntVar(&wordsFound, "found", 0, "Number of words found")
	cmd.Flags().IntVar(&totalWords, "total", 0, "Total words in the puzzle")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
