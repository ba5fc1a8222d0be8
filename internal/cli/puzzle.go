package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexibook/wordsearch-go/internal/api/request"
	"github.com/lexibook/wordsearch-go/internal/api/response"
)

func newPuzzleCmd() *cobra.Command {
	puzzleCmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Puzzle generation commands",
	}

	puzzleCmd.AddCommand(newPuzzleGenerateCmd())

	return puzzleCmd
}

func newPuzzleGenerateCmd() *cobra.Command {
	var (
		wordCount int
		words     []string
	)

	cmd := &cobra.Command{
		Use:   "generate <book-id> <difficulty>",
		Short: "Generate a word-search puzzle",
		Long: `Generate a word-search puzzle for a vocabulary book.

Words are drawn from the book's stored vocabulary unless --word flags
provide an explicit list.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.GeneratePuzzleRequest{
				BookID:     args[0],
				Difficulty: args[1],
				WordCount:  wordCount,
				Words:      words,
			}

			var resp response.Puzzle
			if err := client.Post("/api/v1/puzzles", req, &resp); err != nil {
				return err
			}

			return Print(&resp)
		},
	}

	cmd.Flags().IntVar(&wordCount, "count", 5, "Number of words to place")
	cmd.Flags().StringArrayVar(&words, "word", nil, "Explicit word to place (repeatable)")

	return cmd
}
