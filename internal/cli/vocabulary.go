package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexibook/wordsearch-go/internal/api/request"
)

func newVocabCmd() *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary book commands",
	}

	vocabCmd.AddCommand(newVocabSaveCmd())

	return vocabCmd
}

func newVocabSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <book-id> <difficulty> <word=translation>...",
		Short: "Save word pairs into a vocabulary book",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([]request.VocabularyPair, 0, len(args)-2)
			for _, arg := range args[2:] {
				word, translation, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid pair %q, expected word=translation", arg)
				}
				pairs = append(pairs, request.VocabularyPair{
					Word:        word,
					Translation: translation,
				})
			}

			req := request.SaveVocabularyRequest{Pairs: pairs}

			path := fmt.Sprintf("/api/v1/books/%s/%s/words", args[0], args[1])
			if err := client.Put(path, req, nil); err != nil {
				return err
			}

			fmt.Printf("Saved %d pairs\n", len(pairs))
			return nil
		},
	}
}
