package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexibook/wordsearch-go/internal/api/response"
)

// Print outputs the value according to the configured output format
func Print(v any) error {
	if cfg.Output == "json" {
		return printJSON(v)
	}
	return printText(v)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printText(v any) error {
	switch t := v.(type) {
	case *response.AuthResponse:
		fmt.Printf("User:  %s (%s)\n", t.User.DisplayName, t.User.ID)
		fmt.Printf("Token: %s\n", t.SessionToken)
	case *response.User:
		fmt.Printf("ID:           %s\n", t.ID)
		fmt.Printf("Display name: %s\n", t.DisplayName)
		fmt.Printf("Guest:        %t\n", t.IsGuest)
	case *response.Puzzle:
		printPuzzle(t)
	case *response.GameScore:
		fmt.Printf("Score ID:   %s\n", t.ID)
		fmt.Printf("Score:      %d\n", t.Score)
		fmt.Printf("Mistakes:   %d\n", t.Mistakes)
		fmt.Printf("Time spent: %ds\n", t.TimeSpent)
	case *response.WordSearchScore:
		fmt.Printf("Score ID:    %s\n", t.ID)
		fmt.Printf("Time:        %ds\n", t.TimeSeconds)
		fmt.Printf("Words found: %d/%d\n", t.WordsFound, t.TotalWords)
	case *response.MatchingLeaderboard:
		if len(t.Entries) == 0 {
			fmt.Println("No scores recorded yet")
			return nil
		}
		fmt.Printf("%-4s %-20s %-8s %-10s %-8s\n", "#", "PLAYER", "SCORE", "MISTAKES", "TIME")
		for i, e := range t.Entries {
			fmt.Printf("%-4d %-20s %-8d %-10d %ds\n", i+1, e.DisplayName, e.Score, e.Mistakes, e.TimeSpent)
		}
	case *response.WordSearchLeaderboard:
		if len(t.Entries) == 0 {
			fmt.Println("No scores recorded yet")
			return nil
		}
		fmt.Printf("%-4s %-16s %-8s %s\n", "#", "USER", "TIME", "WORDS")
		for i, e := range t.Entries {
			fmt.Printf("%-4d %-16s %-8s %d/%d\n", i+1, e.UserID, fmt.Sprintf("%ds", e.TimeSeconds), e.WordsFound, e.TotalWords)
		}
	case map[string]string:
		for k, val := range t {
			fmt.Printf("%s: %s\n", k, val)
		}
	default:
		return printJSON(v)
	}
	return nil
}

func printPuzzle(p *response.Puzzle) {
	fmt.Printf("Puzzle %dx%d (%s)\n\n", p.Size, p.Size, p.Difficulty)
	for _, row := range p.Grid {
		fmt.Println(strings.Join(row, " "))
	}
	if len(p.Words) > 0 {
		fmt.Printf("\nWords: %s\n", strings.Join(p.Words, ", "))
	}
}
