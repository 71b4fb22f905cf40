package cmd

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/words"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		counts, err := st.Words().StatusCounts(ctx)
		if err != nil {
			return fmt.Errorf("load word counts: %w", err)
		}
		events, err := st.Events()
		if err != nil {
			return fmt.Errorf("open events: %w", err)
		}
		stats, err := events.Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		total := 0
		for _, n := range counts {
			total += n
		}
		fmt.Printf("Dictionary: %d words\n", total)
		fmt.Printf("  learned:      %d\n", counts[words.StatusLearned])
		fmt.Printf("  in progress:  %d\n", counts[words.StatusInProgress])
		fmt.Printf("  needs review: %d\n", counts[words.StatusNeedsReview])
		fmt.Printf("  difficult:    %d\n", counts[words.StatusDifficult])
		fmt.Printf("  not started:  %d\n", counts[words.StatusNotStarted])
		fmt.Println()
		fmt.Printf("Sessions completed: %d\n", stats.SessionsCompleted)
		fmt.Printf("Answers: %d (%d correct, %d%% accuracy)\n",
			stats.TotalAnswers, stats.CorrectAnswers, stats.Accuracy())
		fmt.Printf("Total score: %d\n", stats.TotalScore)
		return nil
	},
}
