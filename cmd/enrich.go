package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/wordiz/internal/enrich"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill in missing definitions and phonetics using an AI provider",
	Long: `Enrich looks up dictionary words that lack a definition or phonetic
transcription and backfills them via an OpenAI-compatible API.

Requires WORDIZ_OPENAI_API_KEY (or OPENAI_API_KEY) to be set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, ok := enrich.ConfigFromEnv()
		if !ok {
			return fmt.Errorf("no API key configured; set WORDIZ_OPENAI_API_KEY")
		}
		base, err := enrich.NewOpenAIProvider(cfg)
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}
		provider := enrich.WithRetry(base, cfg.Retry)

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.Words()
		list, err := repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		enriched := 0
		for _, w := range list {
			if w.Definition != "" && w.Phonetic != "" {
				continue
			}
			if limit > 0 && enriched >= limit {
				break
			}
			info, err := provider.Enrich(ctx, w.Text, w.Translation)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skip %q: %v\n", w.Text, err)
				continue
			}
			if w.Definition == "" {
				w.Definition = info.Definition
			}
			if w.Phonetic == "" {
				w.Phonetic = info.Phonetic
			}
			if w.PartOfSpeech == "" {
				w.PartOfSpeech = info.PartOfSpeech
			}
			if err := repo.Upsert(ctx, &w); err != nil {
				return fmt.Errorf("save %q: %w", w.Text, err)
			}
			enriched++
			fmt.Printf("✓ %s\n", w.Text)
		}
		fmt.Printf("Enriched %d words with %s.\n", enriched, provider.ModelID())
		return nil
	},
}

func init() {
	enrichCmd.Flags().Int("limit", 0, "Maximum number of words to enrich (0 = no limit)")
}
