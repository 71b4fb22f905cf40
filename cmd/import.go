package cmd

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import words from a JSON file into the dictionary",
	Long: `Import reads a JSON array of word entries and adds them to the dictionary.

Each entry needs at least "text" and "translation". Optional fields:
"definition", "phonetic", "part_of_speech", "audio_url", "image_url".
Existing words are updated in place without touching learning progress.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		report, err := importer.ImportFile(cmd.Context(), st.Words(), args[0])
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		fmt.Printf("Imported %d of %d words.\n", report.Imported, report.Total)
		return nil
	},
}
