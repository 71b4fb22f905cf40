package cmd

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/app"
	"github.com/abhisek/wordiz/internal/config"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads config, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(st, cfg)
}
