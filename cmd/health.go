package cmd

import (
	"fmt"

	"github.com/praxisprep/praxis/internal/config"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the Praxis backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		backend := newBackend(cfg)

		if err := backend.Health(cmd.Context()); err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		fmt.Println("backend OK:", cfg.API.BaseURL)
		return nil
	},
}
