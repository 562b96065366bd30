package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/praxisprep/praxis/internal/update"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer praxis release",
	RunE: func(cmd *cobra.Command, args []string) error {
		if version == "(devel)" {
			fmt.Println("Development build; release checks are skipped.")
			return nil
		}

		checker := update.NewChecker(update.WithTimeout(30 * time.Second))
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &update.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if !result.UpdateAvailable {
			fmt.Println("praxis is up to date.")
			return nil
		}
		fmt.Printf("A newer release is available: %s (running %s).\n",
			result.LatestVersion, result.CurrentVersion)
		fmt.Println("Download it from", result.ReleaseURL)
		return nil
	},
}
