package cmd

import (
	"fmt"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/config"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's quota status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user := auth.FromEnv()
		tracker := usage.NewTracker(st.KVRepo(), nil, cfg.Usage.IsPremium, cfg.Usage.FreeDailyLimit)
		status := tracker.Status(cmd.Context(), user)

		if status.IsPremium {
			fmt.Printf("%s: premium plan, unlimited AI generations\n", user.Email)
			return nil
		}

		fmt.Printf("%s: %d of %d AI generations used today\n", user.Email, status.UsageCount, status.UsageLimit)
		if status.ResetTime != nil {
			fmt.Printf("resets around %s\n", status.ResetTime.Local().Format("Mon Jan 2 3:04 PM"))
		}
		if !status.CanUseFeature {
			fmt.Println("daily limit reached")
		}
		return nil
	},
}
