package cmd

import (
	"fmt"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's local usage counter",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if err := st.KVRepo().Delete(cmd.Context(), usage.Key(user.ID)); err != nil {
			return fmt.Errorf("clear usage record: %w", err)
		}
		fmt.Printf("usage counter cleared for %s\n", user.ID)
		return nil
	},
}
