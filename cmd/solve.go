package cmd

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/config"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/tutor"
	"github.com/praxisprep/praxis/internal/usage"
	"github.com/spf13/cobra"
)

var solveQuestion string

var solveCmd = &cobra.Command{
	Use:   "solve <image-file>",
	Short: "Solve a problem from a photo",
	Long:  "Send a photo of a problem to the AI tutor and print the worked solution.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

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
		backend := newBackend(cfg)
		events := st.EventRepo()
		tracker := usage.NewTracker(
			st.KVRepo(),
			usage.MultiLogger{usage.NewRemoteLogger(backend), usage.NewStoreLogger(events)},
			cfg.Usage.IsPremium,
			cfg.Usage.FreeDailyLimit,
		)
		defer tracker.Flush()

		chat := tutor.NewChat(backend, tracker, events, user)
		reply, err := chat.SolveImage(cmd.Context(), base64.StdEncoding.EncodeToString(raw), solveQuestion)
		if err != nil {
			if errors.Is(err, usage.ErrQuotaExceeded) {
				return fmt.Errorf("daily usage limit reached; try again tomorrow")
			}
			return err
		}

		fmt.Println(reply.Content)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveQuestion, "question", "q", "", "Question to ask about the image")
}
