package cmd

import (
	"fmt"

	"github.com/praxisprep/praxis/internal/app"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/config"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
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

	return app.Run(app.Options{
		User:    user,
		Backend: backend,
		Tracker: tracker,
		Content: content.NewService(backend, tracker, st.ContentRepo()),
		Quiz:    quiz.NewService(backend, tracker, events),
		Events:  events,
		Plans:   st.PlanRepo(),
	})
}
