package cmd

import (
	"fmt"
	"os"

	"github.com/listen2bea/listen2bea/internal/app"
	"github.com/listen2bea/listen2bea/internal/audio"
	"github.com/listen2bea/listen2bea/internal/hints"
	"github.com/listen2bea/listen2bea/internal/llm"
	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/listen2bea/listen2bea/internal/tatoeba"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	player, err := audio.NewExecPlayer()
	if err != nil {
		return fmt.Errorf("audio player: %w (install mpv or ffplay)", err)
	}

	eventRepo := st.EventRepo()
	deps := app.Deps{
		Client:    tatoeba.NewClient(),
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
		Player:    player,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Sentence explanations will be unavailable.")
	} else {
		deps.HintSvc = hints.NewService(provider, hints.DefaultConfig())
	}

	return app.Run(deps)
}
