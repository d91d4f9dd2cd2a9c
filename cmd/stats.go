package cmd

import (
	"fmt"

	"github.com/listen2bea/listen2bea/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show listening statistics",
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

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Sessions:          %d\n", stats.Sessions)
		fmt.Printf("Sentences played:  %d\n", stats.SentencesPlayed)
		fmt.Printf("Time listening:    %s\n", fmtSecs(stats.ListeningSecs))
		fmt.Printf("Skipped:           %d\n", stats.Skipped)
		fmt.Printf("Playback errors:   %d\n", stats.PlaybackErrors)
		if stats.LLMRequests > 0 {
			fmt.Printf("Explanations:      %d (%d in / %d out tokens)\n",
				stats.LLMRequests, stats.InputTokens, stats.OutputTokens)
		}
		return nil
	},
}

func fmtSecs(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%dh%02dm", secs/3600, (secs%3600)/60)
}
