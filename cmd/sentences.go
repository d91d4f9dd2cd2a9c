package cmd

import (
	"fmt"

	"github.com/listen2bea/listen2bea/internal/tatoeba"
	"github.com/spf13/cobra"
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "Fetch and print one page of sentences with audio",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		page, _ := cmd.Flags().GetInt("page")

		client := tatoeba.NewClient()
		result, err := client.FetchPage(cmd.Context(), tatoeba.Query{
			From: from,
			To:   to,
			Page: page,
		})
		if err != nil {
			return fmt.Errorf("fetch sentences: %w", err)
		}

		fmt.Printf("Page %d of %d (%d sentences total)\n\n", result.Number, result.LastPage, result.Total)
		for _, s := range result.Sentences {
			audio := " "
			if s.HasAudio() {
				audio = "♪"
			}
			fmt.Printf("%s %d  %s\n", audio, s.ID, s.Text)
			if t, ok := s.FirstTranslation(); ok {
				fmt.Printf("     → %s\n", t.Text)
			}
		}
		return nil
	},
}

func init() {
	sentencesCmd.Flags().String("from", "spa", "Source language code")
	sentencesCmd.Flags().String("to", "eng", "Target language code")
	sentencesCmd.Flags().Int("page", 1, "Page number")
}
