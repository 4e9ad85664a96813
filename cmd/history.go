package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded training sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.EventRepo().QuerySessions(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-10s  %6s  %5s  %8s\n",
			"Ended", "Name", "Role", "Score", "Done", "Time")
		fmt.Println(strings.Repeat("─", 78))
		for _, e := range sessions {
			fmt.Printf("%-19s  %-20s  %-10s  %6d  %5d  %8s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Identity, 20),
				e.Role,
				e.Score,
				e.Completed,
				session.FormatElapsed(time.Duration(e.DurationSecs)*time.Second),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
