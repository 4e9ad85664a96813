package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show points awarded per exercise type",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		totals, err := s.EventRepo().ScoreTotalsByKind(context.Background())
		if err != nil {
			return fmt.Errorf("query score totals: %w", err)
		}
		if len(totals) == 0 {
			fmt.Println("No scores recorded yet.")
			return nil
		}

		fmt.Printf("%-14s  %8s  %8s\n", "Exercise", "Awards", "Points")
		fmt.Println(strings.Repeat("─", 34))
		var awards, points int
		for _, t := range totals {
			fmt.Printf("%-14s  %8d  %8d\n", t.Kind, t.Awards, t.Points)
			awards += t.Awards
			points += t.Points
		}
		fmt.Println(strings.Repeat("─", 34))
		fmt.Printf("%-14s  %8d  %8d\n", "TOTAL", awards, points)
		return nil
	},
}
