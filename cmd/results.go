package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/safetypro/internal/catalog"
	"github.com/abhisek/safetypro/internal/dashboard"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the class results table",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		source, _ := cmd.Flags().GetString("source")

		var all []catalog.StudentResult
		switch source {
		case "mock":
			cat, err := loadCatalog(cmd)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			all = cat.Results
		case "local":
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			events, err := s.EventRepo().QuerySessions(context.Background(), store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("query sessions: %w", err)
			}
			all = dashboard.FromSessions(events)
		default:
			return fmt.Errorf("unknown source %q (want mock or local)", source)
		}

		sel := dashboard.DateSelector(date)
		visible := dashboard.Filter(all, sel)
		sum := dashboard.Summarize(visible)

		fmt.Printf("Resultados · %s\n\n", sel)
		if sum.Count == 0 {
			fmt.Println("Nenhum resultado para esta data.")
			return nil
		}

		fmt.Printf("Alunos: %d   Média: %d pts   Destaque: %s (%d)\n\n",
			sum.Count, sum.Average, sum.Best.Name, sum.Best.Score)

		fmt.Printf("%-4s  %-20s  %6s  %7s  %7s  %-10s  %s\n",
			"#", "Nome", "Pontos", "Tempo", "Tarefas", "Data", "")
		fmt.Println(strings.Repeat("─", 80))
		for i, r := range dashboard.Ranked(visible) {
			bar := strings.Repeat("█", dashboard.BarPercent(r.Score, sum.MaxScore)/5)
			fmt.Printf("%-4d  %-20s  %6d  %7s  %7d  %-10s  %s\n",
				i+1, truncate(r.Name, 20), r.Score, r.Elapsed, r.CompletedTasks, r.Date, bar)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().String("date", "", "Only show results from this day (YYYY-MM-DD)")
	resultsCmd.Flags().String("source", "mock", "Result source: mock (bundled class data) or local (recorded sessions)")
}
