package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		interviews, err := st.Interviews().List(context.Background())
		if err != nil {
			return fmt.Errorf("list interviews: %w", err)
		}
		if len(interviews) == 0 {
			fmt.Println("No interviews recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-16s  %s\n", "Session", "Candidate", "Started", "Outcome")
		fmt.Println(strings.Repeat("─", 90))
		for _, iv := range interviews {
			outcome := iv.Reason
			if outcome == "" {
				outcome = "(incomplete)"
			}
			fmt.Printf("%-36s  %-20s  %-16s  %s\n",
				iv.ID,
				truncate(iv.Candidate, 20),
				iv.StartedAt.Local().Format("2006-01-02 15:04"),
				outcome,
			)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
