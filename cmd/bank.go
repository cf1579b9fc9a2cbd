package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions by topic and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := resolveBank(cmd)
		if err != nil {
			return err
		}

		for _, topic := range pool.Topics() {
			fmt.Println(topic)
			for _, q := range pool.Questions() {
				if q.Topic != topic {
					continue
				}
				fmt.Printf("  %-8s  %-8s  %s\n", q.ID, q.Difficulty, firstLine(q.Text))
			}
		}

		counts := make(map[bank.Difficulty]int)
		for _, q := range pool.Questions() {
			counts[q.Difficulty]++
		}
		fmt.Printf("\n%d questions: %d easy, %d medium, %d hard\n",
			pool.Len(), counts[bank.Easy], counts[bank.Medium], counts[bank.Hard])
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a question bank file",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d questions across %d topics\n", pool.Len(), len(pool.Topics()))
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 70 {
		s = s[:70] + "…"
	}
	return s
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
