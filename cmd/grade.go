package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/oracle"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade answers to individual bank questions (no database)",
	Long: `Interactively answer and grade questions from the bank.

This is a stateless developer tool — no session, no adaptation, no events.
Useful for evaluating rubric quality and grader behavior.`,
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().String("id", "", "Question ID to grade (default: walk the whole bank)")
	gradeCmd.Flags().String("topic", "", "Limit to questions in one topic")
}

func runGrade(cmd *cobra.Command, args []string) error {
	idVal, _ := cmd.Flags().GetString("id")
	topicVal, _ := cmd.Flags().GetString("topic")

	pool, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	questions := selectQuestions(pool, idVal, topicVal)
	if len(questions) == 0 {
		return fmt.Errorf("no questions match id=%q topic=%q", idVal, topicVal)
	}

	// No event recorder — logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	grader := oracle.NewGrader(provider, oracle.DefaultConfig())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for i, q := range questions {
		fmt.Printf("── Question %d/%d ── %s [%s, %s]\n", i+1, len(questions), q.ID, q.Topic, q.Difficulty)
		fmt.Println(q.Text)

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		ev, err := grader.Evaluate(ctx, q.Text, answer, q.Rubric)
		if err != nil {
			fmt.Printf("grading failed: %v\n\n", err)
			continue
		}
		fmt.Printf("\nScore: %d/5\n%s\n\n", ev.Score, ev.Feedback)
	}
	return nil
}

// selectQuestions filters the pool by question id or topic.
func selectQuestions(pool *bank.Pool, id, topic string) []bank.Question {
	var out []bank.Question
	for _, q := range pool.Questions() {
		if id != "" && q.ID != id {
			continue
		}
		if topic != "" && !strings.EqualFold(q.Topic, topic) {
			continue
		}
		out = append(out, q)
	}
	return out
}
