package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/delivery"
	"github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show or export interview reports",
}

var reportShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the report for an interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iv, err := loadInterview(cmd, args[0])
		if err != nil {
			return err
		}
		if iv.Report == "" {
			return fmt.Errorf("interview %s has no report (did it finish?)", iv.ID)
		}
		fmt.Printf("# Interview Report: %s\n\n%s\n", iv.Candidate, iv.Report)
		return nil
	},
}

var reportExportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Write the report and transcript to a Markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("out")

		iv, err := loadInterview(cmd, args[0])
		if err != nil {
			return err
		}

		out, err := outcomeFromRecord(iv)
		if err != nil {
			return err
		}

		sink := &delivery.MarkdownFileSink{Dir: dir}
		if err := sink.Deliver(context.Background(), out); err != nil {
			return err
		}
		fmt.Println("Wrote", sink.Path(out))
		return nil
	},
}

func init() {
	reportExportCmd.Flags().String("out", ".", "Output directory")
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportExportCmd)
}

// loadInterview fetches one interview with its transcript from the store.
func loadInterview(cmd *cobra.Command, id string) (*store.Interview, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	iv, err := st.Interviews().Get(context.Background(), id)
	if err != nil {
		return nil, fmt.Errorf("get interview %s: %w", id, err)
	}
	return iv, nil
}

// outcomeFromRecord rebuilds a delivery outcome from persisted rows.
func outcomeFromRecord(iv *store.Interview) (*interview.Outcome, error) {
	out := &interview.Outcome{
		Candidate: iv.Candidate,
		SessionID: iv.ID,
		StartedAt: iv.StartedAt,
		EndedAt:   iv.EndedAt,
		Report:    iv.Report,
	}
	if out.EndedAt.IsZero() {
		out.EndedAt = time.Now()
	}
	for _, ex := range iv.Exchanges {
		d, err := bank.ParseDifficulty(ex.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("exchange %d: %w", ex.Position, err)
		}
		out.Transcript = append(out.Transcript, interview.GradedExchange{
			QuestionID: ex.QuestionID,
			Topic:      ex.Topic,
			Difficulty: d,
			Question:   ex.Question,
			Answer:     ex.Answer,
			Score:      ex.Score,
			Feedback:   ex.Feedback,
		})
	}
	return out, nil
}
