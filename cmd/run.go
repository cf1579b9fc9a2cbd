package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/app"
	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/delivery"
	"github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/oracle"
	"github.com/abhisek/intervue/internal/report"
	"github.com/abhisek/intervue/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	pool, err := resolveBank(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set INTERVUE_GEMINI_API_KEY (or an OpenAI/Anthropic/OpenRouter key) and try again.")
		return err
	}

	var sinks []delivery.Sink
	if dir, _ := cmd.Flags().GetString("reports"); dir != "" {
		sinks = append(sinks, &delivery.MarkdownFileSink{Dir: dir})
	}
	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		sinks = append(sinks, &delivery.CSVSink{Path: path})
	}

	deps := app.Deps{
		Pool:       pool,
		Config:     interview.DefaultConfig(),
		Oracle:     oracle.NewGrader(provider, oracle.DefaultConfig()),
		Reporter:   report.NewGenerator(provider, report.DefaultConfig()),
		Repo:       st.Interviews(),
		Sinks:      sinks,
		AccessCode: os.Getenv("INTERVUE_ACCESS_CODE"),
	}
	return app.Run(deps)
}

// resolveBank loads the question bank from --bank, or the built-in one.
func resolveBank(cmd *cobra.Command) (*bank.Pool, error) {
	if path, _ := cmd.Flags().GetString("bank"); path != "" {
		pool, err := bank.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		return pool, nil
	}
	pool, err := bank.Default()
	if err != nil {
		return nil, fmt.Errorf("load built-in question bank: %w", err)
	}
	return pool, nil
}
