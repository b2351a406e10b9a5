package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"intervu/internal/app"
	"intervu/internal/interview"
	"intervu/internal/llm"
	"intervu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "AI technical interview question generator",
	Long:  "Intervu — generates technical interview questions (coding, ML theory, ML practical) with follow-ups and difficulty calibration, driven by an LLM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			printSetupHelp(err)
			return err
		}

		return app.Run(app.Deps{
			Provider:  provider,
			Config:    interview.DefaultConfig(),
			EventRepo: st.EventRepo(),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVU_DB env var)")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then INTERVU_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("INTERVU_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// printSetupHelp explains how to configure a provider when none is found.
func printSetupHelp(err error) {
	fmt.Fprintln(os.Stderr, "No LLM provider configured:", err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Set one of the following API keys and try again:")
	fmt.Fprintln(os.Stderr, "  export OPENAI_API_KEY=...      (or INTERVU_OPENAI_API_KEY)")
	fmt.Fprintln(os.Stderr, "  export ANTHROPIC_API_KEY=...   (or INTERVU_ANTHROPIC_API_KEY)")
	fmt.Fprintln(os.Stderr, "  export GEMINI_API_KEY=...      (or INTERVU_GEMINI_API_KEY)")
	fmt.Fprintln(os.Stderr, "  export OPENROUTER_API_KEY=...  (or INTERVU_OPENROUTER_API_KEY)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "INTERVU_LLM_PROVIDER and INTERVU_<PROVIDER>_MODEL select the provider and model explicitly.")
}
