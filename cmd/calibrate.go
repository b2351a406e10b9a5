package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intervu/internal/interview"
	"intervu/internal/llm"
	"intervu/internal/store"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate [topic words...]",
	Short: "Generate a question and assess its actual difficulty",
	Long:  "Generates a question at the requested difficulty, then asks the model to assess the difficulty of what it produced. Useful for spotting topics where requested and actual difficulty drift apart.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		difficultyFlag, _ := cmd.Flags().GetString("difficulty")
		followups, _ := cmd.Flags().GetInt("followups")

		questionType, err := interview.ParseQuestionType(typeFlag)
		if err != nil {
			return err
		}
		difficulty, err := interview.ParseDifficulty(difficultyFlag)
		if err != nil {
			return err
		}

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

		pipe := interview.NewInterviewPipeline(provider, interview.DefaultConfig())

		ctx := store.WithRun(cmd.Context(), store.NewRunID())
		result, err := pipe.Generate(ctx, interview.PipelineInput{
			Topic:        strings.Join(args, " "),
			Type:         questionType,
			Difficulty:   difficulty,
			NumFollowUps: followups,
		})
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 60)

		fmt.Println(sep)
		fmt.Println("Question")
		fmt.Println(sep)
		fmt.Println(result.Question)
		fmt.Println()
		fmt.Println("Explanation:", result.Explanation)
		fmt.Println()

		match := "match"
		if result.RequestedDifficulty != result.AssessedDifficulty {
			match = "MISMATCH"
		}
		fmt.Printf("Difficulty: requested %s, assessed %s (%s)\n",
			result.RequestedDifficulty, result.AssessedDifficulty, match)
		fmt.Println("Reasoning:", result.DifficultyReasoning)
		fmt.Println()
		fmt.Println("Follow-up questions:")
		fmt.Println(result.FollowUpQuestions)
		return nil
	},
}

func init() {
	calibrateCmd.Flags().StringP("type", "t", "coding", "Question type: coding, ml_theory, ml_practical")
	calibrateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, hard")
	calibrateCmd.Flags().IntP("followups", "f", 2, "Number of follow-up questions")
}
