package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"intervu/internal/interview"
	"intervu/internal/llm"
	"intervu/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask [topic words...]",
	Short: "Generate an interview question without the interactive UI",
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

		gen := interview.NewCompleteInterviewGenerator(provider, interview.DefaultConfig())

		ctx := store.WithRun(cmd.Context(), store.NewRunID())
		set, err := gen.Generate(ctx, interview.PipelineInput{
			Topic:        strings.Join(args, " "),
			Type:         questionType,
			Difficulty:   difficulty,
			NumFollowUps: followups,
		})
		if err != nil {
			return err
		}

		printInterviewSet(set, questionType)
		return nil
	},
}

func printInterviewSet(set *interview.InterviewSet, questionType interview.QuestionType) {
	sep := strings.Repeat("─", 60)

	fmt.Println(sep)
	fmt.Printf("%s — %s\n", questionType.Label(), set.Difficulty)
	fmt.Println(sep)
	fmt.Println(set.Question)

	if set.Details.ML != nil {
		fmt.Println()
		fmt.Println("Key concepts:", set.Details.ML.KeyConcepts)
		fmt.Println("Expected depth:", set.Details.ML.ExpectedDepth)
	}

	fmt.Println()
	fmt.Println("Follow-up questions:")
	fmt.Println(set.FollowUpQuestions)
}

func init() {
	askCmd.Flags().StringP("type", "t", "coding", "Question type: coding, ml_theory, ml_practical")
	askCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, hard")
	askCmd.Flags().IntP("followups", "f", 2, "Number of follow-up questions")
}
