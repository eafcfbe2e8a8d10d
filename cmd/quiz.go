package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunrao/learnpath/internal/ingest"
	"github.com/arjunrao/learnpath/internal/learner"
	"github.com/arjunrao/learnpath/internal/ui/quiz"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run an adaptive skill assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		assessmentPath, _ := cmd.Flags().GetString("assessment")
		learnerID, _ := cmd.Flags().GetString("learner-id")
		title, _ := cmd.Flags().GetString("title")

		assessment, err := ingest.LoadAssessment(assessmentPath)
		if err != nil {
			return err
		}
		if len(assessment.Questions) == 0 {
			return fmt.Errorf("assessment %s has no questions", assessmentPath)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prevScores, err := st.Attempts().RecentScores(cmd.Context(), learnerID, 10)
		if err != nil {
			return err
		}

		result, err := quiz.Run(title, assessment.Questions, assessment.PassingScore, prevScores)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println(theme.Subtitle.Render("Assessment abandoned - nothing recorded."))
			return nil
		}

		if _, err := st.Attempts().Append(cmd.Context(), learnerID, learner.AttemptRecord{
			SkillScores:     result.SkillScores,
			ScorePercentage: result.Score.Percentage,
		}); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		status := theme.Correct.Render("passed")
		if !result.Passed {
			status = theme.Incorrect.Render("not passed")
		}
		fmt.Printf("%s %s\n",
			theme.Body.Render(fmt.Sprintf("Recorded attempt: %.1f%%", result.Score.Percentage)),
			status)
		return nil
	},
}

func init() {
	quizCmd.Flags().String("assessment", "assessment.json", "Assessment question file")
	quizCmd.Flags().String("learner-id", "default", "Learner identifier")
	quizCmd.Flags().String("title", "Skill Assessment", "Assessment title shown in the TUI")
}
