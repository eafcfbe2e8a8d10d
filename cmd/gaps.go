package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunrao/learnpath/internal/engine"
	"github.com/arjunrao/learnpath/internal/ingest"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Analyze skill gaps against a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerPath, _ := cmd.Flags().GetString("learner")
		goalIdx, _ := cmd.Flags().GetInt("goal")

		lrn, err := ingest.LoadLearner(learnerPath)
		if err != nil {
			return err
		}
		goal, err := selectGoal(lrn.Goals, goalIdx)
		if err != nil {
			return err
		}

		eng := engine.New(engine.DefaultConfig())
		report, err := eng.AnalyzeSkillGaps(lrn.Context, goal)
		if err != nil {
			return err
		}

		r := report.Readiness
		fmt.Println(theme.Title.Render("Skill gap analysis"))
		fmt.Println(theme.Body.Render(fmt.Sprintf("Readiness: %d%% (%d/%d target skills) - %s",
			r.Percentage, r.Acquired, r.TotalTargets, r.Status)))
		fmt.Println()

		if len(report.Gaps) == 0 {
			fmt.Println(theme.Correct.Render("No skill gaps - all targets at proficiency."))
		} else {
			fmt.Println(theme.Body.Bold(true).Render("Gaps"))
			for _, g := range report.Gaps {
				fmt.Printf("  %s\n", theme.Body.Render(fmt.Sprintf("%-20s level %.1f  %s gap, %s priority",
					g.Skill, g.CurrentLevel, g.GapSize, g.Priority)))
			}
		}

		if len(report.Strengths) > 0 {
			fmt.Println()
			fmt.Println(theme.Body.Bold(true).Render("Strengths"))
			for _, s := range report.Strengths {
				fmt.Printf("  %s\n", theme.Body.Render(fmt.Sprintf("%-20s level %.1f", s.Skill, s.Level)))
			}
		}

		if len(report.Focus) > 0 {
			fmt.Println()
			fmt.Println(theme.Body.Bold(true).Render("Suggestions"))
			for _, f := range report.Focus {
				fmt.Printf("  %s\n", theme.Subtitle.Render("• "+f.Message))
			}
		}
		return nil
	},
}

func init() {
	gapsCmd.Flags().String("learner", "learner.json", "Learner snapshot file")
	gapsCmd.Flags().Int("goal", 0, "Index of the goal in the learner snapshot")
}
