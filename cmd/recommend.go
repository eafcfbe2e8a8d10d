package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunrao/learnpath/internal/engine"
	"github.com/arjunrao/learnpath/internal/ingest"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog courses for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		learnerPath, _ := cmd.Flags().GetString("learner")
		limit, _ := cmd.Flags().GetInt("limit")

		cat, err := ingest.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		lrn, err := ingest.LoadLearner(learnerPath)
		if err != nil {
			return err
		}

		eng := engine.New(engine.DefaultConfig())
		ranked, err := eng.ScoreAndRankCourses(lrn.Context, lrn.Goals, cat, limit)
		if err != nil {
			return err
		}

		if len(ranked) == 0 {
			fmt.Println(theme.Subtitle.Render("No courses to recommend."))
			return nil
		}

		for i, rc := range ranked {
			fmt.Printf("%s %s\n",
				theme.Title.Render(fmt.Sprintf("%d. %s", i+1, rc.Title)),
				theme.Subtitle.Render(fmt.Sprintf("(%s)", rc.CourseID)))
			fmt.Printf("   %s\n", theme.Body.Render(fmt.Sprintf("score %.1f  ·  skills %.1f  difficulty %.1f  goals %.1f  popularity %.1f  prereqs %.1f",
				rc.Total, rc.Scores.SkillMatch, rc.Scores.DifficultyMatch,
				rc.Scores.GoalAlignment, rc.Scores.Popularity, rc.Scores.PrereqReady)))
			for _, reason := range rc.Reasons {
				fmt.Printf("   %s\n", theme.Subtitle.Render("• "+reason))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("catalog", "catalog.json", "Course catalog snapshot file")
	recommendCmd.Flags().String("learner", "learner.json", "Learner snapshot file")
	recommendCmd.Flags().Int("limit", 5, "Maximum number of recommendations (0 = all)")
}
