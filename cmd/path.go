package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunrao/learnpath/internal/engine"
	"github.com/arjunrao/learnpath/internal/ingest"
	"github.com/arjunrao/learnpath/internal/learner"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Build a prerequisite-ordered learning path toward a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		learnerPath, _ := cmd.Flags().GetString("learner")
		goalIdx, _ := cmd.Flags().GetInt("goal")
		save, _ := cmd.Flags().GetBool("save")
		learnerID, _ := cmd.Flags().GetString("learner-id")

		cat, err := ingest.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		lrn, err := ingest.LoadLearner(learnerPath)
		if err != nil {
			return err
		}
		goal, err := selectGoal(lrn.Goals, goalIdx)
		if err != nil {
			return err
		}

		eng := engine.New(engine.DefaultConfig())
		p, err := eng.BuildLearningPath(lrn.Context, goal, cat)
		if err != nil {
			return err
		}

		if goal.Description != "" {
			fmt.Println(theme.Title.Render("Learning path: " + goal.Description))
		} else {
			fmt.Println(theme.Title.Render("Learning path"))
		}
		fmt.Println()

		if len(p.Steps) == 0 {
			fmt.Println(theme.Subtitle.Render("No courses needed - no reachable skill gaps."))
		}
		for _, step := range p.Steps {
			fmt.Printf("%s %s\n",
				theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", step.Sequence, step.Title)),
				theme.Subtitle.Render(fmt.Sprintf("[%s, %.0fh]", step.Difficulty.DisplayName(), step.DurationHours)))
			if len(step.SkillsGained) > 0 {
				fmt.Printf("   %s\n", theme.Subtitle.Render("gains: "+joinSkills(step.SkillsGained)))
			}
		}

		m := p.Meta
		fmt.Println()
		fmt.Println(theme.Body.Render(fmt.Sprintf("%d courses, %.0f hours total (~%d weeks at %.0f h/week)",
			m.TotalCourses, m.TotalHours, m.EstimatedWeeks, m.StudyHoursPerWeek)))
		fmt.Println(theme.Body.Render(fmt.Sprintf("Estimated completion: %s", m.EstimatedCompletion.Format("2006-01-02"))))
		fmt.Println(theme.Body.Render(fmt.Sprintf("Covers %d%% of target skills", m.CompletionPercent)))
		if len(m.RemainingGaps) > 0 {
			fmt.Println(theme.Incorrect.Render("Unreachable skills: " + joinSkills(m.RemainingGaps)))
		}

		if save {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			id, err := st.Paths().SaveActive(cmd.Context(), learnerID, goalKey(goal, goalIdx), p)
			if err != nil {
				return fmt.Errorf("save path: %w", err)
			}
			fmt.Println()
			fmt.Println(theme.Subtitle.Render("Saved as active path " + id))
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().String("catalog", "catalog.json", "Course catalog snapshot file")
	pathCmd.Flags().String("learner", "learner.json", "Learner snapshot file")
	pathCmd.Flags().Int("goal", 0, "Index of the goal in the learner snapshot")
	pathCmd.Flags().Bool("save", false, "Persist as the active path for this learner and goal")
	pathCmd.Flags().String("learner-id", "default", "Learner identifier for persistence")
}

// selectGoal picks a goal by index, tolerating an empty goal list.
func selectGoal(goals []learner.Goal, idx int) (learner.Goal, error) {
	if len(goals) == 0 {
		return learner.Goal{}, nil
	}
	if idx < 0 || idx >= len(goals) {
		return learner.Goal{}, fmt.Errorf("goal index %d out of range (have %d goals)", idx, len(goals))
	}
	return goals[idx], nil
}

// goalKey derives a stable identifier for persistence.
func goalKey(g learner.Goal, idx int) string {
	if g.TargetRole != "" {
		return g.TargetRole
	}
	if g.Description != "" {
		return g.Description
	}
	return fmt.Sprintf("goal-%d", idx)
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
