package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/engine"
	"github.com/arjunrao/learnpath/internal/profile"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Estimate skill levels from stored attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner-id")
		dial, _ := cmd.Flags().GetInt("dial")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.Attempts().Recent(cmd.Context(), learnerID, 0)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println(theme.Subtitle.Render("No attempt history for learner " + learnerID + "."))
			return nil
		}

		eng := engine.New(engine.DefaultConfig())
		levels, err := eng.EstimateSkillLevels(attempts)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Skill profile: " + learnerID))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d attempts on record", len(attempts))))
		fmt.Println()

		names := make([]string, 0, len(levels))
		for name := range levels {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s\n", theme.Body.Render(fmt.Sprintf("%-20s %.1f / 10", name, levels[name])))
		}

		weak := profile.WeakSkills(attempts, time.Now(), 0)
		if len(weak) > 0 {
			fmt.Println()
			fmt.Println(theme.Body.Bold(true).Render("Needs revision"))
			for _, w := range weak {
				fmt.Printf("  %s\n", theme.Incorrect.Render(fmt.Sprintf("%-20s %.0f%% recent accuracy", w.Skill, w.Accuracy*100)))
			}
		}

		scores, err := st.Attempts().RecentScores(cmd.Context(), learnerID, 3)
		if err != nil {
			return err
		}
		next, why := adaptive.AdjustDial(dial, scores)
		fmt.Println()
		fmt.Println(theme.Body.Render(fmt.Sprintf("Difficulty dial: %d -> %d (%s)", dial, next, why)))
		return nil
	},
}

func init() {
	profileCmd.Flags().String("learner-id", "default", "Learner identifier")
	profileCmd.Flags().Int("dial", 5, "Current 1-10 practice difficulty level")
}
