package catalog

import (
	"fmt"
	"strings"
)

// validateCourses performs all structural checks on the given course set.
// Returns a combined error describing all problems found, or nil if valid.
func validateCourses(courses []Course) error {
	var errs []string

	idSet := make(map[string]bool, len(courses))
	for _, c := range courses {
		if c.ID == "" {
			errs = append(errs, "course with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", c.ID))
		}
		idSet[c.ID] = true

		if c.Title == "" {
			errs = append(errs, fmt.Sprintf("course %q: empty title", c.ID))
		}
		if !c.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("course %q: unknown difficulty %q", c.ID, c.Difficulty))
		}
		if c.DurationHours < 0 {
			errs = append(errs, fmt.Sprintf("course %q: negative duration %.1f", c.ID, c.DurationHours))
		}
		if c.Enrollments < 0 {
			errs = append(errs, fmt.Sprintf("course %q: negative enrollment count %d", c.ID, c.Enrollments))
		}
		for _, s := range c.SkillsTaught {
			if s == "" {
				errs = append(errs, fmt.Sprintf("course %q: empty skill name in skills taught", c.ID))
			}
		}
		for _, p := range c.Prerequisites {
			if p == "" {
				errs = append(errs, fmt.Sprintf("course %q: empty skill name in prerequisites", c.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
