package catalog

import (
	"fmt"
	"sort"
)

// Catalog holds the course snapshot with precomputed indices.
// Course order is normalized to ascending ID so every traversal
// is deterministic regardless of input order.
type Catalog struct {
	courses []Course
	byID    map[string]*Course
	bySkill map[string][]string // skill -> course IDs teaching it
}

// New builds a catalog from a slice of courses.
// The input is validated; an invalid catalog is rejected outright.
func New(courses []Course) (*Catalog, error) {
	if err := validateCourses(courses); err != nil {
		return nil, err
	}

	sorted := make([]Course, len(courses))
	copy(sorted, courses)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{
		courses: sorted,
		byID:    make(map[string]*Course, len(sorted)),
		bySkill: make(map[string][]string),
	}
	for i := range c.courses {
		c.byID[c.courses[i].ID] = &c.courses[i]
		for _, s := range c.courses[i].SkillsTaught {
			c.bySkill[s] = append(c.bySkill[s], c.courses[i].ID)
		}
	}
	return c, nil
}

// Get returns a course by ID, or an error if not found.
func (c *Catalog) Get(id string) (Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("course not found: %q", id)
	}
	return *course, nil
}

// Courses returns all courses in ascending ID order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Teaching returns the IDs of courses that teach the given skill,
// in ascending ID order.
func (c *Catalog) Teaching(skill string) []string {
	ids := c.bySkill[skill]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// SkillUniverse returns every skill taught by at least one course,
// in lexicographic order.
func (c *Catalog) SkillUniverse() []string {
	skills := make([]string, 0, len(c.bySkill))
	for s := range c.bySkill {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// Available returns courses whose prerequisite skills are all in the
// learned set, excluding any IDs in the taken set. Order is ascending ID.
func (c *Catalog) Available(learned, taken map[string]bool) []Course {
	var out []Course
	for _, course := range c.courses {
		if taken[course.ID] {
			continue
		}
		if course.PrereqsMet(learned) {
			out = append(out, course)
		}
	}
	return out
}
