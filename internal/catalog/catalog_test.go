package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func testCourses() []Course {
	return []Course{
		{ID: "c3", Title: "Advanced SQL", Difficulty: Advanced, SkillsTaught: []string{"sql"}, Prerequisites: []string{"sql-basics"}},
		{ID: "c1", Title: "SQL Basics", Difficulty: Beginner, SkillsTaught: []string{"sql-basics"}},
		{ID: "c2", Title: "Python Intro", Difficulty: Beginner, SkillsTaught: []string{"python"}},
	}
}

func TestNewSortsByID(t *testing.T) {
	cat, err := New(testCourses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, c := range cat.Courses() {
		ids = append(ids, c.ID)
	}
	want := []string{"c1", "c2", "c3"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("course order = %v, want %v", ids, want)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		wantSub string
	}{
		{
			name: "duplicate id",
			courses: []Course{
				{ID: "c1", Title: "A", Difficulty: Beginner},
				{ID: "c1", Title: "B", Difficulty: Beginner},
			},
			wantSub: "duplicate",
		},
		{
			name:    "empty id",
			courses: []Course{{ID: "", Title: "A", Difficulty: Beginner}},
			wantSub: "empty",
		},
		{
			name:    "unknown difficulty",
			courses: []Course{{ID: "c1", Title: "A", Difficulty: "extreme"}},
			wantSub: "difficulty",
		},
		{
			name:    "negative duration",
			courses: []Course{{ID: "c1", Title: "A", Difficulty: Beginner, DurationHours: -1}},
			wantSub: "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.courses)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantSub) {
				t.Errorf("error %q missing %q", err, tt.wantSub)
			}
		})
	}
}

func TestGet(t *testing.T) {
	cat, err := New(testCourses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := cat.Get("c2")
	if err != nil {
		t.Fatalf("get c2: %v", err)
	}
	if c.Title != "Python Intro" {
		t.Errorf("title = %q, want %q", c.Title, "Python Intro")
	}

	if _, err := cat.Get("missing"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestAvailableRespectsPrereqsAndTaken(t *testing.T) {
	cat, err := New(testCourses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nothing learned: c3 requires sql-basics, so only c1 and c2.
	got := availableIDs(cat, nil, nil)
	if !reflect.DeepEqual(got, []string{"c1", "c2"}) {
		t.Errorf("available = %v, want [c1 c2]", got)
	}

	// With sql-basics learned, c3 unlocks.
	got = availableIDs(cat, map[string]bool{"sql-basics": true}, nil)
	if !reflect.DeepEqual(got, []string{"c1", "c2", "c3"}) {
		t.Errorf("available = %v, want [c1 c2 c3]", got)
	}

	// Taken courses are excluded.
	got = availableIDs(cat, map[string]bool{"sql-basics": true}, map[string]bool{"c1": true})
	if !reflect.DeepEqual(got, []string{"c2", "c3"}) {
		t.Errorf("available = %v, want [c2 c3]", got)
	}
}

func availableIDs(cat *Catalog, learned, taken map[string]bool) []string {
	var ids []string
	for _, c := range cat.Available(learned, taken) {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestTeachingAndSkillUniverse(t *testing.T) {
	cat, err := New(testCourses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cat.Teaching("sql"); !reflect.DeepEqual(got, []string{"c3"}) {
		t.Errorf("Teaching(sql) = %v, want [c3]", got)
	}
	want := []string{"python", "sql", "sql-basics"}
	if got := cat.SkillUniverse(); !reflect.DeepEqual(got, want) {
		t.Errorf("SkillUniverse() = %v, want %v", got, want)
	}
}

func TestDifficultyOrdinal(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Beginner, 1},
		{Intermediate, 2},
		{Advanced, 3},
		{Expert, 4},
		{"unknown", 2},
	}
	for _, tt := range tests {
		if got := tt.d.Ordinal(); got != tt.want {
			t.Errorf("Ordinal(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
