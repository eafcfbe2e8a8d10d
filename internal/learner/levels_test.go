package learner

import (
	"reflect"
	"testing"
)

func TestSkillLevelsAbsenceVsZero(t *testing.T) {
	s := SkillLevels{"sql": 0}
	if !s.Has("sql") {
		t.Error("proven zero should count as known")
	}
	if s.Has("docker") {
		t.Error("absent skill should not count as known")
	}
	if s.Level("docker") != 0 {
		t.Error("absent skill level should read as 0")
	}
}

func TestSkillLevelsNamesSorted(t *testing.T) {
	s := SkillLevels{"sql": 5, "aws": 3, "docker": 7}
	want := []string{"aws", "docker", "sql"}
	if got := s.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestSkillLevelsCloneIsIndependent(t *testing.T) {
	s := SkillLevels{"sql": 5}
	c := s.Clone()
	c["sql"] = 9
	if s["sql"] != 5 {
		t.Error("mutating the clone changed the original")
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{5.5, 5.5},
		{10, 10},
		{12, 10},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
