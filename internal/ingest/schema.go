package ingest

// Schema pairs a name with a JSON Schema definition for snapshot
// validation.
type Schema struct {
	Name       string
	Definition map[string]any
}

var difficultyEnum = []any{"beginner", "intermediate", "advanced", "expert"}

// CatalogSchema validates course catalog snapshot files.
var CatalogSchema = &Schema{
	Name: "catalog",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"courses"},
		"properties": map[string]any{
			"courses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "title", "difficulty"},
					"properties": map[string]any{
						"id":             map[string]any{"type": "string", "minLength": 1},
						"title":          map[string]any{"type": "string", "minLength": 1},
						"description":    map[string]any{"type": "string"},
						"difficulty":     map[string]any{"type": "string", "enum": difficultyEnum},
						"skills_taught":  stringArray,
						"prerequisites":  stringArray,
						"duration_hours": map[string]any{"type": "number", "minimum": 0},
						"enrollments":    map[string]any{"type": "integer", "minimum": 0},
					},
					"additionalProperties": false,
				},
			},
		},
		"additionalProperties": false,
	},
}

// LearnerSchema validates learner snapshot files.
var LearnerSchema = &Schema{
	Name: "learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"current_skills": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 10,
				},
			},
			"preferred_difficulty": map[string]any{"type": "string", "enum": difficultyEnum},
			"study_hours_per_week": map[string]any{"type": "number", "minimum": 0},
			"completed_courses":    stringArray,
			"goals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description":   map[string]any{"type": "string"},
						"target_role":   map[string]any{"type": "string"},
						"target_skills": stringArray,
					},
					"additionalProperties": false,
				},
			},
			"attempts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill_scores": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type":    "number",
								"minimum": 0,
								"maximum": 1,
							},
						},
						"score_percentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
						"timestamp":        map[string]any{"type": "string"},
					},
					"additionalProperties": false,
				},
			},
		},
		"additionalProperties": false,
	},
}

// AssessmentSchema validates assessment question files.
var AssessmentSchema = &Schema{
	Name: "assessment",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"passing_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "text", "tier", "answer"},
					"properties": map[string]any{
						"id":         map[string]any{"type": "string", "minLength": 1},
						"text":       map[string]any{"type": "string", "minLength": 1},
						"options":    stringArray,
						"tier":       map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
						"points":     map[string]any{"type": "integer", "minimum": 0},
						"skills":     stringArray,
						"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
						"answer": map[string]any{
							"type":     "object",
							"required": []any{"kind"},
							"properties": map[string]any{
								"kind": map[string]any{
									"type": "string",
									"enum": []any{"single_choice", "multiple_select", "true_false", "short_answer"},
								},
								"answer":   map[string]any{"type": "string"},
								"answers":  stringArray,
								"accepted": stringArray,
							},
							"additionalProperties": false,
						},
					},
					"additionalProperties": false,
				},
			},
		},
		"additionalProperties": false,
	},
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}
