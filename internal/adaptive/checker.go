package adaptive

import "strings"

// CheckAnswer grades a submission against the question's key.
// Submissions are one or more selected values; single-valued kinds
// read only the first. Unknown kinds and empty submissions grade as
// incorrect.
func CheckAnswer(key AnswerKey, submitted []string) bool {
	if len(submitted) == 0 {
		return false
	}

	switch key.Kind {
	case KindSingleChoice:
		return normalize(submitted[0]) == normalize(key.Answer)

	case KindMultiSelect:
		// Set equality: duplicates in the submission collapse, and the
		// deduplicated selections must match the key exactly.
		want := make(map[string]bool, len(key.Answers))
		for _, a := range key.Answers {
			want[normalize(a)] = true
		}
		got := make(map[string]bool, len(submitted))
		for _, s := range submitted {
			got[normalize(s)] = true
		}
		if len(got) != len(want) {
			return false
		}
		for s := range got {
			if !want[s] {
				return false
			}
		}
		return true

	case KindTrueFalse:
		return parseBool(submitted[0]) == parseBool(key.Answer)

	case KindShortAnswer:
		got := normalize(submitted[0])
		for _, accepted := range key.Accepted {
			if got == normalize(accepted) {
				return true
			}
		}
		return false
	}

	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseBool treats "true", "t", "yes" and "1" as true; anything else
// is false.
func parseBool(s string) bool {
	switch normalize(s) {
	case "true", "t", "yes", "1":
		return true
	}
	return false
}
