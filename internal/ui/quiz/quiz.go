// Package quiz is the interactive adaptive assessment screen.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/ui/components"
	"github.com/arjunrao/learnpath/internal/ui/theme"
)

// Result is what an assessment run produces once every question has
// been answered. It is nil when the learner quits early.
type Result struct {
	Answers  []adaptive.Answer
	Score    adaptive.ScoreResult
	Passed   bool
	Feedback adaptive.Feedback
	// SkillScores holds the per-skill accuracy of this attempt,
	// ready to append to the learner's history.
	SkillScores map[string]float64
}

type phase int

const (
	phaseAsking phase = iota
	phaseReveal
	phaseDone
)

// Model drives one adaptive assessment session.
type Model struct {
	title      string
	questions  []adaptive.Question
	passing    float64
	prevScores []float64

	history []adaptive.Answer
	current adaptive.Question
	phase   phase

	choice      components.Choice
	input       components.TextInput
	usesInput   bool
	lastCorrect bool

	result *Result
	width  int
	height int
}

// New creates a quiz model over the given questions. prevScores are
// earlier attempt percentages, most recent first, used for the
// progress comparison in the final feedback.
func New(title string, questions []adaptive.Question, passingScore float64, prevScores []float64) Model {
	m := Model{
		title:      title,
		questions:  questions,
		passing:    passingScore,
		prevScores: prevScores,
	}
	m.advance()
	return m
}

// Result returns the finished assessment result, or nil if the session
// ended before completion.
func (m Model) Result() *Result {
	return m.result
}

func (m Model) Init() tea.Cmd {
	if m.usesInput {
		return m.input.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.phase {
		case phaseAsking:
			return m.updateAsking(msg)
		case phaseReveal:
			if msg.String() == "enter" {
				m.advance()
			}
			return m, m.Init()
		case phaseDone:
			if msg.String() == "enter" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateAsking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.usesInput {
		if msg.String() == "enter" && strings.TrimSpace(m.input.Value()) != "" {
			m.grade([]string{m.input.Value()})
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if m.choice.Submitted {
		m.grade(m.choice.Selections())
	}
	return m, cmd
}

// grade checks the submission, records the answer, and moves to reveal.
func (m *Model) grade(submitted []string) {
	correct := adaptive.CheckAnswer(m.current.Key, submitted)
	m.lastCorrect = correct
	m.history = append(m.history, adaptive.Answer{
		QuestionID: m.current.ID,
		Correct:    correct,
	})
	if m.usesInput {
		m.input.Submit(correct)
	}
	m.phase = phaseReveal
}

// advance picks the next question or finishes the assessment.
func (m *Model) advance() {
	next, ok := adaptive.NextQuestion(m.history, m.questions)
	if !ok {
		m.finish()
		return
	}

	m.current = next
	m.phase = phaseAsking
	m.usesInput = false

	switch next.Key.Kind {
	case adaptive.KindShortAnswer:
		m.usesInput = true
		m.input = components.NewTextInput("type your answer")
	case adaptive.KindTrueFalse:
		m.choice = components.NewChoice(next.Text, []string{"True", "False"}, false)
	case adaptive.KindMultiSelect:
		m.choice = components.NewChoice(next.Text, next.Options, true)
	default:
		m.choice = components.NewChoice(next.Text, next.Options, false)
	}
}

// finish scores the attempt and builds feedback.
func (m *Model) finish() {
	score := adaptive.AdaptiveScore(m.history, m.questions)
	passed := score.Percentage >= m.passing
	fb := adaptive.BuildFeedback(score.Percentage, passed, adaptive.SkillsAssessed(m.questions), m.prevScores)

	m.result = &Result{
		Answers:     m.history,
		Score:       score,
		Passed:      passed,
		Feedback:    fb,
		SkillScores: adaptive.SkillAccuracy(m.history, m.questions),
	}
	m.phase = phaseDone
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.phase {
	case phaseDone:
		content = m.viewSummary()
	default:
		content = m.viewQuestion()
	}

	frame := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(content)
	v.SetContent(frame)
	return v
}

func (m Model) viewQuestion() string {
	header := theme.Title.Render(m.title) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Question %d of %d  ·  %s tier", len(m.history)+boolToInt(m.phase == phaseAsking), len(m.questions), m.current.Tier))

	bar := components.ProgressBar{
		Percent: float64(len(m.history)) / float64(len(m.questions)),
		Width:   min(m.width-6, 60),
	}

	var body string
	if m.usesInput {
		body = theme.Body.Bold(true).Render(m.current.Text) + "\n\n" + m.input.View()
	} else {
		body = m.choice.View()
	}

	var footer string
	switch m.phase {
	case phaseReveal:
		verdict := theme.Correct.Render("Correct!")
		if !m.lastCorrect {
			verdict = theme.Incorrect.Render("Incorrect.")
		}
		footer = verdict + "\n" + theme.Hint.Render("enter to continue")
	default:
		footer = theme.Hint.Render("↑↓ navigate · enter submit · ctrl+c quit")
	}

	return header + "\n\n" + bar.View() + "\n\n" + theme.Card.Render(body) + "\n\n" + footer
}

func (m Model) viewSummary() string {
	r := m.result
	if r == nil {
		return ""
	}

	verdict := theme.Correct.Render("PASSED")
	if !r.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(m.title+" — Results") + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		theme.Body.Bold(true).Render(fmt.Sprintf("Score: %.1f%% (%d/%d points)",
			r.Score.Percentage, r.Score.PointsEarned, r.Score.PointsPossible)),
		verdict))

	for _, tier := range adaptive.AllTiers() {
		perf := r.Score.Breakdown[tier]
		if perf.Total == 0 {
			continue
		}
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %-6s %d/%d (%.0f%%)", tier, perf.Correct, perf.Total, perf.Percentage)) + "\n")
	}

	b.WriteString("\n" + theme.Body.Render(r.Feedback.Analysis) + "\n")

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n" + theme.Body.Bold(true).Render(title) + "\n")
		for _, it := range items {
			b.WriteString(theme.Body.Render("  • "+it) + "\n")
		}
	}
	writeList("Strengths", r.Feedback.Strengths)
	writeList("Areas to improve", r.Feedback.Improvements)
	writeList("Next steps", r.Feedback.NextSteps)

	if c := r.Feedback.Comparison; c != nil {
		b.WriteString("\n" + theme.Subtitle.Render(c.Message) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("enter to finish"))
	return b.String()
}

// Run executes the assessment TUI and returns the result, nil when the
// learner quit before finishing.
func Run(title string, questions []adaptive.Question, passingScore float64, prevScores []float64) (*Result, error) {
	p := tea.NewProgram(New(title, questions, passingScore, prevScores))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run assessment: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return nil, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
