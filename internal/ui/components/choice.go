package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunrao/learnpath/internal/ui/theme"
)

// Choice is an option selector that supports single selection and,
// with MultiSelect set, checkbox-style multiple selection.
type Choice struct {
	Prompt      string
	Options     []string
	MultiSelect bool
	Cursor      int
	Checked     map[int]bool
	Submitted   bool
}

// NewChoice creates a selector over the given options.
func NewChoice(prompt string, options []string, multiSelect bool) Choice {
	return Choice{
		Prompt:      prompt,
		Options:     options,
		MultiSelect: multiSelect,
		Checked:     make(map[int]bool),
	}
}

// Update handles keyboard navigation, toggling, and submission.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case " ":
		if c.MultiSelect {
			c.Checked[c.Cursor] = !c.Checked[c.Cursor]
		}
	case "enter":
		if !c.MultiSelect {
			c.Checked = map[int]bool{c.Cursor: true}
		}
		if len(c.Selections()) > 0 {
			c.Submitted = true
		}
	}

	return c, nil
}

// Selections returns the chosen option values in option order.
func (c Choice) Selections() []string {
	var out []string
	for i, opt := range c.Options {
		if c.Checked[i] {
			out = append(out, opt)
		}
	}
	if !c.MultiSelect && len(out) == 0 && c.Submitted {
		out = append(out, c.Options[c.Cursor])
	}
	return out
}

// View renders the selector.
func (c Choice) View() string {
	s := theme.Body.Bold(true).Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor && !c.Submitted {
			cursor = "▸ "
		}

		marker := ""
		if c.MultiSelect {
			marker = "[ ] "
			if c.Checked[i] {
				marker = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%s", cursor, marker, opt)
		switch {
		case c.Submitted && c.Checked[i]:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Cursor && !c.Submitted:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if c.MultiSelect && !c.Submitted {
		s += "\n" + theme.Hint.Render("space to toggle, enter to submit")
	}
	return s
}
