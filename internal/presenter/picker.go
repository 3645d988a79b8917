package presenter

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerPrompt is the question shown above the repository list.
const PickerPrompt = "Select uplink channel (ESC to cancel)"

// Picker asks the user to choose one of items.
// ok is false when the user cancelled.
type Picker interface {
	Pick(prompt string, items []string) (index int, ok bool, err error)
}

// TeaPicker is a Picker backed by a bubbletea program.
type TeaPicker struct {
	In  io.Reader
	Out io.Writer
}

// Pick runs the selection program until the user selects or cancels.
func (p TeaPicker) Pick(prompt string, items []string) (int, bool, error) {
	var opts []tea.ProgramOption
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(NewSelectModel(prompt, items), opts...).Run()
	if err != nil {
		return 0, false, err
	}
	m, ok := final.(SelectModel)
	if !ok || m.Selected < 0 {
		return 0, false, nil
	}
	return m.Selected, true, nil
}

// =============================================================================
// SelectModel - Interactive single choice
// =============================================================================

// SelectModel is the bubbletea model for choosing one item.
type SelectModel struct {
	Prompt   string
	Items    []string
	Cursor   int
	Selected int
	Done     bool
}

// NewSelectModel creates a model with the cursor on the first item and nothing selected.
func NewSelectModel(prompt string, items []string) SelectModel {
	return SelectModel{Prompt: prompt, Items: items, Selected: -1}
}

func (m SelectModel) Init() tea.Cmd {
	return nil
}

func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Done = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Items) == 0 {
			return m, nil
		}
		m.Selected = m.Cursor
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectModel) View() string {
	var b strings.Builder

	if m.Done {
		if m.Selected >= 0 {
			fmt.Fprintf(&b, "%s %s %s\n", styleFollower.Render("✔"), stylePrompt.Render(m.Prompt), styleActive.Render(m.Items[m.Selected]))
		}
		return b.String()
	}

	b.WriteString(styleFollower.Render("?") + " " + stylePrompt.Render(m.Prompt) + "\n")
	for i, item := range m.Items {
		if i == m.Cursor {
			b.WriteString(styleActive.Render("❯ " + iconChecked + " " + item))
		} else {
			b.WriteString(styleInactive.Render("  " + iconUnchecked + " " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ select  esc cancel"))
	b.WriteString("\n")
	return b.String()
}
