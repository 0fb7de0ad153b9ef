// Package tui provides the Bubble Tea picker used for jar disambiguation.
//
// The picker only launches for a human at a real terminal. For agents,
// CI, or piped output it falls back to a plain numbered prompt, and a
// cancelled pick is reported as an empty choice for the caller to turn
// into its own error.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mcsrv/cli/internal/ui"
)

// shouldRunTUI reports whether the full-screen picker may launch.
// Both stdin and stdout must be terminals; otherwise the numbered
// fallback prompt is used.
func shouldRunTUI() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#34D399"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34D399")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// pickerKeys are the key bindings for the picker.
type pickerKeys struct {
	up     key.Binding
	down   key.Binding
	choose key.Binding
	quit   key.Binding
}

var defaultPickerKeys = pickerKeys{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	choose: key.NewBinding(key.WithKeys("enter")),
	quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// pickerModel is the Bubble Tea model for a single-choice list.
type pickerModel struct {
	title     string
	options   []string
	cursor    int
	choice    string
	cancelled bool
	keys      pickerKeys
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.choose):
		m.choice = m.options[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render(m.title) + "\n\n"
	for i, opt := range m.options {
		if i == m.cursor {
			s += selectedStyle.Render("› "+opt) + "\n"
		} else {
			s += normalStyle.Render("  "+opt) + "\n"
		}
	}
	s += "\n" + helpStyle.Render("↑/↓ move · enter select · esc cancel") + "\n"
	return s
}

// Pick asks the user to choose one of options.
//
// Parameters:
//   - title: The question shown above the list
//   - options: The candidate values (must be non-empty)
//
// Returns:
//   - string: The chosen option, or "" when the user cancelled
//   - error: Terminal or input errors
func Pick(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to pick from")
	}

	if !shouldRunTUI() {
		idx, err := ui.PromptSelect(title, options)
		if err != nil {
			// Aborted input (e.g. EOF) is a cancel, not a failure.
			return "", nil
		}
		return options[idx], nil
	}

	m := pickerModel{title: title, options: options, keys: defaultPickerKeys}
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run picker: %w", err)
	}

	final := finalModel.(pickerModel)
	if final.cancelled {
		return "", nil
	}
	return final.choice, nil
}
