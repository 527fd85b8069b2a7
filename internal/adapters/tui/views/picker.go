package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cixtor/interview/internal/adapters/tui/styles"
	"github.com/cixtor/interview/internal/domain"
	"github.com/cixtor/interview/internal/ports"
)

// PickerKeyMap defines key bindings for the recent records picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Copy   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PickerModel lists the most recent records of the year, newest on top
type PickerModel struct {
	ViewState
	repo   ports.RecordRepository
	clip   ports.Clipboard
	paths  []string
	cursor int
	loaded bool
}

// NewPickerModel creates a new picker model. A nil clipboard disables copying.
func NewPickerModel(repo ports.RecordRepository, clip ports.Clipboard) *PickerModel {
	return &PickerModel{
		repo: repo,
		clip: clip,
	}
}

type recordsLoadedMsg struct {
	paths []string
}

type errMsg struct {
	err error
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *PickerModel) loadRecords() tea.Msg {
	paths, err := m.repo.Recent()
	if err != nil {
		return errMsg{err}
	}
	// Recent is oldest first
	reversed := make([]string, len(paths))
	for i, p := range paths {
		reversed[len(paths)-1-i] = p
	}
	return recordsLoadedMsg{reversed}
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case recordsLoadedMsg:
		m.paths = msg.paths
		m.loaded = true
		m.clampCursor()
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.IsErr)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.paths)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Open):
			if path := m.Selected(); path != "" {
				return m, func() tea.Msg {
					return OpenRecordMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Copy):
			return m, m.copySelected()

		case key.Matches(msg, PickerKeys.Reload):
			return m, m.Reload()
		}
	}

	return m, nil
}

func (m *PickerModel) copySelected() tea.Cmd {
	path := m.Selected()
	if path == "" || m.clip == nil {
		return nil
	}
	return func() tea.Msg {
		if err := m.clip.WriteAll(path); err != nil {
			return StatusMsg{Text: err.Error(), IsErr: true}
		}
		return StatusMsg{Text: "Copied " + path}
	}
}

// Selected returns the path under the cursor, or "" when the list is empty
func (m *PickerModel) Selected() string {
	if m.cursor >= 0 && m.cursor < len(m.paths) {
		return m.paths[m.cursor]
	}
	return ""
}

// Reload reloads the records from disk
func (m *PickerModel) Reload() tea.Cmd {
	m.loaded = false
	return m.loadRecords
}

func (m *PickerModel) clampCursor() {
	if m.cursor >= len(m.paths) {
		m.cursor = len(m.paths) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Interviews"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.repo.Root()))
	b.WriteString("\n\n")

	if len(m.paths) == 0 {
		b.WriteString(styles.MutedText.Render("No records this year."))
		b.WriteString("\n")
	}
	for i, path := range m.paths {
		b.WriteString(renderRecord(path, i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(renderHelpLine())

	return styles.App.Render(b.String())
}

// RecordLabel formats a record path for display
func RecordLabel(path string) string {
	rec, ok := domain.ParseRecord(path)
	if !ok {
		return filepath.Base(path)
	}
	return fmt.Sprintf("%s  %-24s %s", rec.Timestamp.Format("2006-01-02 15:04"), rec.Company, rec.Kind)
}

func renderRecord(path string, selected bool) string {
	text := RecordLabel(path)
	if selected {
		return styles.RowSelected.Render(text)
	}
	if _, ok := domain.ParseRecord(path); !ok {
		return styles.MutedText.Render(text)
	}
	return styles.Row.Render(text)
}

func renderHelpLine() string {
	bindings := []key.Binding{
		PickerKeys.Up,
		PickerKeys.Down,
		PickerKeys.Open,
		PickerKeys.Copy,
		PickerKeys.Reload,
		PickerKeys.Quit,
	}

	var parts []string
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(h.Key),
			styles.HelpDesc.Render(h.Desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
