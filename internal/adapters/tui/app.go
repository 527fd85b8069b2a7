package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cixtor/interview/internal/adapters/tui/views"
	"github.com/cixtor/interview/internal/domain"
	"github.com/cixtor/interview/internal/ports"
)

// App is the main TUI application model
type App struct {
	repo   ports.RecordRepository
	editor ports.EditorOpener
	picker *views.PickerModel
}

// NewApp creates a new TUI application
func NewApp(repo ports.RecordRepository, ed ports.EditorOpener, clip ports.Clipboard) *App {
	return &App{
		repo:   repo,
		editor: ed,
		picker: views.NewPickerModel(repo, clip),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.OpenRecordMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			return a, statusErr(msg.err)
		}
		return a, nil
	}

	_, cmd := a.picker.Update(msg)
	return a, cmd
}

type editorFinishedMsg struct{ err error }

// openEditor places the cursor on the last boundary line of the record
func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	lines, err := a.repo.ReadLines(path)
	if err != nil {
		return statusErr(err)
	}
	line, err := domain.LocateBoundary(lines)
	if err != nil {
		return statusErr(err)
	}

	cmd, err := a.editor.Command(path, line)
	if err != nil {
		return statusErr(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func statusErr(err error) tea.Cmd {
	return func() tea.Msg {
		return views.StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// View renders the picker
func (a *App) View() string {
	return a.picker.View()
}
