package ports

import "os/exec"

// EditorOpener defines the interface for opening records in an external editor
type EditorOpener interface {
	// Open starts the editor on "{path}:{line}" and does not wait for it to exit
	Open(path string, line int) error

	// Command returns an exec.Cmd for opening a file in the editor at a line
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string, line int) (*exec.Cmd, error)
}
