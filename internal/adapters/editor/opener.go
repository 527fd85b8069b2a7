package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/cixtor/interview/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	editor string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener. An empty editor falls back to the environment.
func NewOpener(editor string) *Opener {
	return &Opener{editor: editor}
}

// Target formats the single editor argument "{path}:{line}"
func Target(path string, line int) string {
	return path + ":" + strconv.Itoa(line)
}

// Open starts the editor on the record and returns without waiting for it
func (o *Opener) Open(path string, line int) error {
	cmd, err := o.Command(path, line)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	return cmd.Process.Release()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string, line int) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, Target(path, line))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}

	// Check $EDITOR first
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"subl", "code", "nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
