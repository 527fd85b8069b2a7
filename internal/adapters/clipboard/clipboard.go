package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/cixtor/interview/internal/ports"
)

// System implements ports.Clipboard using the OS clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = System{}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
