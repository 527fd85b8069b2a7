package ports

// Clipboard defines the interface for copying record paths to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
