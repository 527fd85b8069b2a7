package editor

import "testing"

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		path string
		line int
		want string
	}{
		{
			name: "zero offset",
			path: "/archive/2024/20240101T000000-acme.eml",
			line: 0,
			want: "/archive/2024/20240101T000000-acme.eml:0",
		},
		{
			name: "boundary offset",
			path: "/archive/2024/20240101T000000-acme.eml",
			line: 13,
			want: "/archive/2024/20240101T000000-acme.eml:13",
		},
		{
			name: "path with spaces",
			path: "/My Archive/2024/x.eml",
			line: 16,
			want: "/My Archive/2024/x.eml:16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Target(tt.path, tt.line); got != tt.want {
				t.Errorf("Target() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_UsesConfiguredEditor(t *testing.T) {
	t.Setenv("EDITOR", "from-env")

	cmd, err := NewOpener("configured").Command("/tmp/x.eml", 4)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "configured" || cmd.Args[1] != "/tmp/x.eml:4" {
		t.Errorf("Args = %v", cmd.Args)
	}
}

func TestCommand_FallsBackToEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "visual-editor")

	cmd, err := NewOpener("").Command("/tmp/x.eml", 0)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if cmd.Args[0] != "visual-editor" {
		t.Errorf("editor = %q, want visual-editor", cmd.Args[0])
	}
}

func TestOpen_MissingBinaryFails(t *testing.T) {
	err := NewOpener("/nonexistent/editor-binary").Open("/tmp/x.eml", 0)
	if err == nil {
		t.Fatal("expected error for missing editor binary")
	}
}
