package flags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestHandlePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Default", nil, "."},
		{"Explicit", []string{"--path", "/home/user/projects"}, "/home/user/projects"},
		{"Shorthand", []string{"-p", "/tmp"}, "/tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			AddPath(cmd)
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("Failed to parse flags: %v", err)
			}

			path, err := HandlePath(cmd)
			if err != nil {
				t.Fatalf("HandlePath returned error: %v", err)
			}
			if path != tt.want {
				t.Errorf("path = %q, want %q", path, tt.want)
			}
		})
	}
}
