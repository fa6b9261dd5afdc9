package opener

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
)

// seams for tests
var (
	startCommand = func(name string, args ...string) error {
		return exec.Command(name, args...).Start()
	}
	writeClipboard = clipboard.WriteAll
	goos           = runtime.GOOS
)

// Reveal shows the file in the system file manager, selecting it where the
// manager supports selection. An explicit opener from the settings file
// takes precedence over platform detection.
func Reveal(path, opener string) error {
	for _, c := range candidates(path, opener) {
		if err := startCommand(c.name, c.args...); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no file manager could reveal %s", path)
}

// CopyPath places the result path on the system clipboard.
func CopyPath(path string) error {
	if err := writeClipboard(path); err != nil {
		return fmt.Errorf("copying path to clipboard: %w", err)
	}
	return nil
}

type command struct {
	name string
	args []string
}

// candidates lists the file manager invocations to try, most specific
// first. On Linux several managers may or may not be installed, so the
// chain walks through the common ones before falling back to xdg-open on
// the parent directory.
func candidates(path, opener string) []command {
	parent := filepath.Dir(path)

	if opener != "" && opener != "custom" {
		return []command{commandFor(opener, path, parent)}
	}

	switch goos {
	case "windows":
		return []command{{"explorer", []string{"/select,", path}}}
	case "darwin":
		return []command{{"open", []string{"-R", path}}}
	default:
		return []command{
			{"nautilus", []string{"--select", path}},
			{"dolphin", []string{"--select", path}},
			{"thunar", []string{path}},
			{"pcmanfm", []string{path}},
			{"xdg-open", []string{parent}},
		}
	}
}

func commandFor(opener, path, parent string) command {
	switch opener {
	case "explorer":
		return command{"explorer", []string{"/select,", path}}
	case "open":
		return command{"open", []string{"-R", path}}
	case "nautilus", "dolphin":
		return command{opener, []string{"--select", path}}
	case "xdg-open":
		return command{"xdg-open", []string{parent}}
	default:
		return command{opener, []string{path}}
	}
}
