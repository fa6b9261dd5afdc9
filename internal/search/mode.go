package search

import "fmt"

// Mode selects how a query is matched against indexed filenames.
type Mode int

const (
	// ModeSubstring matches filenames containing the query verbatim.
	ModeSubstring Mode = iota
	// ModeGlob matches filenames against a shell-style wildcard pattern.
	ModeGlob
	// ModeRegex matches filenames against a regular expression.
	ModeRegex
	// ModeFuzzy ranks filenames by typo-tolerant similarity to the query.
	ModeFuzzy
)

var modeNames = map[Mode]string{
	ModeSubstring: "substring",
	ModeGlob:      "glob",
	ModeRegex:     "regex",
	ModeFuzzy:     "fuzzy",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode resolves a mode name as used in flags and settings files.
func ParseMode(name string) (Mode, error) {
	for mode, n := range modeNames {
		if n == name {
			return mode, nil
		}
	}
	return ModeSubstring, fmt.Errorf("unknown search mode: %q", name)
}
