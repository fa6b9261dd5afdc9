package flags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wfind/wfind/internal/search"
)

// AddModes registers the four mutually exclusive mode-forcing flags.
func AddModes(cmd *cobra.Command) {
	cmd.Flags().BoolP("regex", "r", false, "Force regex matching (overrides auto-detection)")
	cmd.Flags().BoolP("glob", "g", false, "Force glob pattern matching (overrides auto-detection)")
	cmd.Flags().BoolP("substring", "s", false, "Force substring matching (overrides auto-detection)")
	cmd.Flags().BoolP("fuzzy", "f", false, "Force fuzzy matching (tolerates typos)")
}

// HandleModes resolves the forced mode, if any. Asking for more than one
// mode at once is an error.
func HandleModes(cmd *cobra.Command) (search.Mode, bool, error) {
	type modeFlag struct {
		name string
		mode search.Mode
	}

	var (
		forced search.Mode
		count  int
	)

	for _, mf := range []modeFlag{
		{"regex", search.ModeRegex},
		{"glob", search.ModeGlob},
		{"substring", search.ModeSubstring},
		{"fuzzy", search.ModeFuzzy},
	} {
		set, err := cmd.Flags().GetBool(mf.name)
		if err != nil {
			return 0, false, err
		}
		if set {
			forced = mf.mode
			count++
		}
	}

	if count > 1 {
		return 0, false, fmt.Errorf("cannot use multiple search modes simultaneously")
	}

	return forced, count == 1, nil
}
