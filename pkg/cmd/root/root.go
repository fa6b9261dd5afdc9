package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wfind/wfind/internal/config"
	"github.com/wfind/wfind/internal/constants"
	"github.com/wfind/wfind/internal/fzf"
	"github.com/wfind/wfind/internal/index"
	"github.com/wfind/wfind/internal/opener"
	"github.com/wfind/wfind/internal/search"
	indexcmd "github.com/wfind/wfind/pkg/cmd/index"
	"github.com/wfind/wfind/pkg/cmd/initialize"
	"github.com/wfind/wfind/pkg/cmd/settings"
	"github.com/wfind/wfind/pkg/flags"
)

const defaultFuzzyLimit = 20

func NewCmdRoot(cfg *config.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "wfind [query]",
		Version: constants.Version,
		Short:   "A fast local file search tool with smart pattern detection.",
		Long: heredoc.Doc(`
			Search for files by name with automatic pattern detection: plain
			text runs a substring search, wildcards run a glob search, and
			regex metacharacters run a regex search. Fuzzy matching is opt-in
			and tolerates typos.

			  wfind config.txt        substring search
			  wfind '*.rs'            auto-detected glob search
			  wfind '\.rs$'           auto-detected regex search
			  wfind --fuzzy confg     fuzzy search, tolerates typos
			  wfind -i '*.go'         pick a result and reveal it
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, cfg, args[0])
		},
	}

	flags.AddPath(cmd)
	flags.AddModes(cmd)
	cmd.Flags().BoolP("interactive", "i", false, "Select a result to reveal in the file manager")
	cmd.Flags().Bool("finder", false, "Pick a result with a fuzzy finder and preview pane")
	cmd.Flags().BoolP("copy", "c", false, "Copy the first (or selected) result path to the clipboard")
	cmd.Flags().Int("limit", 0, "Maximum results to print (0 = all; fuzzy defaults to 20)")
	cmd.Flags().Bool("case-sensitive", false, "Match case-sensitively for this run")
	viper.BindPFlag("case_sensitive", cmd.Flags().Lookup("case-sensitive"))

	cmd.AddCommand(
		initialize.NewCmdInit(),
		settings.NewCmdSettings(cfg),
		indexcmd.NewCmdIndex(cfg),
	)

	return cmd, nil
}

func runSearch(cmd *cobra.Command, cfg *config.Config, query string) error {
	searchPath, err := flags.HandlePath(cmd)
	if err != nil {
		return err
	}

	forced, hasForced, err := flags.HandleModes(cmd)
	if err != nil {
		return err
	}

	caseSensitive := cfg.CaseSensitive
	if cmd.Flags().Changed("case-sensitive") {
		caseSensitive, _ = cmd.Flags().GetBool("case-sensitive")
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	useFinder, _ := cmd.Flags().GetBool("finder")
	copyResult, _ := cmd.Flags().GetBool("copy")
	limit, _ := cmd.Flags().GetInt("limit")

	builder := index.NewBuilder(index.Options{
		MaxDepth:       cfg.MaxDepth,
		IgnoreHidden:   cfg.IgnoreHidden,
		IgnorePatterns: cfg.IgnorePatterns,
		MaxFileSize:    cfg.MaxFileSize,
		CaseSensitive:  caseSensitive,
	})

	idx, _, err := builder.Build(searchPath)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", searchPath, err)
	}

	if hasForced && forced == search.ModeFuzzy {
		return runFuzzy(cfg, idx, query, searchPath, caseSensitive, interactive, useFinder, copyResult, limit)
	}

	var (
		results []string
		mode    search.Mode
	)

	if hasForced {
		mode = forced
		results, err = search.Search(idx, query, mode, caseSensitive)
	} else {
		results, mode, err = search.SearchAuto(idx, query, caseSensitive)
	}
	if err != nil {
		return err
	}

	detection := "auto-detected"
	if hasForced {
		detection = "forced"
	}
	fmt.Printf("Searching for '%s' in '%s' using %s %s matching...\n", query, searchPath, detection, mode)

	if len(results) == 0 {
		fmt.Printf("No files found matching '%s'\n", query)
		return nil
	}

	fmt.Printf("Found %d file(s):\n", len(results))
	for i, file := range printable(results, limit) {
		if interactive {
			fmt.Printf("  [%d] %s\n", i+1, file)
		} else {
			fmt.Printf("  %s\n", file)
		}
	}

	return handleSelection(cfg, results, query, interactive, useFinder, copyResult)
}

func runFuzzy(
	cfg *config.Config,
	idx search.Index,
	query, searchPath string,
	caseSensitive, interactive, useFinder, copyResult bool,
	limit int,
) error {
	fmt.Printf("Searching for '%s' in '%s' using forced fuzzy matching...\n", query, searchPath)

	scored := search.MatchFuzzy(idx, query, caseSensitive)
	if len(scored) == 0 {
		fmt.Printf("No files found matching '%s'\n", query)
		return nil
	}

	if limit <= 0 {
		limit = defaultFuzzyLimit
	}

	fmt.Printf("Found %d file(s) (sorted by relevance):\n", len(scored))
	paths := make([]string, 0, len(scored))
	for i, sp := range scored {
		paths = append(paths, sp.Path)
		if i >= limit {
			continue
		}
		if interactive {
			fmt.Printf("  [%d] %s (score: %.2f)\n", i+1, sp.Path, sp.Score)
		} else {
			fmt.Printf("  %s (score: %.2f)\n", sp.Path, sp.Score)
		}
	}

	return handleSelection(cfg, paths, query, interactive, useFinder, copyResult)
}

// handleSelection runs the post-search actions: a numbered prompt or fuzzy
// picker when asked for, then reveal and/or clipboard copy of the choice.
func handleSelection(cfg *config.Config, results []string, query string, interactive, useFinder, copyResult bool) error {
	selected := ""

	switch {
	case useFinder:
		finder := fzf.NewFinder("Select file to reveal.")
		choice, err := finder.Select(results, query)
		if err != nil {
			return nil
		}
		selected = choice
	case interactive:
		sel := selection.New("Reveal which file?", results)
		sel.PageSize = 10

		choice, err := sel.RunPrompt()
		if err != nil {
			return nil
		}
		selected = choice
	}

	if copyResult {
		target := selected
		if target == "" {
			target = results[0]
		}
		if err := opener.CopyPath(target); err != nil {
			return err
		}
		fmt.Printf("Copied %s to clipboard\n", target)
	}

	if selected != "" {
		fmt.Printf("Revealing %s...\n", selected)
		return opener.Reveal(selected, cfg.Opener)
	}

	return nil
}

func printable(results []string, limit int) []string {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
