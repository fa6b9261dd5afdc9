package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wfind/wfind/internal/config"
)

func NewCmdSettings(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Show or change search settings.",
		Long: heredoc.Doc(`
			Without arguments, prints the effective settings. The set
			subcommand changes one value and saves the settings file:

			  wfind settings set case_sensitive true
			  wfind settings set max_depth 4
			  wfind settings set max_file_size 1048576
			  wfind settings set ignore_hidden false
			  wfind settings set opener xdg-open
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			printSettings(cfg)
			return nil
		},
	}

	cmd.AddCommand(newCmdSet(cfg), newCmdIgnore(cfg))

	return cmd
}

func printSettings(cfg *config.Config) {
	fmt.Printf("case_sensitive: %v\n", cfg.CaseSensitive)
	fmt.Printf("ignore_hidden: %v\n", cfg.IgnoreHidden)
	fmt.Printf("max_depth: %s\n", unlimitedInt(cfg.MaxDepth))
	fmt.Printf("max_file_size: %s\n", unlimitedInt64(cfg.MaxFileSize))
	opener := cfg.Opener
	if opener == "" {
		opener = "(platform default)"
	}
	fmt.Printf("opener: %s\n", opener)
	fmt.Printf("ignore_patterns: %s\n", strings.Join(cfg.IgnorePatterns, ", "))
}

func unlimitedInt(v int) string {
	if v == 0 {
		return "unlimited"
	}
	return strconv.Itoa(v)
}

func unlimitedInt64(v int64) string {
	if v == 0 {
		return "unlimited"
	}
	return strconv.FormatInt(v, 10)
}

func newCmdSet(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change one setting and save.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			switch key {
			case "case_sensitive":
				v, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("case_sensitive wants true or false, got %q", value)
				}
				return cfg.SetCaseSensitive(v)
			case "ignore_hidden":
				v, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("ignore_hidden wants true or false, got %q", value)
				}
				return cfg.SetIgnoreHidden(v)
			case "max_depth":
				v, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("max_depth wants a number, got %q", value)
				}
				return cfg.SetMaxDepth(v)
			case "max_file_size":
				v, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return fmt.Errorf("max_file_size wants a byte count, got %q", value)
				}
				return cfg.SetMaxFileSize(v)
			case "opener":
				return cfg.ChangeOpener(value)
			}

			return fmt.Errorf("unknown setting: %q", key)
		},
	}
}

func newCmdIgnore(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Manage ignore patterns.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [pattern]",
			Short: "Add an ignore pattern.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.AddIgnorePattern(args[0])
			},
		},
		&cobra.Command{
			Use:   "remove [pattern]",
			Short: "Remove an ignore pattern.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.RemoveIgnorePattern(args[0])
			},
		},
	)

	return cmd
}
