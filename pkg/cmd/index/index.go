package index

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wfind/wfind/internal/config"
	idx "github.com/wfind/wfind/internal/index"
	"github.com/wfind/wfind/pkg/flags"
)

func NewCmdIndex(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "index",
		Short:   "Build the file index and print its statistics.",
		Example: "wfind index -p /home/user/projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			searchPath, err := flags.HandlePath(cmd)
			if err != nil {
				return err
			}

			builder := idx.NewBuilder(idx.Options{
				MaxDepth:       cfg.MaxDepth,
				IgnoreHidden:   cfg.IgnoreHidden,
				IgnorePatterns: cfg.IgnorePatterns,
				MaxFileSize:    cfg.MaxFileSize,
				CaseSensitive:  cfg.CaseSensitive,
			})

			_, stats, err := builder.Build(searchPath)
			if err != nil {
				return fmt.Errorf("indexing %s: %w", searchPath, err)
			}

			fmt.Printf("Indexed %d file(s) under %d unique name(s) in %s\n",
				stats.Files, stats.Names, stats.Duration.Round(time.Millisecond))
			return nil
		},
	}

	flags.AddPath(cmd)

	return cmd
}
