package initialize

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wfind/wfind/internal/config"
)

func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the settings file with default values.",
		Example: "wfind init",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}

			path := config.GetConfigPath(home)
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Settings file already exists at %s\n", path)
				return nil
			}

			if err := config.EnsureConfigExists(home); err != nil {
				return err
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Printf("Wrote default settings to %s\n", path)
			return nil
		},
	}

	return cmd
}
