package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

func AddPath(cmd *cobra.Command) {
	cmd.Flags().
		StringP(
			"path",
			"p",
			".",
			"Directory to search (default: current directory)",
		)
}

func HandlePath(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return "", fmt.Errorf("reading path flag: %w", err)
	}
	return path, nil
}
