package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vedit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		if cfgPath != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfgPath)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Set one configuration value",
	Example: "  vedit config set editor.confirm_quit true",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configTarget()
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
		return err
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configTarget is the file config set writes to.
func configTarget() string {
	if cfgFile != "" {
		return cfgFile
	}
	if cfgPath != "" {
		return cfgPath
	}
	return config.UserConfigPath()
}
