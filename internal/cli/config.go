package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect layout configuration",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	var path string
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show prints every registered key with its effective value after the
config file is applied. With --toml the values are written in config file
syntax, ready to be saved as a starting point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, resolved, err := c.loadConfig(path)
			if err != nil {
				return err
			}
			if asTOML {
				return store.Encode(os.Stdout)
			}

			fmt.Println(StyleTitle.Render("Configuration"))
			if resolved != "" {
				printKeyValue("File", resolved)
			}
			values := store.Values()
			for _, key := range store.Keys() {
				printKeyValue(key, fmt.Sprint(values[key]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "config file (default $XDG_CONFIG_HOME/columns/columns.toml)")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print as TOML")

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}
