package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/config"
)

func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the registered layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry(config.NewStore())
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
