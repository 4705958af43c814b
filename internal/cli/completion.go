package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its cobra generator.
var completionShells = map[string]func(cmd *cobra.Command) error{
	"bash": func(cmd *cobra.Command) error { return cmd.Root().GenBashCompletionV2(os.Stdout, true) },
	"zsh":  func(cmd *cobra.Command) error { return cmd.Root().GenZshCompletion(os.Stdout) },
	"fish": func(cmd *cobra.Command) error { return cmd.Root().GenFishCompletion(os.Stdout, true) },
}

// completionCommand prints a completion script for one shell.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion bash|zsh|fish",
		Short: "Generate a shell completion script",
		Long: `Completion prints a completion script for the given shell.

  source <(columns completion bash)
  columns completion zsh > "${fpath[1]}/_columns"
  columns completion fish > ~/.config/fish/completions/columns.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd)
		},
	}
}
