package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for labware.

To load completions:

Bash:
  $ source <(labware completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ labware completion bash > /etc/bash_completion.d/labware
  # macOS:
  $ labware completion bash > $(brew --prefix)/etc/bash_completion.d/labware

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ labware completion zsh > "${fpath[1]}/_labware"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ labware completion fish | source

  # To load completions for each session, execute once:
  $ labware completion fish > ~/.config/fish/completions/labware.fish

PowerShell:
  PS> labware completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> labware completion powershell > labware.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
