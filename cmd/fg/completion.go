package main

import (
	"os"
	"strings"

	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for fg.

To load completions:

Bash:
  $ source <(fg completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ fg completion bash > /etc/bash_completion.d/fg
  # macOS:
  $ fg completion bash > $(brew --prefix)/etc/bash_completion.d/fg

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ fg completion zsh > "${fpath[1]}/_fg"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ fg completion fish | source
  # To load completions for each session, execute once:
  $ fg completion fish > ~/.config/fish/completions/fg.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeDatasets completes dataset file names in the current directory.
func completeDatasets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names, err := s.ListDatasets()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)

	for _, name := range names {
		if !strings.HasPrefix(strings.ToLower(name), toCompleteLower) {
			continue
		}
		df, err := s.LoadDataset(name)
		if err != nil {
			continue
		}
		completions = append(completions, name+"\t"+df.Problem.Title())
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeProblems completes the two problem names.
func completeProblems(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, p := range []model.ProblemType{model.ProblemMutual, model.ProblemLevel} {
		if strings.HasPrefix(string(p), strings.ToLower(toComplete)) {
			completions = append(completions, string(p)+"\t"+p.Title())
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
