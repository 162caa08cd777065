// SPDX-License-Identifier: Apache-2.0

// Package cli defines the command-line surface. The root command resolves
// the input document (file or piped stdin) and launches the TUI; the
// subcommands inspect the engine setup without entering it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rexi/cmd/tui"
	"rexi/internal/config"
	"rexi/internal/logger"
)

var (
	flagPattern string
	flagInput   string
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:   "rexi",
	Short: "Interactive pattern testing in the terminal",
	Long: `rexi is an interactive TUI for trying patterns against text.

Pipe text in (or point --input at a file), type a pattern, and watch matches
highlight live. Profiles cover Go regex, PCRE and POSIX grep, sed, AWK
programs with a field breakdown, and jq filters for JSON input.`,
	Example: `  cat access.log | rexi
  rexi --input data.json --profile jq -p '.items[].name'
  dmesg | rexi -p 'usb \d+'`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := ResolveInput(flagInput)
		if err != nil {
			return err
		}

		logger.Init(true)
		cfg, err := config.LoadConfig()
		if err != nil {
			// A broken config file should not block the session.
			logger.Warn("config load failed, using defaults", "err", err)
			cfg = config.Config{}
		}
		return tui.Run(content, flagPattern, flagProfile, cfg)
	},
}

// RunCLI executes the root command.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagPattern, "pattern", "p", "", "initial pattern")
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input file path")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "initial profile id (go-re, pcre, grep, sed, awk, jq)")

	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(checkCmd)
}

// errNoInput is returned when there is neither a file argument nor piped
// stdin to read.
var errNoInput = fmt.Errorf("no input provided: pipe text to rexi or use --input FILE")
