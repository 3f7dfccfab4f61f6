// Command zen is the ZEN language interpreter. With no arguments it enters
// the interactive REPL; with file arguments it executes each file in a
// fresh global scope, exiting 1 on the first failure.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akaoio/zen/file"
	"github.com/akaoio/zen/repl"
)

// VERSION is the interpreter version reported by --version.
var VERSION = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "zen [file ...]",
	Short:   "ZEN programming language interpreter",
	Long:    "zen runs ZEN programs (.zen, .zn) or starts an interactive session.",
	Version: VERSION,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			repl.NewRepl(VERSION).Start(os.Stdout)
			return nil
		}
		for _, path := range args {
			if code := file.Run(path, os.Stdout, os.Stderr); code != 0 {
				os.Exit(1)
			}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
