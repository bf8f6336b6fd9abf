package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	takkun "github.com/campaul/takkun"
	"github.com/campaul/takkun/editor"
	"github.com/campaul/takkun/internal/system"
	"github.com/campaul/takkun/terminal"
)

var rootCmd = &cobra.Command{
	Use:   "takkun [file]",
	Short: "takkun is a small terminal text editor",
	Long: "takkun edits UTF-8 text files in the terminal with soft wrapping,\n" +
		"tabs, incremental search, and the usual ctrl-key shortcuts.\n" +
		"Run it with a filename to open or create that file.",
	Args:    cobra.MaximumNArgs(1),
	Version: takkun.Version(),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		return run(file)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(file string) error {
	// The editor owns the screen, so logs only go to a file the user
	// asks for.
	if path := os.Getenv("TAKKUN_LOG"); path != "" {
		if err := system.EnableLogFile(path); err != nil {
			return err
		}
		system.SetLevelFromEnv(os.Getenv("TAKKUN_LOG_LEVEL"))
	}

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return editor.New(term).Run(file)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
