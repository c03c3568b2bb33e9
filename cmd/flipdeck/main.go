package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/flipdeck/internal/cli"
	"codeberg.org/snonux/flipdeck/internal/gui"
	"codeberg.org/snonux/flipdeck/internal/logging"
	"codeberg.org/snonux/flipdeck/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Config file and environment may override the flag defaults
	flags.DeckFile = cli.GetDeckFile()
	flags.DeckName = cli.GetDeckName()

	// The log viewer only collects lines until the manager window shows them
	logViewer := gui.NewLogViewer()
	log := logging.NewConsole(logging.ParseLevel(cli.GetLogLevel()), logViewer)

	proc := processor.NewProcessor(flags, log)
	if err := proc.Run(logViewer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
