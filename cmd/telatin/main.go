package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/telatin/internal/cli"
	"codeberg.org/snonux/telatin/internal/processor"
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
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	switch {
	case flags.CSVFile != "":
		// Process a CSV column
		return proc.ProcessCSV()
	case flags.BatchFile != "":
		// Process batch file
		return proc.ProcessBatch()
	case len(args) > 0:
		// Process single word
		return proc.ProcessSingleWord(args[0])
	default:
		// No input provided
		return cmd.Help()
	}
}
