package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/telatin/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "telatin [word]",
		Short: "Telugu to Latin transliteration and pronunciation",
		Long: `telatin converts Telugu-script text into IAST Latin transliteration
and a simplified Latin pronunciation.

It processes single words, word files (one word per line), or a named
column of a CSV file, and writes results as JSON, CSV, or SQLite.

Examples:
  telatin నమస్కారం                      # Convert a single word
  telatin --batch words.txt --json out.json
  telatin --csv words.csv --column telugu_word --csv-out converted.csv`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.telatin.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line)")
	cmd.Flags().StringVar(&flags.CSVFile, "csv", "", "Process a column of a CSV file")
	cmd.Flags().StringVar(&flags.CSVColumn, "column", flags.CSVColumn, "Column name holding Telugu text (with --csv)")
	cmd.Flags().BoolVar(&flags.Permissive, "permissive", false, "Pass non-Telugu runs through instead of rejecting mixed-script input")
	cmd.Flags().BoolVar(&flags.AllowDigits, "allow-digits", false, "Permit ASCII digits in the input")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log conversion warnings in detail")

	// Output flags
	cmd.Flags().StringVar(&flags.JSONOut, "json", "", "Write a JSON report to this file")
	cmd.Flags().StringVar(&flags.CSVOut, "csv-out", "", "Write the CSV back with result columns appended (with --csv)")
	cmd.Flags().StringVar(&flags.SQLiteOut, "sqlite", "", "Write the report to this SQLite database")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("script.allow_digits", cmd.Flags().Lookup("allow-digits"))
	viper.BindPFlag("output.json", cmd.Flags().Lookup("json"))
	viper.BindPFlag("output.sqlite", cmd.Flags().Lookup("sqlite"))
	viper.BindPFlag("csv.column", cmd.Flags().Lookup("column"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".telatin" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".telatin")
	}

	// Environment variables
	viper.SetEnvPrefix("TELATIN")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
