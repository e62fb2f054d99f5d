package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dretl",
	Short: "Disaster-response message ETL",
	Long: `dretl loads a messages dataset and a categories dataset, merges them on
their shared identifier, expands the delimited category labels into one
indicator column per label, removes duplicate rows and saves the result
into a table of a local SQLite database.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied table replacement
  20 - Input data does not have the expected shape
  21 - Destination table conflicts with the write policy`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
