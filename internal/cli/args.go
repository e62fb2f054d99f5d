package cli

import (
	"fmt"
	"io"
)

// UsageText is printed when the run command does not get exactly three
// positional arguments.
const UsageText = "Please provide the filepaths of the messages and categories " +
	"datasets as the first and second argument respectively, as well as the " +
	"filepath of the database to save the cleaned data to as the third argument. " +
	"\n\nExample: dretl run disaster_messages.csv disaster_categories.csv DisasterResponse.db"

// runArgCount is the number of positional arguments of the run command.
const runArgCount = 3

// checkRunArgs reports whether args hold the three run paths. Otherwise it
// prints UsageText to w.
func checkRunArgs(w io.Writer, args []string) bool {
	if len(args) == runArgCount {
		return true
	}
	fmt.Fprintln(w, UsageText)
	return false
}
