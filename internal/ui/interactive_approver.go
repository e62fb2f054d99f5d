package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/dretl/pkg/dretl"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the table name
// to confirm destructive operations.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading stdin.
func NewInteractiveApprover(verbose bool) dretl.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval prompts the user to type the table name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, tableName string) (bool, error) {
	fmt.Fprintf(a.output, "\n%s You are about to DROP and RECREATE the table '%s'\n",
		WarningStyle.Render("WARNING:"), tableName)
	fmt.Fprintln(a.output, "This will permanently delete all rows in this table!")
	fmt.Fprintf(a.output, "\nTo confirm, type the table name '%s' and press Enter: ", tableName)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == tableName {
			fmt.Fprintf(a.output, "%s Confirmed. Proceeding with table replacement...\n", SymbolCheck)
			return true, nil
		}
		fmt.Fprintf(a.output, "%s Input '%s' does not match table name '%s'. Operation cancelled.\n",
			SymbolCross, input, tableName)
		return false, nil
	}
}

var _ dretl.Approver = (*InteractiveApprover)(nil)
