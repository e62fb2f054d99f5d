package dretl

import "context"

// Approver handles user interaction before destructive operations,
// namely dropping an existing destination table under the replace policy.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the table name for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before dropping and recreating a table.
	// Returns true if approved, false if denied.
	RequestApproval(ctx context.Context, tableName string) (bool, error)
}
