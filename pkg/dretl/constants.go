package dretl

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Pipeline completed (or usage text printed)
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (unknown flag, invalid flag value)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid configuration
	ExitApprovalDenied      = 12 // User denied table replacement
	ExitDataError           = 20 // Input data violates the expected shape
	ExitDestinationConflict = 21 // Destination table exists or has another schema
)

const (
	// DefaultTableName is the table the cleaned disaster-response messages are written to.
	DefaultTableName = "disaster_texts"

	// DefaultKeyColumn is the identifier shared by the messages and categories files.
	DefaultKeyColumn = "id"

	// DefaultCategoryColumn holds the delimited label string in the categories file.
	DefaultCategoryColumn = "categories"

	// DefaultSeparator separates label tokens inside the category column.
	DefaultSeparator = ";"

	// DefaultTimeout bounds a whole pipeline run. Zero means no deadline.
	DefaultTimeout time.Duration = 0

	// DefaultForceApprovalCountdown is the countdown before a forced table replacement proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// LabelSuffixLength is the length of the "-N" suffix stripped from each
	// category token to obtain the label name.
	LabelSuffixLength = 2

	// MergeSuffixLeft and MergeSuffixRight disambiguate non-key columns present in both inputs.
	MergeSuffixLeft  = "_x"
	MergeSuffixRight = "_y"
)
