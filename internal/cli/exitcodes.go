package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: API failures, local store errors, not being logged in,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a card id that is not on the board, or a drop target that is
	// neither a column nor a card.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a request the API rejected as malformed (400 or 422).
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: an empty title, a bad plate, a missing interval, a short
	// password, or any input rejected before it reaches the API.
	ExitValidation = 5
)
