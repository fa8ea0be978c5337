// Package cmd provides the mdxgen command implementation.
package cmd

// Exit codes returned by the mdxgen binary.
const (
	// ExitSuccess indicates the command completed successfully. Pages that
	// failed individually do not change it.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: unknown profile, bad path
	// list, malformed config or template file.
	ExitValidationError = 2

	// ExitNotFound indicates a requested config file or template directory is missing.
	ExitNotFound = 3

	// ExitPermissionDenied indicates the output root cannot be used.
	ExitPermissionDenied = 4

	// ExitInterrupted indicates the run was stopped by SIGINT or SIGTERM.
	ExitInterrupted = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}
