// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the invocation into the application's internal configuration
// and maps application failures onto user-facing messages.
package cli
