// Package errors provides exit-code-aware errors for the CLI surface.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes reported to the supervising process.
const (
	ExitSuccess = 0 // Success
	ExitGeneral = 1 // General error
	ExitConfig  = 2 // Configuration error (missing config, invalid token)
	ExitAuth    = 3 // Authentication error (rejected token)
	ExitNetwork = 4 // Network / gateway error
)

// ErrorWithExitCode wraps an error with a specific exit code.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (e *ErrorWithExitCode) Error() string {
	return e.Err.Error()
}

func (e *ErrorWithExitCode) Unwrap() error {
	return e.Err
}

// NewErrorWithCode creates an error with a specific exit code.
func NewErrorWithCode(code int, format string, args ...interface{}) *ErrorWithExitCode {
	return &ErrorWithExitCode{
		Err:      fmt.Errorf(format, args...),
		ExitCode: code,
	}
}

// WrapWithCode wraps an existing error with an exit code.
func WrapWithCode(code int, err error, format string, args ...interface{}) *ErrorWithExitCode {
	return &ErrorWithExitCode{
		Err:      fmt.Errorf(format+": %w", append(args, err)...),
		ExitCode: code,
	}
}

// ConfigError creates a configuration-related error.
func ConfigError(msg string, args ...interface{}) error {
	return NewErrorWithCode(ExitConfig, msg, args...)
}

// AuthError creates an authentication-related error.
func AuthError(msg string, args ...interface{}) error {
	return NewErrorWithCode(ExitAuth, msg, args...)
}

// Execute runs a cobra command and exits with the appropriate code.
// This should be used in main.go to ensure proper exit codes.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err != nil {
		var errWithCode *ErrorWithExitCode
		if errors.As(err, &errWithCode) {
			os.Exit(errWithCode.ExitCode)
		}
		os.Exit(ExitGeneral)
	}
	os.Exit(ExitSuccess)
}
