package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
)

// Exit codes for the md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or arguments
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUsage),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, md2html.ErrSettingsParse):
		return ExitUsage
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIO
	default:
		return ExitGeneral
	}
}
