package exitcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/shellhook"
)

// Every failure exits 1; the Code string is what scripts should branch on.
const (
	Success      = 0
	GeneralError = 1
)

// ExitError wraps an error with an exit code and machine-readable code string.
type ExitError struct {
	Err      error
	ExitCode int
	Code     string
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// New creates an ExitError with the given code and message.
func New(code string, msg string) *ExitError {
	return &ExitError{
		Err:      errors.New(msg),
		ExitCode: GeneralError,
		Code:     code,
	}
}

// Wrap creates an ExitError wrapping an existing error.
func Wrap(code string, err error) *ExitError {
	return &ExitError{
		Err:      err,
		ExitCode: GeneralError,
		Code:     code,
	}
}

// Classify returns (code, exitCode) for err. An ExitError anywhere in the
// chain wins; otherwise known domain errors are matched, then usage messages.
func Classify(err error) (string, int) {
	var exitErr *ExitError
	var parseErr *mcpstore.ParseError
	var valErr *mcpstore.ValidationError
	var kindErr *claude.UnknownKindWarning

	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code, exitErr.ExitCode
	case errors.Is(err, mcpstore.ErrNotFound):
		return "not_found", GeneralError
	case errors.As(err, &parseErr):
		return "parse_error", GeneralError
	case errors.As(err, &valErr):
		return "validation_error", GeneralError
	case errors.Is(err, mcpstore.ErrInvalidImport):
		return "invalid_import", GeneralError
	case errors.Is(err, mcpstore.ErrImportMissing):
		return "import_not_found", GeneralError
	case errors.Is(err, shellhook.ErrUnsupportedShell):
		return "unsupported_shell", GeneralError
	case errors.As(err, &kindErr):
		return "unknown_type", GeneralError
	case IsUsage(err):
		return "usage", GeneralError
	default:
		return "error", GeneralError
	}
}

// IsUsage reports whether err came from argument parsing rather than a command.
func IsUsage(err error) bool {
	msg := err.Error()
	for _, p := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "accepts ", "requires at least", "flag needs an argument", "invalid argument"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// Errorf is shorthand for New(code, fmt.Sprintf(...)).
func Errorf(code, format string, args ...any) *ExitError {
	return New(code, fmt.Sprintf(format, args...))
}
