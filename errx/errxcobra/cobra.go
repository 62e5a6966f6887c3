// Package errxcobra formats errx errors for command line applications built
// on cobra. Errors are printed to stderr, optionally colorized, and mapped
// to exit codes by error type.
package errxcobra

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/btnwtn/form-bureaucracy/errx"
)

// CLIOptions configures CLI error output
type CLIOptions struct {
	// JSON switches output from text to a JSON error object
	JSON bool
	// ShowDetails includes the error's details map in the output
	ShowDetails bool
	// ShowCause prints the unwrapped cause chain
	ShowCause bool
	// UseColors colorizes text output
	UseColors bool
	// ExitOnError calls ExitFunc with the mapped exit code after printing
	ExitOnError bool
	// ExitFunc is the function called to exit the program
	ExitFunc func(int)
}

// DefaultCLIOptions returns the standard options: colored text output,
// details and cause shown, exit on error.
func DefaultCLIOptions() CLIOptions {
	return CLIOptions{
		ShowDetails: true,
		ShowCause:   true,
		UseColors:   true,
		ExitOnError: true,
		ExitFunc:    os.Exit,
	}
}

// CLI handles errors for command line applications
type CLI struct {
	options CLIOptions
}

// NewCLI creates a CLI error handler with the given options
func NewCLI(options CLIOptions) *CLI {
	if options.ExitFunc == nil {
		options.ExitFunc = os.Exit
	}
	return &CLI{options: options}
}

// HandleCommandError wraps a cobra RunE function so that any returned error
// is printed consistently instead of bubbling up to cobra's default output.
func (c *CLI) HandleCommandError(runFn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := runFn(cmd, args); err != nil {
			c.HandleError(err)
		}
		return nil
	}
}

// HandleError prints the error and, when configured, exits with a code
// derived from the error type.
func (c *CLI) HandleError(err error) {
	if err == nil {
		return
	}

	var xerr *errx.Error
	if !errors.As(err, &xerr) {
		xerr = &errx.Error{
			Code:    "UNKNOWN_ERROR",
			Type:    errx.TypeInternal,
			Message: err.Error(),
		}
	}

	if c.options.JSON {
		c.printJSON(xerr)
	} else {
		c.printText(xerr)
	}

	if c.options.ExitOnError {
		c.options.ExitFunc(exitCode(xerr.Type))
	}
}

func exitCode(typ errx.Type) int {
	switch typ {
	case errx.TypeValidation, errx.TypeBadRequest:
		return 2
	case errx.TypeAuthorization:
		return 3
	case errx.TypeNotFound:
		return 4
	case errx.TypeInternal:
		return 5
	default:
		return 1
	}
}

func (c *CLI) printJSON(xerr *errx.Error) {
	body := map[string]any{
		"code":    xerr.Code,
		"type":    xerr.Type,
		"message": xerr.Message,
	}
	if c.options.ShowDetails && len(xerr.Details) > 0 {
		body["details"] = xerr.Details
	}

	out, _ := json.MarshalIndent(map[string]any{"error": body}, "", "  ")
	fmt.Fprintln(os.Stderr, string(out))
}

func (c *CLI) printText(xerr *errx.Error) {
	errorColor := color.New(color.FgHiRed, color.Bold)
	labelColor := color.New(color.FgHiMagenta)
	if !c.options.UseColors {
		errorColor = color.New()
		labelColor = color.New()
		color.NoColor = true
	}

	errorColor.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, xerr.Message)
	labelColor.Fprint(os.Stderr, "  code: ")
	fmt.Fprintln(os.Stderr, string(xerr.Code))
	labelColor.Fprint(os.Stderr, "  type: ")
	fmt.Fprintln(os.Stderr, string(xerr.Type))

	if c.options.ShowDetails && len(xerr.Details) > 0 {
		labelColor.Fprintln(os.Stderr, "  details:")
		for k, v := range xerr.Details {
			fmt.Fprintf(os.Stderr, "    %s: %v\n", k, v)
		}
	}

	if c.options.ShowCause && xerr.Cause != nil {
		labelColor.Fprintln(os.Stderr, "  cause:")
		for cause := xerr.Cause; cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintf(os.Stderr, "    %s\n", cause.Error())
		}
	}
}
