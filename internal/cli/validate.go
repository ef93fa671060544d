package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/enumset/internal/enumdef"
)

// ValidationResult is the success payload of the validate command.
// Failures are reported through the error envelope instead, with the
// individual ValidationErrors as details.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <defs-file>",
		Short: "Validate an enum definitions file",
		Long: `Validate an enum definitions file (YAML or CUE) without generating code.

Reports every schema violation found: missing or unexported enum names,
empty or duplicate labels, duplicate enum names, invalid package name.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	f, loadErr := LoadDefinitions(path)
	if loadErr != nil {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, loadErr.Message, loadErr)
	}

	formatter.VerboseLog("Loaded %d enum definition(s) from %s", len(f.Enums), path)

	errs := enumdef.Validate(f)
	if len(errs) > 0 {
		msg := fmt.Sprintf("%d validation error(s)", len(errs))
		if opts.Format == "json" {
			// The envelope status must agree with the exit code.
			_ = formatter.Error(errs[0].Code, msg, errs)
		} else {
			for _, e := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), e.Error())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", msg)
		}
		return NewExitError(ExitFailure, msg)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ All definitions valid")
	return nil
}
