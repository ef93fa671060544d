package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/enumset/internal/enumdef"
	"github.com/roach88/enumset/internal/gen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Output  string // output file path; "-" or empty writes to stdout
	Package string // override the package name from the definitions file
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <defs-file>",
		Short: "Generate Go source from an enum definitions file",
		Long: `Generate a Go source file from an enum definitions file (YAML or CUE).

For each definition the output declares a package-level enum built with
enum.MustOf plus one string constant per label. Definitions are validated
first; generation refuses invalid input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "override the package name from the definitions file")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	f, loadErr := LoadDefinitions(path)
	if loadErr != nil {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, loadErr.Message, loadErr)
	}
	if opts.Package != "" {
		f.Package = opts.Package
	}

	if errs := enumdef.Validate(f); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
		}
		msg := fmt.Sprintf("%d validation error(s)", len(errs))
		_ = formatter.Error(errs[0].Code, msg, errs)
		return NewExitError(ExitFailure, msg)
	}

	formatter.VerboseLog("Generating %d enum(s) into package %s", len(f.Enums), f.Package)

	src, err := gen.Generate(f)
	if err != nil {
		_ = formatter.Error(ErrCodeGenerate, err.Error(), nil)
		return WrapExitError(ExitFailure, "code generation failed", err)
	}

	if opts.Output == "" || opts.Output == "-" {
		_, err = cmd.OutOrStdout().Write(src)
		if err != nil {
			return WrapExitError(ExitCommandError, "writing generated source", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, src, 0644); err != nil {
		_ = formatter.Error(ErrCodeWrite, err.Error(), nil)
		return WrapExitError(ExitCommandError, "writing generated source", err)
	}
	formatter.VerboseLog("Wrote %s", opts.Output)
	return nil
}
