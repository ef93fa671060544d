package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/enumset/internal/enumdef"
)

// ListResult holds the list command's structured output.
type ListResult struct {
	Package string               `json:"package"`
	Enums   []enumdef.Definition `json:"enums"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list <defs-file>",
		Short:         "List the enums in a definitions file",
		Long:          "List each enum in a definitions file with its labels in declaration order.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	f, loadErr := LoadDefinitions(path)
	if loadErr != nil {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, loadErr.Message, loadErr)
	}

	if opts.Format == "json" {
		return formatter.Success(ListResult{Package: f.Package, Enums: f.Enums})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "package %s\n", f.Package)
	for _, def := range f.Enums {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d): %s\n", def.Name, len(def.Labels), strings.Join(def.Labels, ", "))
	}
	return nil
}
