// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/recipe-book/internal/config"
	"fjacquet/recipe-book/internal/report"
	"fjacquet/recipe-book/internal/validation"

	"github.com/spf13/cobra"
)

// ResolveFormat returns the output format requested on the command line, falling
// back to the configured default.
func ResolveFormat(flagValue string, cfg *config.Config) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" && cfg != nil {
		format = cfg.Export.Format
	}
	if format == "" {
		format = report.FormatText
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// WriteOutput renders to the command's standard output, or to outputFile when set.
func WriteOutput(cmd *cobra.Command, reporter *report.Generator, outputFile string, render func(io.Writer) error) error {
	if outputFile == "" {
		return render(cmd.OutOrStdout())
	}
	if err := reporter.WriteFile(outputFile, render); err != nil {
		return err
	}
	Printf(cmd, "Wrote %s\n", outputFile)
	return nil
}

// Printf writes a message to the command's standard output.
func Printf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// Warnf writes a warning to the command's standard error.
func Warnf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format, args...)
}

// NameFromArgs joins positional arguments so multi-word names can be passed
// without quoting.
func NameFromArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
