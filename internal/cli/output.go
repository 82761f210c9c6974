package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"schema-bridge/diagnostic"
)

// printError writes err in red. Structured decode and conversion errors get
// their path on a separate line.
func printError(w io.Writer, err error) {
	errorColor := color.New(color.FgRed, color.Bold)
	errorColor.Fprintf(w, "Error: %v\n", err)

	var de *diagnostic.Error
	if errors.As(err, &de) && len(de.Path) > 0 {
		color.New(color.FgRed).Fprintf(w, "  at %s\n", diagnostic.FormatPath(de.Path))
	}
}

// printDiagnostics writes every finding, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	errorColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	infoColor := color.New(color.FgCyan)

	for _, d := range diags.Errors {
		errorColor.Fprintf(w, "error: %s\n", d.String())
	}

	for _, d := range diags.Warnings {
		warnColor.Fprintf(w, "warning: %s\n", d.String())
	}

	for _, d := range diags.Infos {
		infoColor.Fprintf(w, "info: %s\n", d.String())
	}
}

// readInput reads the named file, or standard input for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// writeOutput writes data to the named file, or to the command output when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if !strings.HasSuffix(string(data), "\n") {
		data = append(data, '\n')
	}

	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
