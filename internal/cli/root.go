// Package cli implements the invoicekit command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/invoicekit/internal/app"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           "invoicekit",
	Short:         "Render and send localized invoices",
	Long:          "Render invoice documents and emails with locale-aware formatting, archive them and serve the rendering API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load environment from file (repeatable, default .env)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadApp builds the application from the environment. Logs go to stderr
// so command output stays clean.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := app.LoadConfig(envFiles...)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cfg, app.WithLogOutput(cmd.ErrOrStderr()))
}

// readInvoice decodes invoice JSON from path, or stdin when path is "-".
func readInvoice(cmd *cobra.Command, path string) (*invoice.Invoice, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open invoice: %w", err)
		}
		defer f.Close()
		r = f
	}

	var inv invoice.Invoice
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode invoice: %w", err)
	}
	return &inv, nil
}

// writeOutput writes data to path, or to the command output when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func warnFallback(cmd *cobra.Command, requested, used string) {
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: style %q not found, using %q\n", requested, used)
}
