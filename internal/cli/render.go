package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	renderStyle string
	renderIn    string
	renderOut   string
	renderStore bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderStyle, "style", "s", "classic", "document style")
	renderCmd.Flags().StringVarP(&renderIn, "in", "i", "-", "invoice JSON file (- for stdin)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output HTML file (default stdout)")
	renderCmd.Flags().BoolVar(&renderStore, "store", false, "archive the document in configured storage")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an invoice document",
	Long:  "Render an invoice document to HTML with the chosen style. With --store the result is also archived and its URL printed to stderr.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := readInvoice(cmd, renderIn)
		if err != nil {
			return err
		}
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		doc, err := a.Renderer.RenderDocument(cmd.Context(), inv, renderStyle)
		if err != nil {
			return err
		}
		if doc.Fallback {
			warnFallback(cmd, doc.Requested, string(doc.Style))
		}

		if renderStore {
			obj, err := doc.Archive(cmd.Context(), a.Storage, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "stored %s\n", obj.URL)
		}
		return writeOutput(cmd, renderOut, []byte(doc.HTML))
	},
}
