package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	emailStyle string
	emailIn    string
	emailSend  bool
	emailTo    string
)

func init() {
	rootCmd.AddCommand(emailCmd)

	emailCmd.Flags().StringVarP(&emailStyle, "style", "s", "plain", "email style")
	emailCmd.Flags().StringVarP(&emailIn, "in", "i", "-", "invoice JSON file (- for stdin)")
	emailCmd.Flags().BoolVar(&emailSend, "send", false, "send the email instead of printing it")
	emailCmd.Flags().StringVar(&emailTo, "to", "", "recipient (default client email)")
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Render or send an invoice email",
	Long:  "Render an invoice email and print it as JSON, or send it with --send through Postmark or the development mailbox.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := readInvoice(cmd, emailIn)
		if err != nil {
			return err
		}
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		if !emailSend {
			msg, err := a.Renderer.RenderEmail(cmd.Context(), inv, emailStyle)
			if err != nil {
				return err
			}
			if msg.Fallback {
				warnFallback(cmd, msg.Requested, string(msg.Style))
			}
			return writeJSON(cmd.OutOrStdout(), msg)
		}

		msg, err := a.Mailer.Send(cmd.Context(), inv, emailStyle, emailTo)
		if err != nil {
			return err
		}
		if msg.Fallback {
			warnFallback(cmd, msg.Requested, string(msg.Style))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent invoice %s to %s\n", msg.Number, msg.To)
		return nil
	},
}
