package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/client"
	"github.com/wicaksn/sertika/internal/draft"
	"github.com/wicaksn/sertika/internal/payload"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <draft-id>",
		Short: "Render a draft preview on the backend",
		Long: `Render a draft preview on the backend.

Sends the draft's preview payload and prints the URLs of the rendered
PDF and XML artifacts. Works on incomplete drafts; pending images are
sent as name placeholders.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			session, err := draft.OpenSession(cmd.Context(), store, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "open draft", err)
			}
			doc, err := session.Document()
			if err != nil {
				return WrapExitError(ExitCommandError, "read draft", err)
			}

			c := newClient(rootOpts)
			previewer := client.NewPreviewer(c, client.WithPreviewerLogger(newLogger(rootOpts)))
			defer previewer.Close()

			previewer.Update(payload.Preview(doc))
			previewer.Flush()
			previewer.Wait()

			artifacts, state := previewer.Artifacts()
			if state != client.PreviewReady || artifacts == nil {
				return NewExitError(ExitCommandError, "preview request failed")
			}

			if formatter.Format == "json" {
				return formatter.Success(artifacts)
			}
			fmt.Fprintf(formatter.Writer, "PDF: %s\n", artifacts.PDFURL)
			fmt.Fprintf(formatter.Writer, "XML: %s\n", artifacts.XMLURL)
			return nil
		},
	}
}
