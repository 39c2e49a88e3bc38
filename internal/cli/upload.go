package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUploadCommand creates the upload command.
func NewUploadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to the backend",
		Long: `Upload a file to the backend.

Prints the filename and MIME type the backend registered for it. Use
these when attaching the file to a draft's comment section.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			c := newClient(rootOpts)
			result, err := c.UploadFile(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "upload", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(result)
			}
			fmt.Fprintf(formatter.Writer, "%s (%s)\n", result.Filename, result.MimeType)
			return nil
		},
	}
}
