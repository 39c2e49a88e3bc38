package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/client"
	"github.com/wicaksn/sertika/internal/draft"
	"github.com/wicaksn/sertika/internal/i18n"
	"github.com/wicaksn/sertika/internal/payload"
)

// NewSubmitCommand creates the submit command.
func NewSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "submit <draft-id>",
		Short: "Submit a draft as a final certificate",
		Long: `Submit a draft as a final certificate.

Validates every step first and refuses to submit an incomplete draft
unless --force is given. Requires a cached login token; run
"sertika login" first. Pending images are uploaded alongside the
payload.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(rootOpts, args[0], output, force, cmd)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the returned document to a file")
	cmd.Flags().BoolVar(&force, "force", false, "submit even when validation finds issues")
	return cmd
}

func runSubmit(opts *RootOptions, draftID, output string, force bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	ctx := cmd.Context()

	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := draft.OpenSession(ctx, store, draftID)
	if err != nil {
		return WrapExitError(ExitCommandError, "open draft", err)
	}
	doc, err := session.Document()
	if err != nil {
		return WrapExitError(ExitCommandError, "read draft", err)
	}

	result := validateSteps(doc, allSteps, formatter)
	if !result.Valid {
		if !force {
			return outputValidationIssues(formatter, opts.Lang, result)
		}
		formatter.VerboseLog("submitting despite validation issues (--force)")
	}
	if err := vetShape(doc); err != nil {
		return err
	}

	c := newClient(opts)
	if err := c.Authorize(ctx, ""); err != nil {
		return WrapExitError(ExitCommandError, "not authorized: run \"sertika login\"", err)
	}

	sub := payload.Submit(doc)
	progress := func(m client.Milestone) {
		if formatter.Format == "json" {
			return
		}
		fmt.Fprintf(formatter.Writer, "[%3d%%] %s\n", m.Percent, i18n.T(m.Key, opts.Lang))
	}

	created, err := c.CreateCertificate(ctx, sub, progress)
	if err != nil {
		return WrapExitError(ExitCommandError, "submit certificate", err)
	}

	if created.DownloadLink != "" {
		if formatter.Format == "json" {
			return formatter.Success(map[string]string{"download_link": created.DownloadLink})
		}
		return formatter.Success(fmt.Sprintf("Certificate ready: %s", created.DownloadLink))
	}

	// The backend returned the document inline.
	if output == "" {
		output = draftID + ".pdf"
	}
	if err := os.WriteFile(output, created.Document, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "write certificate", err)
	}
	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"file": output, "content_type": created.ContentType})
	}
	return formatter.Success(fmt.Sprintf("Certificate written to %s", output))
}
