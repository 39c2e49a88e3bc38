package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/client"
	"github.com/wicaksn/sertika/internal/dcc"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <certificate-id> <approve|reject>",
		Short: "Approve or reject a submitted certificate",
		Long: `Approve or reject a submitted certificate.

Review is a director action: the cached token's role must carry the
"Direktur" prefix.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			ctx := cmd.Context()

			var status dcc.CertificateStatus
			switch args[1] {
			case "approve":
				status = dcc.StatusApproved
			case "reject":
				status = dcc.StatusRejected
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid status %q: must be approve or reject", args[1]))
			}

			c := newClient(rootOpts)
			if err := c.Authorize(ctx, ""); err != nil {
				return WrapExitError(ExitCommandError, "not authorized: run \"sertika login\"", err)
			}
			if err := requireDirector(); err != nil {
				return err
			}

			if err := c.UpdateStatus(ctx, args[0], status); err != nil {
				return WrapExitError(ExitCommandError, "update status", err)
			}
			if formatter.Format == "json" {
				return formatter.Success(map[string]string{"id": args[0], "status": string(status)})
			}
			return formatter.Success(fmt.Sprintf("Certificate %s %s", args[0], status))
		},
	}
}

// requireDirector enforces the review gate on the cached token. Any
// role starting with "Direktur" qualifies, matching how signer flags
// are derived for persons.
func requireDirector() error {
	token, err := client.LoadToken()
	if err != nil || token == "" {
		return NewExitError(ExitCommandError, "not logged in")
	}
	claims, err := client.DecodeClaims(token)
	if err != nil {
		return WrapExitError(ExitCommandError, "decode token", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(claims.Role), "Direktur") {
		return NewExitError(ExitFailure, fmt.Sprintf("role %q may not review certificates", claims.Role))
	}
	return nil
}
