package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/client"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate and cache the access token",
		Long: `Authenticate against the backend and cache the access token.

Reads the password from --password or, when absent, from the first
line of stdin. The token is stored in the user config directory and
used by preview, submit, and status.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return WrapExitError(ExitCommandError, "read password", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return NewExitError(ExitCommandError, "password is empty")
			}

			c := newClient(rootOpts)
			token, err := c.Login(cmd.Context(), args[0], password)
			if err != nil {
				return WrapExitError(ExitCommandError, "login", err)
			}
			if err := client.SaveToken(token); err != nil {
				return WrapExitError(ExitCommandError, "cache token", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(map[string]string{"username": args[0]})
			}
			return formatter.Success(fmt.Sprintf("Logged in as %s", args[0]))
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (read from stdin when omitted)")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Drop the cached access token",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			if err := client.ClearToken(); err != nil {
				return WrapExitError(ExitCommandError, "clear token", err)
			}
			if formatter.Format == "json" {
				return formatter.Success(map[string]bool{"logged_out": true})
			}
			return formatter.Success("Logged out")
		},
	}
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var password string
	var fullName string

	cmd := &cobra.Command{
		Use:           "register <email>",
		Short:         "Create a backend account",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return WrapExitError(ExitCommandError, "read password", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return NewExitError(ExitCommandError, "password is empty")
			}

			c := newClient(rootOpts)
			if err := c.Register(cmd.Context(), args[0], password, fullName); err != nil {
				return WrapExitError(ExitCommandError, "register", err)
			}
			if formatter.Format == "json" {
				return formatter.Success(map[string]string{"email": args[0]})
			}
			return formatter.Success(fmt.Sprintf("Registered %s", args[0]))
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (read from stdin when omitted)")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	return cmd
}

// WhoamiResult describes the cached identity.
type WhoamiResult struct {
	Subject  string `json:"subject"`
	Role     string `json:"role"`
	Expired  bool   `json:"expired"`
	Verified bool   `json:"verified"`
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached identity",
		Long: `Show the cached identity.

Decodes the cached token locally and, when the backend is reachable,
verifies it. An unreachable backend is reported, not treated as a
failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			token, err := client.LoadToken()
			if err != nil {
				return WrapExitError(ExitCommandError, "load token", err)
			}
			if token == "" {
				return NewExitError(ExitCommandError, "not logged in")
			}
			claims, err := client.DecodeClaims(token)
			if err != nil {
				return WrapExitError(ExitCommandError, "decode token", err)
			}

			result := WhoamiResult{
				Subject: claims.Subject,
				Role:    claims.Role,
				Expired: claims.Expired(time.Now()),
			}
			c := newClient(rootOpts)
			if err := c.VerifyToken(cmd.Context()); err == nil {
				result.Verified = true
			} else if apiErr, ok := client.IsAPIError(err); ok {
				return WrapExitError(ExitCommandError, "token rejected", apiErr)
			} else {
				formatter.VerboseLog("backend unreachable, token not verified: %v", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(result)
			}
			fmt.Fprintf(formatter.Writer, "Subject: %s\n", result.Subject)
			fmt.Fprintf(formatter.Writer, "Role:    %s\n", result.Role)
			if result.Expired {
				fmt.Fprintln(formatter.Writer, "Token expired")
			}
			if !result.Verified {
				fmt.Fprintln(formatter.Writer, "Not verified against backend")
			}
			return nil
		},
	}
}
