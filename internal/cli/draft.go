package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/draft"
	"github.com/wicaksn/sertika/internal/wizard"
)

// NewDraftCommand creates the draft command group.
func NewDraftCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage certificate drafts",
	}
	cmd.AddCommand(newDraftNewCommand(rootOpts))
	cmd.AddCommand(newDraftListCommand(rootOpts))
	cmd.AddCommand(newDraftShowCommand(rootOpts))
	cmd.AddCommand(newDraftSetCommand(rootOpts))
	cmd.AddCommand(newDraftDiscardCommand(rootOpts))
	return cmd
}

func newDraftNewCommand(rootOpts *RootOptions) *cobra.Command {
	var template string
	var id string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new draft from a template",
		Long: fmt.Sprintf(`Start a new draft from a template.

Available templates: %s.`, strings.Join(dcc.TemplateNames(), ", ")),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			if id == "" {
				id = uuid.NewString()
			}
			session, err := draft.NewSession(cmd.Context(), store, id)
			if err != nil {
				return WrapExitError(ExitCommandError, "create draft", err)
			}
			if err := session.Dispatch(cmd.Context(), wizard.Init{Template: template}); err != nil {
				// Remove the empty draft row so a bad template name
				// leaves nothing behind.
				_ = store.DeleteDraft(cmd.Context(), id)
				return WrapExitError(ExitCommandError, "initialize draft", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(map[string]string{"id": id, "template": template})
			}
			return formatter.Success(fmt.Sprintf("Created draft %s from template %q", id, template))
		},
	}

	cmd.Flags().StringVar(&template, "template", "blank", "document template")
	cmd.Flags().StringVar(&id, "id", "", "draft id (default random uuid)")
	return cmd
}

func newDraftListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List drafts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			ids, err := store.Drafts(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "list drafts", err)
			}
			if formatter.Format == "json" {
				if ids == nil {
					ids = []string{}
				}
				return formatter.Success(map[string]any{"drafts": ids})
			}
			if len(ids) == 0 {
				return formatter.Success("No drafts")
			}
			return formatter.Success(strings.Join(ids, "\n"))
		},
	}
}

func newDraftShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <draft-id>",
		Short:         "Print a draft document",
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
			formatter.VerboseLog("draft %s at seq %d", args[0], session.Seq())
			return formatter.Success(doc)
		},
	}
}

func newDraftSetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <draft-id> <section> <file.yaml>",
		Short: "Apply a section edit to a draft",
		Long: fmt.Sprintf(`Apply a section edit to a draft from a YAML file.

Patch sections (administrative, timeline, persons) merge field by
field: omitted fields keep their current value. List sections replace
the whole list.

Sections: %s.`, strings.Join(sectionNames, ", ")),
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			action, err := LoadSectionFile(args[1], args[2])
			if err != nil {
				return WrapExitError(ExitCommandError, "load section", err)
			}
			session, err := draft.OpenSession(cmd.Context(), store, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "open draft", err)
			}
			if err := session.Dispatch(cmd.Context(), action); err != nil {
				return WrapExitError(ExitCommandError, "apply edit", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(map[string]any{
					"id":      args[0],
					"section": args[1],
					"seq":     session.Seq(),
				})
			}
			return formatter.Success(fmt.Sprintf("Applied %s to draft %s (seq %d)", args[1], args[0], session.Seq()))
		},
	}
	return cmd
}

func newDraftDiscardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "discard <draft-id>",
		Short:         "Delete a draft and its edit history",
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

			if err := store.DeleteDraft(cmd.Context(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "discard draft", err)
			}
			if formatter.Format == "json" {
				return formatter.Success(map[string]string{"id": args[0]})
			}
			return formatter.Success(fmt.Sprintf("Discarded draft %s", args[0]))
		},
	}
}
