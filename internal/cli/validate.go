package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/dcc"
	"github.com/wicaksn/sertika/internal/draft"
	"github.com/wicaksn/sertika/internal/schema"
	"github.com/wicaksn/sertika/internal/validate"
)

// StepIssues groups the findings of one step.
type StepIssues struct {
	Step   string           `json:"step"`
	Issues []validate.Issue `json:"issues"`
}

// ValidationResult holds the validation output for one draft.
type ValidationResult struct {
	Valid bool         `json:"valid"`
	Steps []StepIssues `json:"steps,omitempty"`
}

var allSteps = []validate.Step{
	validate.StepAdministrative,
	validate.StepMeasurement,
	validate.StepStatements,
	validate.StepComment,
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	step := -1

	cmd := &cobra.Command{
		Use:   "validate <draft-id>",
		Short: "Check a draft for completeness",
		Long: `Check a draft for completeness.

Validates every wizard step, or one step with --step. Each finding
names the document location and, for multilingual fields, the missing
language. Exit code 1 when any issue is found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], step, cmd)
		},
	}

	cmd.Flags().IntVar(&step, "step", -1, "validate one step only (0-3)")
	return cmd
}

func runValidate(opts *RootOptions, draftID string, step int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	session, err := draft.OpenSession(cmd.Context(), store, draftID)
	if err != nil {
		return WrapExitError(ExitCommandError, "open draft", err)
	}
	doc, err := session.Document()
	if err != nil {
		return WrapExitError(ExitCommandError, "read draft", err)
	}

	steps := allSteps
	if step >= 0 {
		if step >= len(allSteps) {
			return NewExitError(ExitCommandError, fmt.Sprintf("invalid step %d: must be 0-%d", step, len(allSteps)-1))
		}
		steps = allSteps[step : step+1]
	}

	result := validateSteps(doc, steps, formatter)
	if result.Valid {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintln(formatter.Writer, "✓ Draft is complete")
		return nil
	}

	return outputValidationIssues(formatter, opts.Lang, result)
}

func validateSteps(doc *dcc.Document, steps []validate.Step, formatter *OutputFormatter) ValidationResult {
	result := ValidationResult{Valid: true}
	for _, s := range steps {
		formatter.VerboseLog("validating step: %s", s)
		issues := validate.ValidateStep(s, doc)
		if len(issues) == 0 {
			continue
		}
		result.Valid = false
		result.Steps = append(result.Steps, StepIssues{Step: s.String(), Issues: issues})
	}
	return result
}

func outputValidationIssues(formatter *OutputFormatter, lang string, result ValidationResult) error {
	total := 0
	for _, s := range result.Steps {
		total += len(s.Issues)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", total))
	}

	fmt.Fprintln(formatter.Writer, "✗ Draft is incomplete")
	fmt.Fprintln(formatter.Writer)
	for _, s := range result.Steps {
		fmt.Fprintf(formatter.Writer, "%s:\n", s.Step)
		for _, issue := range s.Issues {
			fmt.Fprintf(formatter.Writer, "  %s %s: %s\n", issue.Code, issue.Path(), validate.Render(issue, lang))
		}
		fmt.Fprintln(formatter.Writer)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", total))
}

// vetShape runs the structural schema check commands use before talking
// to the backend.
func vetShape(doc *dcc.Document) error {
	if errs := schema.Vet(doc); len(errs) > 0 {
		return WrapExitError(ExitCommandError, "draft has invalid shape", errs[0])
	}
	return nil
}
