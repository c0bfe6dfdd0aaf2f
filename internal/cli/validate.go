package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/bigcast/internal/harness"
)

// ValidationResult holds per-file validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// FileValidation reports one scenario file's validation outcome.
type FileValidation struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Validate scenario files without running them",
		Long: `Validate coercion scenario files against the scenario schema
without executing any checks. Faster than run for development feedback.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateCmd(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidateCmd(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result := ValidationResult{Valid: true}
	for _, path := range paths {
		formatter.VerboseLog("validating %s", path)
		fv := FileValidation{Path: path, Valid: true}
		if err := harness.ValidateFile(path); err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			result.Valid = false
		}
		result.Files = append(result.Files, fv)
	}

	if formatter.IsJSON() {
		if err := formatter.JSON(result); err != nil {
			return err
		}
	} else {
		for _, fv := range result.Files {
			if fv.Valid {
				formatter.Textf("ok   %s\n", fv.Path)
			} else {
				formatter.Textf("FAIL %s\n  %s\n", fv.Path, fv.Error)
			}
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "validation failed")
	}
	return nil
}
