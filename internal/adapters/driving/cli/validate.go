package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check frontmatter of all on-disk content",
	Long: `Scans every content type and validates frontmatter against the
registered schemas without contacting the CMS. Intended as a CI
pre-flight: the command exits non-zero when any file is invalid.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	inspector, err := newInspector(cfg)
	if err != nil {
		return err
	}

	diagnostics, err := inspector.ValidateAll()
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if len(diagnostics) == 0 {
		cmd.Println("All content files are valid.")
		return nil
	}

	for _, d := range diagnostics {
		cmd.Printf("%s (%s/%s):\n", d.Path, d.Locale, d.Slug)
		for _, msg := range d.Errors {
			cmd.Printf("  - %s\n", msg)
		}
	}
	return fmt.Errorf("%d invalid content files", len(diagnostics))
}
