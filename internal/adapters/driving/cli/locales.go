package cli

import (
	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List locales present in the content tree",
	Long: `Prints every locale observed on disk across all content types
(base codes only), including the default locale. This is the locale
set the orphan-deletion pass inspects on the CMS side.`,
	RunE: runLocales,
}

func init() {
	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	inspector, err := newInspector(cfg)
	if err != nil {
		return err
	}

	for _, locale := range inspector.LocalesPresent() {
		marker := ""
		if locale == cfg.DefaultLocale() {
			marker = " (default)"
		}
		cmd.Printf("%s%s\n", locale, marker)
	}
	return nil
}
