package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the CMS API token",
	Long: `Prompts for the CMS management API token without echoing it and
stores it in the config file. The LOCALSYNC_CMS_TOKEN environment
variable, when set, always takes precedence over the stored token.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadConfig()
	if err != nil {
		return err
	}

	cmd.Print("CMS API token: ")
	token, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if strings.TrimSpace(string(token)) == "" {
		return fmt.Errorf("empty token")
	}

	cfg.CMS.Token = strings.TrimSpace(string(token))
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	cmd.Printf("Token stored in %s\n", store.Path())
	return nil
}
