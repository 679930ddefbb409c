package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/ecarehq/ecare_backend/cmd/http"
	systemcmd "github.com/ecarehq/ecare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "ecare",
	Short: "eCare appointment scheduling backend for hospitals and clinics.",
	Long: `eCare is the scheduling backend for hospitals and clinics.
It manages appointment booking, doctor leave calendars, prescriptions,
lab test worklists and patient reviews behind a single HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
