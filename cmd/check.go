package cmd

import (
	"encoding/json"
	"fmt"

	"static-server/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the document root",
	Long:  `Verifies that the document root is an accessible directory and reports whether the landing page served for "/" and "/test" exists.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := cfg.Server.Validate(); err != nil {
			return fmt.Errorf("invalid server configuration: %w", err)
		}

		report, err := static.NewService(cfg.Server.Root, logg).Check()
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		if !report.LandingFound {
			logg.Warn("Landing page missing, requests for / and /test will answer 404",
				zap.String("root", report.Root),
				zap.String("landing_page", report.LandingPage))
			return nil
		}
		logg.Info("Document root is ready",
			zap.String("root", report.Root),
			zap.String("landing_page", report.LandingPage))
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
	RootCmd.AddCommand(checkCmd)
}
