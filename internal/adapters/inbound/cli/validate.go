package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsource/opsctl/internal/application"
)

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate text against known BIP standards",
		Long:  "Check a transaction or protocol description against the registered BIP detection patterns and print a structured compliance report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewValidateService()
			report := svc.Validate(input)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}

			// Exit code signals compliance so callers can branch without
			// parsing the report body.
			if !report.Compliant {
				return fmt.Errorf("validation failed: no recognized Bitcoin protocol standards found")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Protocol or transaction description to validate")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
