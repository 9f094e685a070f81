// Package normalize handles the normalize command
package normalize

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fjacquet/activity-export/cmd/common"
	"fjacquet/activity-export/cmd/root"
	"fjacquet/activity-export/internal/logging"
	"fjacquet/activity-export/internal/models"
)

// Cmd represents the normalize command
var Cmd = &cobra.Command{
	Use:   "normalize",
	Short: "Print normalized transactions as YAML",
	Long:  `Normalize an activity file and print the resulting transactions as YAML, or write them to --output.`,
	RunE:  normalizeFunc,
}

func normalizeFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	txs, err := common.NormalizeInput(c, root.SharedFlags.Input, root.SharedFlags.Account)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(common.Views(txs)); err != nil {
		return fmt.Errorf("error encoding transactions: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error encoding transactions: %w", err)
	}

	if out := root.SharedFlags.Output; out != "" {
		if err := os.WriteFile(out, buf.Bytes(), models.PermissionReportFile); err != nil {
			return fmt.Errorf("error writing %s: %w", out, err)
		}
		root.Log.Info("Wrote normalized transactions",
			logging.F(logging.FieldOutputFile, out),
			logging.F(logging.FieldCount, len(txs)))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
