// Package export handles the export command
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/activity-export/cmd/common"
	"fjacquet/activity-export/cmd/root"
	"fjacquet/activity-export/internal/exporter"
	"fjacquet/activity-export/internal/logging"
)

var (
	format    string
	sinceLast bool
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export normalized activity as CSV, OFX or QFX",
	Long: `Normalize an activity file and write one export per account.

Without --output files go to export.output_dir, named {account}-{YYYYMMDD}.{ext}.
--output may name a directory, a single file with the format's extension,
gs://bucket/prefix or azblob://container/prefix.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: "+fmt.Sprint(exporter.FormatNames())+" (default: export.default_format)")
	Cmd.Flags().BoolVar(&sinceLast, "since-last", false, "Skip transactions already covered by the previous export of each account")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	name := format
	if name == "" {
		name = c.GetConfig().Export.DefaultFormat
	}
	f, err := exporter.ParseFormat(name)
	if err != nil {
		return err
	}

	root.Log.Info("Export command called",
		logging.F(logging.FieldInputFile, root.SharedFlags.Input),
		logging.F(logging.FieldFormat, f.Name()))

	results, err := common.RunExport(cmd.Context(), c, common.ExportRequest{
		Input:     root.SharedFlags.Input,
		Output:    root.SharedFlags.Output,
		Account:   root.SharedFlags.Account,
		Format:    f,
		SinceLast: sinceLast,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Location)
	}
	root.Log.Info("Export completed successfully!", logging.F(logging.FieldCount, len(results)))
	return nil
}
