package cmd

import (
	"fmt"

	"gpa-tracker/internal/infrastructure/share"
	interfaces "gpa-tracker/internal/interfaces/infrastructure"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the record as a plain-text summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		var sharer interfaces.Sharer = share.NewWriterSharer(cmd.OutOrStdout())
		if exportOutput != "" {
			sharer = share.NewFileSharer(exportOutput)
		}
		if _, err := svc.Export(cmd.Context(), sharer); err != nil {
			return err
		}
		if exportOutput != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the summary to a file instead of stdout")
}
