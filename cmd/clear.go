package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearConfirmed bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every semester and course",
	Long:  "Reset the record to a single empty semester. The grading system is kept. This cannot be undone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearConfirmed {
			return errors.New("refusing to clear all data without --yes")
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		sem, err := svc.ClearAll(cmd.Context())
		if err := reportSave(cmd.ErrOrStderr(), err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "All data cleared, starting over with %s\n", sem.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearConfirmed, "yes", "y", false, "confirm clearing all data")
}
