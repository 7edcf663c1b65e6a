package cmd

import (
	"encoding/json"
	"fmt"

	"gpa-tracker/internal/domain/academic"

	"github.com/spf13/cobra"
)

var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan TARGET_GPA ADDITIONAL_CREDITS",
	Short: "Compute the GPA needed to reach a cumulative target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetGPA, targetCredits, err := academic.ParseTarget(args[0], args[1])
		if err != nil {
			return err
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		plan, err := svc.PlanTarget(targetGPA, targetCredits)
		if err != nil {
			return err
		}
		if planJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}
		fmt.Fprintln(cmd.OutOrStdout(), plan.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the full plan as JSON")
}
