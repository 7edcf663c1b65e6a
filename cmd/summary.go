package cmd

import (
	"fmt"
	"io"

	"gpa-tracker/internal/domain/academic"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show semester and cumulative GPA",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		printSummary(cmd.OutOrStdout(), svc.Summary(), svc.GradingSystem())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func printSummary(w io.Writer, sum academic.Summary, gs academic.GradingSystem) {
	fmt.Fprintf(w, "Grading system: %s\n", gs.Name)
	fmt.Fprintf(w, "Cumulative GPA: %.2f\n", sum.CumulativeGPA)
	fmt.Fprintf(w, "Total credits:  %.1f\n\n", sum.TotalCredits)
	for _, s := range sum.Semesters {
		fmt.Fprintf(w, "%2d. %-20s GPA %.2f  %5s credits  %d courses\n",
			s.Index+1, s.Name, s.GPA, formatCredits(s.Credits), s.Courses)
	}
}
