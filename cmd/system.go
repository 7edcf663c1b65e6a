package cmd

import (
	"fmt"
	"strings"

	"gpa-tracker/internal/domain/academic"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show or change the grading system",
}

var systemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available grading systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		active := svc.GradingSystem().ID
		for _, gs := range academic.GradingSystems() {
			marker := " "
			if gs.ID == active {
				marker = "*"
			}
			grades := make([]string, len(gs.Grades))
			for i, g := range gs.Grades {
				grades[i] = fmt.Sprintf("%s=%.1f", g.Label, g.Points)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n    %s\n", marker, gs.ID, gs.Name, strings.Join(grades, " "))
		}
		return nil
	},
}

var systemSetCmd = &cobra.Command{
	Use:   "set SYSTEM",
	Short: "Select the grading system for new courses",
	Long:  "Select US, ECTS, UK or Percentage. Existing courses keep their grade points.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		gs, err := svc.SetGradingSystem(cmd.Context(), args[0])
		if err := reportSave(cmd.ErrOrStderr(), err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Grading system set to %s\n", gs.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(systemCmd)
	systemCmd.AddCommand(systemListCmd)
	systemCmd.AddCommand(systemSetCmd)
}
