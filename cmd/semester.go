package cmd

import (
	"fmt"
	"strings"

	"gpa-tracker/internal/domain/academic"

	"github.com/spf13/cobra"
)

var semesterCmd = &cobra.Command{
	Use:     "semester",
	Aliases: []string{"semesters"},
	Short:   "Manage semesters",
	Long:    "Semesters are addressed by the number shown in 'semester list', starting at 1.",
}

var semesterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List semesters with their GPA",
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

var semesterAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an empty semester",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		sem, err := svc.AddSemester(cmd.Context(), strings.Join(args, " "))
		if err := reportSave(cmd.ErrOrStderr(), err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added semester %d: %s\n", svc.Current()+1, sem.Name)
		return nil
	},
}

var semesterRenameCmd = &cobra.Command{
	Use:   "rename NUMBER NAME",
	Short: "Rename a semester",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSemesterNumber(args[0])
		if err != nil {
			return err
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		name := strings.Join(args[1:], " ")
		if err := reportSave(cmd.ErrOrStderr(), svc.RenameSemester(cmd.Context(), index, name)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Semester %d renamed to %s\n", index+1, strings.TrimSpace(name))
		return nil
	},
}

var semesterDeleteCmd = &cobra.Command{
	Use:   "delete NUMBER",
	Short: "Delete a semester and its courses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSemesterNumber(args[0])
		if err != nil {
			return err
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := reportSave(cmd.ErrOrStderr(), svc.DeleteSemester(cmd.Context(), index)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Semester %d deleted\n", index+1)
		return nil
	},
}

var semesterShowCmd = &cobra.Command{
	Use:     "show NUMBER",
	Aliases: []string{"select"},
	Short:   "Show the courses of a semester",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseSemesterNumber(args[0])
		if err != nil {
			return err
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := svc.Select(index); err != nil {
			return err
		}
		printSemester(cmd, svc.CurrentSemester())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(semesterCmd)
	semesterCmd.AddCommand(semesterListCmd)
	semesterCmd.AddCommand(semesterAddCmd)
	semesterCmd.AddCommand(semesterRenameCmd)
	semesterCmd.AddCommand(semesterDeleteCmd)
	semesterCmd.AddCommand(semesterShowCmd)
}

func printSemester(cmd *cobra.Command, sem academic.Semester) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s - GPA: %.2f (%s credits)\n", sem.Name, academic.SemesterGPA(sem), formatCredits(academic.SemesterCredits(sem)))
	if len(sem.Courses) == 0 {
		fmt.Fprintln(w, "  No courses yet")
		return
	}
	for _, c := range sem.Courses {
		fmt.Fprintf(w, "  [%d] %s: %s (%s credits, %.1f points)\n", c.ID, c.Name, c.Grade, formatCredits(c.Credits), c.GPAValue)
	}
}
