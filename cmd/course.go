package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var courseSemester int

var courseCmd = &cobra.Command{
	Use:     "course",
	Aliases: []string{"courses"},
	Short:   "Manage courses",
}

var courseAddCmd = &cobra.Command{
	Use:   "add NAME GRADE CREDITS",
	Short: "Add a graded course",
	Long: `Add a course graded with the active grading system. The course goes into
the semester given by --semester, or the latest semester when omitted.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		index := len(svc.Record().Semesters) - 1
		if courseSemester > 0 {
			index = courseSemester - 1
		}

		course, err := svc.AddCourse(cmd.Context(), index, args[0], args[1], args[2])
		if err := reportSave(cmd.ErrOrStderr(), err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added [%d] %s: %s (%s credits)\n",
			course.ID, course.Name, course.Grade, formatCredits(course.Credits))
		return nil
	},
}

var courseRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a course by the id shown in 'semester show'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id %q", args[0])
		}
		svc, kv, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		for i, sem := range svc.Record().Semesters {
			for _, c := range sem.Courses {
				if c.ID != id {
					continue
				}
				if _, err := svc.RemoveCourse(cmd.Context(), i, id); reportSave(cmd.ErrOrStderr(), err) != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", c.Name, sem.Name)
				return nil
			}
		}
		return fmt.Errorf("course %d not found", id)
	},
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseRemoveCmd)

	courseAddCmd.Flags().IntVarP(&courseSemester, "semester", "s", 0, "semester number (default latest)")
}
