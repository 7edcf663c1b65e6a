package academic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxGradePoints is the highest grade-point value any grading system assigns
const MaxGradePoints = 4.0

// SemesterGPA is the credit-weighted average of the semester's grade points,
// or 0 for a semester without courses. No rounding is applied.
func SemesterGPA(s Semester) float64 {
	if len(s.Courses) == 0 {
		return 0
	}
	var points, credits float64
	for _, c := range s.Courses {
		points += c.GPAValue * c.Credits
		credits += c.Credits
	}
	if credits <= 0 {
		return 0
	}
	return points / credits
}

// SemesterCredits sums the credits of every course in the semester
func SemesterCredits(s Semester) float64 {
	var credits float64
	for _, c := range s.Courses {
		credits += c.Credits
	}
	return credits
}

// TotalCredits sums credits over every course of every semester
func TotalCredits(r *Record) float64 {
	var total float64
	for _, s := range r.Semesters {
		total += SemesterCredits(s)
	}
	return total
}

// CumulativeGPA weights each semester GPA by that semester's credits, which is
// the same as a direct credit-weighted average over all courses.
func CumulativeGPA(r *Record) float64 {
	total := TotalCredits(r)
	if total == 0 {
		return 0
	}
	var points float64
	for _, s := range r.Semesters {
		points += SemesterGPA(s) * SemesterCredits(s)
	}
	return points / total
}

// RequiredFutureGPA returns the average needed over targetCredits additional
// credits to finish at targetGPA. targetCredits must be positive.
func RequiredFutureGPA(currentGPA, currentCredits, targetGPA, targetCredits float64) float64 {
	return ((targetGPA * (currentCredits + targetCredits)) - (currentGPA * currentCredits)) / targetCredits
}

// TargetOutcome classifies a required future GPA
type TargetOutcome string

const (
	TargetUnachievable    TargetOutcome = "unachievable"
	TargetAlreadyAchieved TargetOutcome = "already_achieved"
	TargetRequired        TargetOutcome = "required"
)

// TargetPlan is the result of planning towards a cumulative GPA target
type TargetPlan struct {
	CurrentGPA     float64       `json:"current_gpa"`
	CurrentCredits float64       `json:"current_credits"`
	TargetGPA      float64       `json:"target_gpa"`
	TargetCredits  float64       `json:"target_credits"`
	RequiredGPA    float64       `json:"required_gpa"`
	Outcome        TargetOutcome `json:"outcome"`
	// FloorGPA is the cumulative GPA reached if every additional credit earns
	// 0.0 grade points. Only set for TargetAlreadyAchieved.
	FloorGPA float64 `json:"floor_gpa,omitempty"`
	Message  string  `json:"message"`
}

// PlanTarget computes and classifies the GPA needed to reach targetGPA after
// targetCredits more credits on top of the record.
func PlanTarget(r *Record, targetGPA, targetCredits float64) (TargetPlan, error) {
	if !isFinite(targetGPA) {
		return TargetPlan{}, invalid("target_gpa", "must be a finite number")
	}
	if !isFinite(targetCredits) || targetCredits <= 0 {
		return TargetPlan{}, invalid("target_credits", "must be a positive number")
	}

	plan := TargetPlan{
		CurrentGPA:     CumulativeGPA(r),
		CurrentCredits: TotalCredits(r),
		TargetGPA:      targetGPA,
		TargetCredits:  targetCredits,
	}
	plan.RequiredGPA = RequiredFutureGPA(plan.CurrentGPA, plan.CurrentCredits, targetGPA, targetCredits)

	switch {
	case plan.RequiredGPA > MaxGradePoints:
		plan.Outcome = TargetUnachievable
		plan.Message = fmt.Sprintf(
			"To reach a %s GPA with %s additional credits, you would need a %.2f GPA, which is above the maximum 4.0.",
			formatNumber(targetGPA), formatNumber(targetCredits), plan.RequiredGPA)
	case plan.RequiredGPA < 0:
		plan.Outcome = TargetAlreadyAchieved
		plan.FloorGPA = (plan.CurrentGPA * plan.CurrentCredits) / (plan.CurrentCredits + targetCredits)
		plan.Message = fmt.Sprintf(
			"You already have a %.2f GPA with %s credits. Adding %s credits with a 0.0 GPA would still give you a %.2f GPA.",
			plan.CurrentGPA, formatNumber(plan.CurrentCredits), formatNumber(targetCredits), plan.FloorGPA)
	default:
		plan.Outcome = TargetRequired
		plan.Message = fmt.Sprintf(
			"To reach a %s GPA with %s additional credits, you need to maintain a %.2f GPA in your remaining courses.",
			formatNumber(targetGPA), formatNumber(targetCredits), plan.RequiredGPA)
	}
	return plan, nil
}

// ParseTarget parses user-entered target GPA and credit strings
func ParseTarget(targetGPA, targetCredits string) (float64, float64, error) {
	gpa, err := strconv.ParseFloat(strings.TrimSpace(targetGPA), 64)
	if err != nil || !isFinite(gpa) {
		return 0, 0, invalid("target_gpa", "%q is not a number", targetGPA)
	}
	credits, err := strconv.ParseFloat(strings.TrimSpace(targetCredits), 64)
	if err != nil || !isFinite(credits) || credits <= 0 {
		return 0, 0, invalid("target_credits", "%q is not a positive number", targetCredits)
	}
	return gpa, credits, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatNumber prints v the shortest way, so 30 stays "30" and 3.5 stays "3.5"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
