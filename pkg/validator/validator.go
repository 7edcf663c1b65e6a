package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Init initializes the validator
func init() {
	validate = validator.New()
	// report json names so messages match the request bodies
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct validates a struct
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// AddCourseRequest is the body of POST /semesters/:index/courses. Values stay
// strings so the academic store can report unparseable credits itself.
type AddCourseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Grade   string `json:"grade" validate:"required"`
	Credits string `json:"credits" validate:"required"`
}

// SemesterRequest is the body for adding or renaming a semester
type SemesterRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// GradingSystemRequest is the body of PUT /grading-system
type GradingSystemRequest struct {
	System string `json:"system" validate:"required"`
}

// PlanRequest is the body of POST /plan
type PlanRequest struct {
	TargetGPA     string `json:"target_gpa" validate:"required"`
	TargetCredits string `json:"target_credits" validate:"required"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// FormatValidationError formats validation errors into a readable format
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   fieldError.Field(),
				Tag:     fieldError.Tag(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return errs
}

// getErrorMessage returns a human-readable error message for validation errors
func getErrorMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
