package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nodestree/studiosite/internal/domain/model"
)

// ErrInvalidSubmission is matched by the error returned from
// ValidateSubmission when required fields are missing or malformed.
var ErrInvalidSubmission = errors.New("invalid submission")

// submissionInput mirrors model.Submission with validation tags.
type submissionInput struct {
	Name        string `validate:"required,max=200"`
	Email       string `validate:"required,max=254,email"`
	ProjectType string `validate:"required,project_type"`
	Message     string `validate:"required,max=5000"`
}

// fieldKeys maps submissionInput struct fields to form field keys.
var fieldKeys = map[string]string{
	"Name":        model.FieldName,
	"Email":       model.FieldEmail,
	"ProjectType": model.FieldProjectType,
	"Message":     model.FieldMessage,
}

// fieldLabels maps form field keys to the labels shown next to the inputs.
var fieldLabels = map[string]string{
	model.FieldName:        "Name",
	model.FieldEmail:       "Email",
	model.FieldProjectType: "Project type",
	model.FieldMessage:     "Message",
}

var requiredMessages = map[string]string{
	model.FieldName:        "Please enter your name.",
	model.FieldEmail:       "Please enter your email.",
	model.FieldProjectType: "Please choose a project type.",
	model.FieldMessage:     "Please tell us about your project.",
}

var submissionValidator = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("project_type", func(fl validator.FieldLevel) bool {
		return model.ProjectType(fl.Field().String()).Valid()
	}); err != nil {
		panic("validation: register project_type: " + err.Error())
	}
	return v
}

// ValidationError carries one user-facing message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the offending fields in a stable order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrInvalidSubmission, strings.Join(keys, ", "))
}

// Is makes errors.Is(err, ErrInvalidSubmission) report true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSubmission
}

// Message returns the message for the given field key, or "".
func (e *ValidationError) Message(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// ValidateSubmission checks that name, email and message are present, that
// the email is well formed, and that the project type is one of the offered
// choices. The submission should already be normalized.
func ValidateSubmission(s model.Submission) error {
	in := submissionInput{
		Name:        s.Name,
		Email:       s.Email,
		ProjectType: string(s.ProjectType),
		Message:     s.Message,
	}

	err := submissionValidator.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate submission: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		key := fieldKeys[fe.StructField()]
		if _, seen := out.Fields[key]; seen {
			continue
		}
		out.Fields[key] = validationMessage(key, fe)
	}
	return out
}

func validationMessage(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "project_type":
		return requiredMessages[key]
	case "email":
		return "Please enter a valid email address."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fieldLabels[key], fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fieldLabels[key])
	}
}
