package submit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Fyandono/project-maintenance-system/internal/common"
)

// DateLayout is the wire format of all date-only fields.
const DateLayout = "2006-01-02"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the payload's `validate` tags and converts failures
// into a single user-facing validation error. Runs before any network call.
func ValidateStruct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(parts, "; "))
}

// VerifyRules are the inputs to the verification date/note constraints.
type VerifyRules struct {
	// ProjectDate is the declared project date of the record under
	// verification, not part of the outgoing payload.
	ProjectDate    string
	CompletionDate string
	Verified       bool
	Note           string
}

// CheckVerifyRules enforces the client-side verification constraints:
// a record may be verified only once its project date has arrived; the
// completion date must fall between the project date and today; and a
// revision (negative outcome) must carry a note.
func CheckVerifyRules(r VerifyRules, now time.Time) error {
	projectDate, err := time.Parse(DateLayout, r.ProjectDate)
	if err != nil {
		return fmt.Errorf("%w: invalid project date %q", common.ErrValidation, r.ProjectDate)
	}
	completionDate, err := time.Parse(DateLayout, r.CompletionDate)
	if err != nil {
		return fmt.Errorf("%w: invalid completion date %q", common.ErrValidation, r.CompletionDate)
	}

	today, _ := time.Parse(DateLayout, now.Format(DateLayout))

	if projectDate.After(today) {
		return fmt.Errorf("%w: record cannot be verified before its project date", common.ErrValidation)
	}
	if completionDate.Before(projectDate) {
		return fmt.Errorf("%w: completion date must be on or after the project date", common.ErrValidation)
	}
	if completionDate.After(today) {
		return fmt.Errorf("%w: completion date must not be in the future", common.ErrValidation)
	}
	if !r.Verified && strings.TrimSpace(r.Note) == "" {
		return fmt.Errorf("%w: a note is mandatory when requesting a revision", common.ErrValidation)
	}
	return nil
}
