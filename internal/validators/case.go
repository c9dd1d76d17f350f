package validators

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/MKhiriev/go-case-tracker/models"
)

// Field name constants used to restrict case validation to a subset of
// fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldPage        = "page"
	FieldLimit       = "limit"
)

// MaxPageLimit is the largest page size a listing may request.
const MaxPageLimit = 100

// CaseValidator validates case create, update and listing inputs.
type CaseValidator struct {
}

// NewCaseValidator constructs a CaseValidator and returns it as the
// Validator interface.
func NewCaseValidator() Validator {
	return &CaseValidator{}
}

// Validate dispatches on the concrete input type. Both values and pointers
// of models.CaseInput, models.CaseUpdate and models.CaseListRequest are
// accepted.
func (v *CaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CaseInput:
		return v.validateInput(value, fields...)
	case *models.CaseInput:
		return v.validateInput(*value, fields...)

	case models.CaseUpdate:
		return v.validateUpdate(value, fields...)
	case *models.CaseUpdate:
		return v.validateUpdate(*value, fields...)

	case models.CaseListRequest:
		return v.validateList(value, fields...)
	case *models.CaseListRequest:
		return v.validateList(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateInput collects every failing rule so that a request missing both
// title and description reports both.
func (v *CaseValidator) validateInput(input models.CaseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldStatus, FieldPriority}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				errs = append(errs, ErrTitleRequired)
			}
		case FieldDescription:
			if strings.TrimSpace(input.Description) == "" {
				errs = append(errs, ErrDescriptionRequired)
			}
		case FieldStatus:
			if input.Status != "" && !input.Status.IsValid() {
				errs = append(errs, ErrInvalidStatus)
			}
		case FieldPriority:
			if input.Priority != "" && !input.Priority.IsValid() {
				errs = append(errs, ErrInvalidPriority)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *CaseValidator) validateUpdate(update models.CaseUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if update.Status != "" && !update.Status.IsValid() {
				return ErrInvalidStatus
			}
		case FieldPriority:
			if update.Priority != "" && !update.Priority.IsValid() {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CaseValidator) validateList(request models.CaseListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if request.Page < 1 {
				return ErrInvalidPage
			}
			// the row offset (page-1)*limit must fit in an int
			if request.Limit > 0 && request.Page-1 > math.MaxInt/request.Limit {
				return ErrInvalidPage
			}
		case FieldLimit:
			if request.Limit < 1 || request.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
