package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
)

// CaseServiceWrapper defines middleware composition for CaseService.
// Implementations wrap an existing CaseService to add behavior such as
// validation.
type CaseServiceWrapper interface {
	Wrap(CaseService) CaseService
}

// CaseValidationService rejects malformed input before it reaches the
// wrapped CaseService. Every rejection wraps ErrValidation.
type CaseValidationService struct {
	inner     CaseService
	validator validators.Validator
}

func NewCaseValidationService() CaseServiceWrapper {
	return &CaseValidationService{
		validator: validators.NewCaseValidator(),
	}
}

func (v *CaseValidationService) List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.List(ctx, req)
}

func (v *CaseValidationService) Get(ctx context.Context, id string) (models.Case, error) {
	return v.inner.Get(ctx, id)
}

func (v *CaseValidationService) Create(ctx context.Context, input models.CaseInput) (models.Case, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Case{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, input)
}

func (v *CaseValidationService) Update(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Case{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, id, update)
}

func (v *CaseValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *CaseValidationService) Wrap(wrapped CaseService) CaseService {
	v.inner = wrapped
	return v
}
