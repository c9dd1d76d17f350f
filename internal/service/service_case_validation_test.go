package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-case-tracker/internal/validators"
	"github.com/MKhiriev/go-case-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: CaseService
// ─────────────────────────────────────────────

type stubCaseService struct {
	listFn   func(ctx context.Context, req models.CaseListRequest) (models.CasePage, error)
	createFn func(ctx context.Context, input models.CaseInput) (models.Case, error)
	updateFn func(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error)
	calls    int
}

func (s *stubCaseService) List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error) {
	s.calls++
	if s.listFn != nil {
		return s.listFn(ctx, req)
	}
	return models.CasePage{}, nil
}

func (s *stubCaseService) Get(ctx context.Context, id string) (models.Case, error) {
	s.calls++
	return models.Case{ID: id}, nil
}

func (s *stubCaseService) Create(ctx context.Context, input models.CaseInput) (models.Case, error) {
	s.calls++
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return models.Case{}, nil
}

func (s *stubCaseService) Update(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error) {
	s.calls++
	if s.updateFn != nil {
		return s.updateFn(ctx, id, update)
	}
	return models.Case{}, nil
}

func (s *stubCaseService) Delete(ctx context.Context, id string) error {
	s.calls++
	return nil
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCaseValidationService_Create_RejectsMissingFields(t *testing.T) {
	inner := &stubCaseService{}
	svc := NewCaseValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), models.CaseInput{Title: " "})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrTitleRequired)
	assert.ErrorIs(t, err, validators.ErrDescriptionRequired)
	assert.Zero(t, inner.calls, "inner service must not be reached")
}

func TestCaseValidationService_Create_RejectsUnknownStatus(t *testing.T) {
	inner := &stubCaseService{}
	svc := NewCaseValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), models.CaseInput{Title: "t", Description: "d", Status: "Pending"})

	assert.ErrorIs(t, err, validators.ErrInvalidStatus)
	assert.Zero(t, inner.calls)
}

func TestCaseValidationService_Create_PassesValidInput(t *testing.T) {
	inner := &stubCaseService{
		createFn: func(_ context.Context, input models.CaseInput) (models.Case, error) {
			return models.Case{Title: input.Title}, nil
		},
	}
	svc := NewCaseValidationService().Wrap(inner)

	got, err := svc.Create(context.Background(), models.CaseInput{Title: "t", Description: "d"})

	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, 1, inner.calls)
}

// ─────────────────────────────────────────────
// Update / List
// ─────────────────────────────────────────────

func TestCaseValidationService_Update(t *testing.T) {
	inner := &stubCaseService{}
	svc := NewCaseValidationService().Wrap(inner)

	_, err := svc.Update(context.Background(), testCaseID, models.CaseUpdate{Priority: "Urgent"})
	assert.ErrorIs(t, err, validators.ErrInvalidPriority)
	assert.Zero(t, inner.calls)

	_, err = svc.Update(context.Background(), testCaseID, models.CaseUpdate{Title: "only title"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestCaseValidationService_List(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CaseListRequest
		wantErr error
	}{
		{name: "valid", req: models.CaseListRequest{Page: 1, Limit: 10}},
		{name: "max limit", req: models.CaseListRequest{Page: 3, Limit: 100}},
		{name: "zero page", req: models.CaseListRequest{Page: 0, Limit: 10}, wantErr: validators.ErrInvalidPage},
		{name: "limit too big", req: models.CaseListRequest{Page: 1, Limit: 101}, wantErr: validators.ErrInvalidLimit},
		{name: "negative limit", req: models.CaseListRequest{Page: 1, Limit: -1}, wantErr: validators.ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCaseValidationService().Wrap(&stubCaseService{})

			_, err := svc.List(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCaseValidationService_GetAndDeletePassThrough(t *testing.T) {
	inner := &stubCaseService{}
	svc := NewCaseValidationService().Wrap(inner)

	got, err := svc.Get(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", got.ID)

	require.NoError(t, svc.Delete(context.Background(), "anything"))
	assert.Equal(t, 2, inner.calls)
}
