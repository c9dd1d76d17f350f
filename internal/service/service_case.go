package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/internal/store"
	"github.com/MKhiriev/go-case-tracker/internal/utils"
	"github.com/MKhiriev/go-case-tracker/models"
)

const caseCreatedMessage = "A new case was created"

// caseService implements CaseService on top of a CaseRepository and
// announces new cases through an EventSink.
type caseService struct {
	repository store.CaseRepository
	events     EventSink
	ids        idGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func NewCaseService(repository store.CaseRepository, events EventSink, logger *logger.Logger) CaseService {
	if events == nil {
		events = NopEventSink{}
	}

	return &caseService{
		repository: repository,
		events:     events,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *caseService) List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error) {
	page, err := s.repository.List(ctx, req)
	if err != nil {
		return models.CasePage{}, fmt.Errorf("listing cases failed: %w", err)
	}
	return page, nil
}

// Get reports store.ErrCaseNotFound for ids that are not UUIDs.
func (s *caseService) Get(ctx context.Context, id string) (models.Case, error) {
	if !utils.IsUUID(id) {
		return models.Case{}, store.ErrCaseNotFound
	}
	return s.repository.GetByID(ctx, id)
}

// Create fills in defaults, stores the case and then publishes caseCreated.
// A failed publish is logged and does not fail the create.
func (s *caseService) Create(ctx context.Context, input models.CaseInput) (models.Case, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	c := models.Case{
		ID:          s.ids.Generate(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Status == "" {
		c.Status = models.CaseStatusOpen
	}
	if c.Priority == "" {
		c.Priority = models.CasePriorityMedium
	}

	created, err := s.repository.Create(ctx, c)
	if err != nil {
		log.Err(err).Msg("case creation ended with error")
		return models.Case{}, fmt.Errorf("case creation ended with error: %w", err)
	}

	payload := models.CaseCreatedPayload{Message: caseCreatedMessage, Case: created}
	if pubErr := s.events.Publish(ctx, models.TopicCases, models.EventCaseCreated, payload); pubErr != nil {
		log.Warn().Err(pubErr).Str("case_id", created.ID).Msg("failed to publish case created event")
	}

	return created, nil
}

// Update applies the non-blank fields of update. An update with nothing to
// change returns the stored case untouched.
func (s *caseService) Update(ctx context.Context, id string, update models.CaseUpdate) (models.Case, error) {
	if !utils.IsUUID(id) {
		return models.Case{}, store.ErrCaseNotFound
	}

	update.Title = strings.TrimSpace(update.Title)
	update.Description = strings.TrimSpace(update.Description)

	if update.IsEmpty() {
		return s.repository.GetByID(ctx, id)
	}

	return s.repository.Update(ctx, id, update, s.now())
}

func (s *caseService) Delete(ctx context.Context, id string) error {
	if !utils.IsUUID(id) {
		return store.ErrCaseNotFound
	}
	return s.repository.Delete(ctx, id)
}

// NopEventSink drops every event.
type NopEventSink struct{}

func (NopEventSink) Publish(context.Context, string, string, any) error { return nil }
