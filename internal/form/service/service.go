// Package service orchestrates the wizard operations: fetch, draft save,
// submit, and commit-and-navigate redirects. Handlers stay thin; stores and
// publishers stay dumb.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vistoforms/internal/form/events"
	"vistoforms/internal/form/listctl"
	"vistoforms/internal/form/merge"
	"vistoforms/internal/form/models"
	"vistoforms/internal/form/store"
	"vistoforms/internal/form/validate"
	"vistoforms/internal/form/wizard"
	"vistoforms/internal/platform/metrics"
	dErrors "vistoforms/pkg/domain-errors"
	"vistoforms/pkg/requestcontext"
)

const (
	msgDraftSaved    = "Informações salvas"
	msgStepSubmitted = "Informações enviadas"
)

// Service coordinates the form stores and collaborators.
type Service struct {
	store     store.Store
	redirects wizard.RedirectStore
	events    events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func New(st store.Store, redirects wizard.RedirectStore, publisher events.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:     st,
		redirects: redirects,
		events:    publisher,
		metrics:   m,
		logger:    logger,
	}
}

// SaveResult reports a completed draft save. RedirectStep is set when a
// pending commit-and-navigate request was consumed by this save.
type SaveResult struct {
	Message      string       `json:"message"`
	RedirectStep *models.Step `json:"redirect_step,omitempty"`
}

// SubmitResult reports a completed step submission and where the wizard
// goes next.
type SubmitResult struct {
	Message   string                  `json:"message"`
	IsEditing bool                    `json:"is_editing"`
	Next      wizard.NavigationTarget `json:"next"`
}

// CreateForm starts a new application for the authenticated applicant.
func (s *Service) CreateForm(ctx context.Context) (*models.Form, error) {
	applicantID := requestcontext.ApplicantID(ctx)
	if applicantID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "missing applicant identity")
	}
	now := requestcontext.Now(ctx)
	form := &models.Form{
		ID:          uuid.New(),
		ApplicantID: applicantID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateForm(ctx, form); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create form")
	}
	s.metrics.FormsCreated.Inc()
	return form, nil
}

// FetchStep returns the persisted record of one step. A step that has never
// been saved yields an empty record rather than an error; only a missing
// form is a not-found condition.
func (s *Service) FetchStep(ctx context.Context, formID uuid.UUID, step models.Step) (*models.StepRecord, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	record, err := s.store.GetStep(ctx, formID, step)
	if errors.Is(err, store.ErrNotFound) {
		return &models.StepRecord{FormID: formID, Step: step, Values: models.Values{}}, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load step record")
	}
	return record, nil
}

// SaveDraft merges pending edits into the persisted record and saves the
// result without enforcing required fields. When a redirect target is
// given, or a pending redirect request exists for the form, the result
// carries the step to navigate to; the request is consumed exactly once.
func (s *Service) SaveDraft(ctx context.Context, formID uuid.UUID, step models.Step, pending models.Values, redirectTarget *models.Step) (*SaveResult, error) {
	start := time.Now()
	defer s.metrics.ObserveStepOperation("save", start)

	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}

	persisted, submitted, err := s.persistedValues(ctx, formID, step)
	if err != nil {
		return nil, err
	}

	merged := merge.Merge(pending, persisted, models.SchemaFor(step))

	record := &models.StepRecord{
		FormID:    formID,
		Step:      step,
		Values:    merged,
		Submitted: submitted,
		UpdatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SaveStep(ctx, record); err != nil {
		// The persisted baseline is untouched; the applicant can retry.
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save draft")
	}
	s.metrics.DraftsSaved.WithLabelValues(step.Slug()).Inc()

	result := &SaveResult{Message: msgDraftSaved}
	taken, err := s.redirects.Take(ctx, formID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to take redirect request",
			"error", err,
			"form_id", formID.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
		taken = nil
	}
	if redirectTarget != nil && redirectTarget.Valid() {
		// The explicit target wins, and any lodged request was consumed
		// above so it cannot fire on a later unrelated save.
		result.RedirectStep = redirectTarget
		return result, nil
	}
	result.RedirectStep = taken
	return result, nil
}

// SubmitStep merges, fully validates, and persists a step. On validation
// failure it returns a *validate.Error carrying the issue set and persists
// nothing. The navigation decision distinguishes a first submission from a
// re-submission of an already-completed step.
func (s *Service) SubmitStep(ctx context.Context, formID uuid.UUID, step models.Step, pending models.Values) (*SubmitResult, error) {
	start := time.Now()
	defer s.metrics.ObserveStepOperation("submit", start)

	form, err := s.ownedForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	persisted, wasSubmitted, err := s.persistedValues(ctx, formID, step)
	if err != nil {
		return nil, err
	}

	merged := merge.Merge(pending, persisted, models.SchemaFor(step))

	if issues := validate.Validate(step, merged, validate.ModeSubmit); len(issues) > 0 {
		s.metrics.ValidationFailures.WithLabelValues(step.Slug()).Inc()
		return nil, &validate.Error{Issues: issues}
	}

	record := &models.StepRecord{
		FormID:    formID,
		Step:      step,
		Values:    merged,
		Submitted: true,
		UpdatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SaveStep(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit step")
	}
	s.metrics.StepsSubmitted.WithLabelValues(step.Slug()).Inc()

	event := events.StepSubmitted{
		ID:          uuid.NewString(),
		FormID:      formID.String(),
		ApplicantID: form.ApplicantID,
		Step:        step.Slug(),
		IsEditing:   wasSubmitted,
		OccurredAt:  requestcontext.Now(ctx),
	}
	if err := s.events.PublishStepSubmitted(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish step-submitted event",
			"error", err,
			"form_id", formID.String(),
			"step", step.Slug(),
		)
	}

	return &SubmitResult{
		Message:   msgStepSubmitted,
		IsEditing: wasSubmitted,
		Next:      wizard.Decide(wizard.TriggerSubmit, wasSubmitted, step, nil),
	}, nil
}

// AddListEntry commits the trailing working slot of a step's dynamic list.
// Pending edits merge into the persisted record first; the slot must pass
// its required sub-field checks, after which a fresh empty slot is appended
// and the step is saved.
func (s *Service) AddListEntry(ctx context.Context, formID uuid.UUID, step models.Step, listName string, pending models.Values) (*models.StepRecord, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	schema := models.SchemaFor(step)
	spec, ok := schema.Field(listName)
	if !ok || spec.Kind != models.KindList {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown list field: "+listName)
	}

	persisted, submitted, err := s.persistedValues(ctx, formID, step)
	if err != nil {
		return nil, err
	}
	merged := merge.Merge(pending, persisted, schema)

	ctl := listctl.New(spec)
	list := merged.List(listName)
	if len(list) == 0 {
		list = ctl.Seed()
	}
	list, issues := ctl.AddEntry(list, len(list)-1)
	if len(issues) > 0 {
		s.metrics.ValidationFailures.WithLabelValues(step.Slug()).Inc()
		return nil, &validate.Error{Issues: issues}
	}
	merged[listName] = list

	record := &models.StepRecord{
		FormID:    formID,
		Step:      step,
		Values:    merged,
		Submitted: submitted,
		UpdatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SaveStep(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save list entry")
	}
	return record, nil
}

// RemoveListEntry deletes one entry from a step's dynamic list and persists
// the result. The list always keeps a working slot for continued editing.
func (s *Service) RemoveListEntry(ctx context.Context, formID uuid.UUID, step models.Step, listName string, index int) (*models.StepRecord, error) {
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return nil, err
	}
	schema := models.SchemaFor(step)
	spec, ok := schema.Field(listName)
	if !ok || spec.Kind != models.KindList {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown list field: "+listName)
	}

	persisted, submitted, err := s.persistedValues(ctx, formID, step)
	if err != nil {
		return nil, err
	}
	list := persisted.List(listName)
	if index < 0 || index >= len(list) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "list index out of range")
	}
	persisted[listName] = listctl.New(spec).RemoveEntry(list, index)

	record := &models.StepRecord{
		FormID:    formID,
		Step:      step,
		Values:    persisted,
		Submitted: submitted,
		UpdatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SaveStep(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove list entry")
	}
	return record, nil
}

// RequestRedirect lodges a commit-and-navigate request for the form. The
// active step's next save consumes it and navigates.
func (s *Service) RequestRedirect(ctx context.Context, formID uuid.UUID, target models.Step) error {
	if !target.Valid() {
		return dErrors.New(dErrors.CodeBadRequest, "redirect target out of range")
	}
	if _, err := s.ownedForm(ctx, formID); err != nil {
		return err
	}
	if err := s.redirects.Request(ctx, formID, target); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record redirect request")
	}
	return nil
}

// Summary returns the form and every saved step record for the review view.
func (s *Service) Summary(ctx context.Context, formID uuid.UUID) (*models.Form, []*models.StepRecord, error) {
	form, err := s.ownedForm(ctx, formID)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.store.ListSteps(ctx, formID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load summary")
	}
	return form, records, nil
}

// ownedForm loads the form and enforces that it belongs to the
// authenticated applicant. Foreign forms read as not found.
func (s *Service) ownedForm(ctx context.Context, formID uuid.UUID) (*models.Form, error) {
	form, err := s.store.GetForm(ctx, formID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "form not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load form")
	}
	if applicantID := requestcontext.ApplicantID(ctx); applicantID != "" && form.ApplicantID != applicantID {
		return nil, dErrors.New(dErrors.CodeNotFound, "form not found")
	}
	return form, nil
}

func (s *Service) persistedValues(ctx context.Context, formID uuid.UUID, step models.Step) (models.Values, bool, error) {
	record, err := s.store.GetStep(ctx, formID, step)
	if errors.Is(err, store.ErrNotFound) {
		return models.Values{}, false, nil
	}
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load step record")
	}
	return record.Values, record.Submitted, nil
}
