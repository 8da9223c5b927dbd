// Package handler exposes the wizard over HTTP. Handlers decode and coerce
// payloads, delegate to the service, and translate errors; no business
// rules live here.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vistoforms/internal/form/coerce"
	"vistoforms/internal/form/models"
	"vistoforms/internal/form/service"
	"vistoforms/internal/form/validate"
	"vistoforms/internal/platform/metrics"
	"vistoforms/internal/platform/middleware"
	"vistoforms/internal/transport/http/shared"
	dErrors "vistoforms/pkg/domain-errors"
)

// Service defines the form operations the handler depends on.
type Service interface {
	CreateForm(ctx context.Context) (*models.Form, error)
	FetchStep(ctx context.Context, formID uuid.UUID, step models.Step) (*models.StepRecord, error)
	SaveDraft(ctx context.Context, formID uuid.UUID, step models.Step, pending models.Values, redirectTarget *models.Step) (*service.SaveResult, error)
	SubmitStep(ctx context.Context, formID uuid.UUID, step models.Step, pending models.Values) (*service.SubmitResult, error)
	AddListEntry(ctx context.Context, formID uuid.UUID, step models.Step, listName string, pending models.Values) (*models.StepRecord, error)
	RemoveListEntry(ctx context.Context, formID uuid.UUID, step models.Step, listName string, index int) (*models.StepRecord, error)
	RequestRedirect(ctx context.Context, formID uuid.UUID, target models.Step) error
	Summary(ctx context.Context, formID uuid.UUID) (*models.Form, []*models.StepRecord, error)
}

// Handler handles the wizard endpoints.
type Handler struct {
	logger       *slog.Logger
	forms        Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new form Handler.
func New(forms Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		forms:        forms,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

// Register mounts the wizard routes.
func (h *Handler) Register(r chi.Router) {
	formRouter := chi.NewRouter()
	formRouter.Use(middleware.Recovery(h.logger))
	formRouter.Use(middleware.RequestID)
	formRouter.Use(middleware.Logger(h.logger))
	formRouter.Use(middleware.Timeout(30 * time.Second))
	formRouter.Use(middleware.ContentTypeJSON)
	formRouter.Use(middleware.Latency(h.metrics))
	formRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	formRouter.Post("/forms", h.handleCreateForm)
	formRouter.Get("/forms/{formID}/steps/{step}", h.handleFetchStep)
	formRouter.Put("/forms/{formID}/steps/{step}", h.handleSaveDraft)
	formRouter.Post("/forms/{formID}/steps/{step}/submit", h.handleSubmitStep)
	formRouter.Post("/forms/{formID}/steps/{step}/lists/{list}/entries", h.handleAddListEntry)
	formRouter.Delete("/forms/{formID}/steps/{step}/lists/{list}/entries/{index}", h.handleRemoveListEntry)
	formRouter.Post("/forms/{formID}/redirect", h.handleRequestRedirect)
	formRouter.Get("/forms/{formID}/summary", h.handleSummary)

	r.Mount("/", formRouter)
}

type stepPayload struct {
	Values       map[string]any `json:"values"`
	RedirectStep *int           `json:"redirect_step,omitempty"`
}

type stepResponse struct {
	Step      string         `json:"step"`
	Values    map[string]any `json:"values"`
	Submitted bool           `json:"submitted"`
}

func (h *Handler) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.forms.CreateForm(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "failed to create form", err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]string{
		"id":         form.ID.String(),
		"created_at": form.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) handleFetchStep(w http.ResponseWriter, r *http.Request) {
	formID, step, ok := h.pathParams(w, r)
	if !ok {
		return
	}
	record, err := h.forms.FetchStep(r.Context(), formID, step)
	if err != nil {
		h.writeServiceError(w, r, "failed to fetch step", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stepResponse{
		Step:      step.Slug(),
		Values:    coerce.Encode(models.SchemaFor(step), record.Values),
		Submitted: record.Submitted,
	})
}

// handleSaveDraft performs a lossy partial save. Malformed field values are
// dropped rather than rejected: drafts never block.
func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	formID, step, ok := h.pathParams(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	pending, dropped := coerce.Decode(models.SchemaFor(step), payload.Values)
	if len(dropped) > 0 {
		h.logger.InfoContext(r.Context(), "dropped malformed draft fields",
			"count", len(dropped),
			"form_id", formID.String(),
			"step", step.Slug(),
		)
	}

	var redirectTarget *models.Step
	if payload.RedirectStep != nil {
		target := models.Step(*payload.RedirectStep)
		redirectTarget = &target
	}

	result, err := h.forms.SaveDraft(r.Context(), formID, step, pending, redirectTarget)
	if err != nil {
		h.writeServiceError(w, r, "failed to save draft", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSubmitStep(w http.ResponseWriter, r *http.Request) {
	formID, step, ok := h.pathParams(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	pending, coercionIssues := coerce.Decode(models.SchemaFor(step), payload.Values)
	if len(coercionIssues) > 0 {
		shared.WriteValidationError(w, coercionIssues)
		return
	}

	result, err := h.forms.SubmitStep(r.Context(), formID, step, pending)
	if err != nil {
		var validationErr *validate.Error
		if errors.As(err, &validationErr) {
			shared.WriteValidationError(w, validationErr.Issues)
			return
		}
		h.writeServiceError(w, r, "failed to submit step", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

// handleAddListEntry commits the current working slot of a dynamic list.
// The request body carries the step's pending values; an incomplete slot is
// rejected with the per-sub-field issues.
func (h *Handler) handleAddListEntry(w http.ResponseWriter, r *http.Request) {
	formID, step, ok := h.pathParams(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	pending, coercionIssues := coerce.Decode(models.SchemaFor(step), payload.Values)
	if len(coercionIssues) > 0 {
		shared.WriteValidationError(w, coercionIssues)
		return
	}

	record, err := h.forms.AddListEntry(r.Context(), formID, step, chi.URLParam(r, "list"), pending)
	if err != nil {
		var validationErr *validate.Error
		if errors.As(err, &validationErr) {
			shared.WriteValidationError(w, validationErr.Issues)
			return
		}
		h.writeServiceError(w, r, "failed to add list entry", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stepResponse{
		Step:      step.Slug(),
		Values:    coerce.Encode(models.SchemaFor(step), record.Values),
		Submitted: record.Submitted,
	})
}

func (h *Handler) handleRemoveListEntry(w http.ResponseWriter, r *http.Request) {
	formID, step, ok := h.pathParams(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid list index"))
		return
	}

	record, err := h.forms.RemoveListEntry(r.Context(), formID, step, chi.URLParam(r, "list"), index)
	if err != nil {
		h.writeServiceError(w, r, "failed to remove list entry", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stepResponse{
		Step:      step.Slug(),
		Values:    coerce.Encode(models.SchemaFor(step), record.Values),
		Submitted: record.Submitted,
	})
}

func (h *Handler) handleRequestRedirect(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}
	var body struct {
		TargetStep int `json:"target_step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.forms.RequestRedirect(r.Context(), formID, models.Step(body.TargetStep)); err != nil {
		h.writeServiceError(w, r, "failed to request redirect", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	formID, ok := h.formID(w, r)
	if !ok {
		return
	}
	form, records, err := h.forms.Summary(r.Context(), formID)
	if err != nil {
		h.writeServiceError(w, r, "failed to load summary", err)
		return
	}

	steps := make([]stepResponse, 0, len(records))
	for _, record := range records {
		steps = append(steps, stepResponse{
			Step:      record.Step.Slug(),
			Values:    coerce.Encode(models.SchemaFor(record.Step), record.Values),
			Submitted: record.Submitted,
		})
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"id":         form.ID.String(),
		"created_at": form.CreatedAt.Format(time.RFC3339),
		"steps":      steps,
	})
}

func (h *Handler) formID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	formID, err := uuid.Parse(chi.URLParam(r, "formID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid form id"))
		return uuid.Nil, false
	}
	return formID, true
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, models.Step, bool) {
	formID, ok := h.formID(w, r)
	if !ok {
		return uuid.Nil, 0, false
	}
	step, err := models.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		shared.WriteError(w, err)
		return uuid.Nil, 0, false
	}
	return formID, step, true
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request) (stepPayload, bool) {
	var payload stepPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return stepPayload{}, false
	}
	if payload.Values == nil {
		payload.Values = map[string]any{}
	}
	return payload, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "error", err.Error(), "request_id", requestID)
	} else {
		h.logger.WarnContext(ctx, msg, "error", err.Error(), "request_id", requestID)
	}
	shared.WriteError(w, err)
}
