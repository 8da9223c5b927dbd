package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"vistoforms/internal/form/models"
)

// InMemoryStore keeps forms in process memory. Used by tests and local runs
// without a database.
type InMemoryStore struct {
	mu    sync.RWMutex
	forms map[uuid.UUID]*models.Form
	steps map[uuid.UUID]map[models.Step]*models.StepRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		forms: make(map[uuid.UUID]*models.Form),
		steps: make(map[uuid.UUID]map[models.Step]*models.StepRecord),
	}
}

func (s *InMemoryStore) CreateForm(_ context.Context, form *models.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *form
	s.forms[form.ID] = &copied
	return nil
}

func (s *InMemoryStore) GetForm(_ context.Context, formID uuid.UUID) (*models.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[formID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *form
	return &copied, nil
}

func (s *InMemoryStore) GetStep(_ context.Context, formID uuid.UUID, step models.Step) (*models.StepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.steps[formID][step]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(record), nil
}

func (s *InMemoryStore) SaveStep(_ context.Context, record *models.StepRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[record.FormID]; !ok {
		return ErrNotFound
	}
	if s.steps[record.FormID] == nil {
		s.steps[record.FormID] = make(map[models.Step]*models.StepRecord)
	}
	s.steps[record.FormID][record.Step] = copyRecord(record)
	return nil
}

func (s *InMemoryStore) ListSteps(_ context.Context, formID uuid.UUID) ([]*models.StepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.forms[formID]; !ok {
		return nil, ErrNotFound
	}
	records := make([]*models.StepRecord, 0, len(s.steps[formID]))
	for _, record := range s.steps[formID] {
		records = append(records, copyRecord(record))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Step < records[j].Step })
	return records, nil
}

// copyRecord snapshots a record so callers never alias store-held state.
func copyRecord(record *models.StepRecord) *models.StepRecord {
	copied := *record
	copied.Values = record.Values.Clone()
	return &copied
}
