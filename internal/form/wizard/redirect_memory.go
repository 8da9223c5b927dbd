package wizard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"vistoforms/internal/form/models"
)

// InMemoryRedirectStore keeps redirect requests in process memory. Suitable
// for single-instance deployments and tests.
type InMemoryRedirectStore struct {
	mu      sync.Mutex
	pending map[uuid.UUID]models.Step
}

func NewInMemoryRedirectStore() *InMemoryRedirectStore {
	return &InMemoryRedirectStore{pending: make(map[uuid.UUID]models.Step)}
}

func (s *InMemoryRedirectStore) Request(_ context.Context, formID uuid.UUID, target models.Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[formID] = target
	return nil
}

func (s *InMemoryRedirectStore) Take(_ context.Context, formID uuid.UUID) (*models.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.pending[formID]
	if !ok {
		return nil, nil
	}
	delete(s.pending, formID)
	return &target, nil
}
