package events

import (
	"context"
	"sync"
)

// InMemoryPublisher records events for assertions in tests.
type InMemoryPublisher struct {
	mu     sync.Mutex
	events []StepSubmitted
}

func NewInMemoryPublisher() *InMemoryPublisher {
	return &InMemoryPublisher{}
}

func (p *InMemoryPublisher) PublishStepSubmitted(_ context.Context, event StepSubmitted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *InMemoryPublisher) Close() {}

// Events returns a snapshot of everything published so far.
func (p *InMemoryPublisher) Events() []StepSubmitted {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]StepSubmitted(nil), p.events...)
}
