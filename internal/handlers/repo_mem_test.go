package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawsitiveapps/pet-scheduler/internal/audit"
	"github.com/pawsitiveapps/pet-scheduler/internal/domain/catalog"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
	"github.com/pawsitiveapps/pet-scheduler/internal/models"
)

// memServiceRepo mirrors the gorm repository's contract for handler tests.
type memServiceRepo struct {
	mu       sync.Mutex
	services map[string]models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]models.Service)}
}

func (r *memServiceRepo) list(onlyActive bool) []models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		if onlyActive && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *memServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	return r.list(true), nil
}

func (r *memServiceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	return r.list(false), nil
}

func (r *memServiceRepo) Create(ctx context.Context, in catalog.CreateServiceInput) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.DurationMinutes <= 0 {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.Service{
		ID:              uuid.NewString(),
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
	}
	r.services[s.ID] = s
	return &s, nil
}

func (r *memServiceRepo) Update(ctx context.Context, id string, in catalog.UpdateServiceInput) (*models.Service, error) {
	if (in.Name.Set && in.Name.Null) ||
		(in.DurationMinutes.Set && in.DurationMinutes.Null) ||
		(in.IsActive.Set && in.IsActive.Null) {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}
	if in.Name.Present() && strings.TrimSpace(in.Name.Value) == "" {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}
	if in.DurationMinutes.Present() && in.DurationMinutes.Value <= 0 {
		return nil, httperr.ErrBusiness(catalog.ErrCodeValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(catalog.ErrCodeNotFound)
	}

	if in.Name.Present() {
		s.Name = in.Name.Value
	}
	if in.DurationMinutes.Present() {
		s.DurationMinutes = in.DurationMinutes.Value
	}
	if in.IsActive.Present() {
		s.IsActive = in.IsActive.Value
	}

	r.services[id] = s
	return &s, nil
}

func (r *memServiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return httperr.ErrBusiness(catalog.ErrCodeNotFound)
	}
	delete(r.services, id)
	return nil
}

func (r *memServiceRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.services)
}

type nopSink struct{}

func (nopSink) Write(audit.Event) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

// recordSink captures dispatched audit events so tests can assert on them.
type recordSink struct {
	events chan audit.Event
}

func newRecordSink() *recordSink {
	return &recordSink{events: make(chan audit.Event, 16)}
}

func (s *recordSink) Write(ev audit.Event) error {
	s.events <- ev
	return nil
}

// next waits for the dispatcher's worker to hand over the next event.
func (s *recordSink) next(t *testing.T) audit.Event {
	t.Helper()

	select {
	case ev := <-s.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no audit event arrived")
		return audit.Event{}
	}
}

// recordListingCache counts invalidations; Get always misses.
type recordListingCache struct {
	mu            sync.Mutex
	invalidations int
}

func (c *recordListingCache) Get(ctx context.Context) ([]byte, bool) { return nil, false }

func (c *recordListingCache) Set(ctx context.Context, payload []byte) {}

func (c *recordListingCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
}

func (c *recordListingCache) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}
