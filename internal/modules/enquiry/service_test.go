// README: Enquiry service tests with an in-memory store double.
package enquiry

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
	"cabdesk/internal/types"
)

type memStore struct {
	mu   sync.Mutex
	byID map[types.ID]*Enquiry
}

func newMemStore() *memStore {
	return &memStore{byID: map[types.ID]*Enquiry{}}
}

func (m *memStore) Create(_ context.Context, e *Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, id types.ID) (*Enquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memStore) ListByOwner(_ context.Context, ownerID string, _ int) ([]Enquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Enquiry
	for _, e := range m.byID {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func newQuoteService() *quote.Service {
	return quote.NewService(tariff.NewResolver(tariff.NewMemoryStore()), nil)
}

func TestCreate_PersistsQuoteAndMessage(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, newQuoteService(), nil, "INR")

	e, err := svc.Create(context.Background(), CreateCommand{
		Customer: "+911234567890",
		Request: quote.QuoteRequest{
			OwnerID:        "owner1",
			Category:       estimate.CategoryLocal,
			Vehicle:        tariff.VehicleSedan,
			ManualKm:       12,
			WaitingMinutes: 10,
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Quoted.Amount != 360 || e.Quoted.Currency != "INR" {
		t.Errorf("quoted money: got %+v", e.Quoted)
	}
	if e.Branch != tariff.GlobalBranch {
		t.Errorf("empty branch should normalize to Global, got %q", e.Branch)
	}
	if !strings.Contains(e.Message, "Total: INR 360") {
		t.Errorf("message missing total:\n%s", e.Message)
	}

	got, err := svc.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Message != e.Message {
		t.Error("stored message differs from returned one")
	}
}

type failingComposer struct{}

func (failingComposer) Polish(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

func TestCreate_ComposerFailureFallsBackToDraft(t *testing.T) {
	svc := NewService(newMemStore(), newQuoteService(), failingComposer{}, "INR")

	e, err := svc.Create(context.Background(), CreateCommand{
		Request: quote.QuoteRequest{
			OwnerID:  "owner1",
			Category: estimate.CategoryLocal,
			Vehicle:  tariff.VehicleSedan,
			ManualKm: 3,
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(e.Message, "Base fare") {
		t.Errorf("expected the deterministic draft, got:\n%s", e.Message)
	}
}

type upperComposer struct{}

func (upperComposer) Polish(_ context.Context, draft string) (string, error) {
	return "Hello! " + draft, nil
}

func TestCreate_ComposerOutputUsedWhenAvailable(t *testing.T) {
	svc := NewService(newMemStore(), newQuoteService(), upperComposer{}, "INR")

	e, err := svc.Create(context.Background(), CreateCommand{
		Request: quote.QuoteRequest{
			OwnerID:  "owner1",
			Category: estimate.CategoryLocal,
			Vehicle:  tariff.VehicleSedan,
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(e.Message, "Hello! ") {
		t.Errorf("polished message not used:\n%s", e.Message)
	}
}

func TestCreate_MissingOwner(t *testing.T) {
	svc := NewService(newMemStore(), newQuoteService(), nil, "INR")
	if _, err := svc.Create(context.Background(), CreateCommand{}); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestListByOwner_FiltersOwner(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, newQuoteService(), nil, "INR")

	for _, owner := range []string{"owner1", "owner1", "owner2"} {
		if _, err := svc.Create(context.Background(), CreateCommand{
			Request: quote.QuoteRequest{
				OwnerID:  owner,
				Category: estimate.CategoryLocal,
				Vehicle:  tariff.VehicleSedan,
			},
		}); err != nil {
			t.Fatalf("create for %s: %v", owner, err)
		}
	}

	items, err := svc.ListByOwner(context.Background(), "owner1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 enquiries for owner1, got %d", len(items))
	}
}
