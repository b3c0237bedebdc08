// README: Enquiry service: quote, compose the outgoing message, persist.
package enquiry

import (
	"context"
	"errors"
	"time"

	"cabdesk/internal/message"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
	"cabdesk/internal/types"
)

var (
	ErrNotFound   = errors.New("enquiry not found")
	ErrBadRequest = errors.New("bad request")
)

// Composer optionally rewrites the deterministic draft into friendlier
// prose. Failures fall back to the draft; composition never blocks a quote.
type Composer interface {
	Polish(ctx context.Context, draft string) (string, error)
}

type Service struct {
	store    Store
	quotes   *quote.Service
	composer Composer // nil when no AI key is configured
	currency string
}

func NewService(store Store, quotes *quote.Service, composer Composer, currency string) *Service {
	return &Service{store: store, quotes: quotes, composer: composer, currency: currency}
}

type CreateCommand struct {
	Customer string
	Request  quote.QuoteRequest
}

// Create quotes the trip, renders the customer message and records the
// enquiry. The returned record carries the message exactly as it should be
// sent onward.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Enquiry, error) {
	if cmd.Request.OwnerID == "" {
		return nil, ErrBadRequest
	}
	if cmd.Request.Branch == "" {
		cmd.Request.Branch = tariff.GlobalBranch
	}

	q, err := s.quotes.Quote(ctx, cmd.Request)
	if err != nil {
		return nil, err
	}

	text := message.Compose(cmd.Request, q, s.currency)
	if s.composer != nil {
		if polished, err := s.composer.Polish(ctx, text); err == nil && polished != "" {
			text = polished
		}
	}

	e := &Enquiry{
		ID:          types.NewID(),
		OwnerID:     cmd.Request.OwnerID,
		Branch:      cmd.Request.Branch,
		Customer:    cmd.Customer,
		Category:    cmd.Request.Category,
		SubType:     cmd.Request.SubType,
		Vehicle:     cmd.Request.Vehicle,
		Origin:      cmd.Request.Origin,
		Destination: cmd.Request.Destination,
		DistanceKm:  q.DistanceKm,
		Quoted:      types.MoneyFromFloat(q.Estimate.Total, s.currency),
		Message:     text,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Enquiry, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string, limit int) ([]Enquiry, error) {
	if ownerID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByOwner(ctx, ownerID, limit)
}
