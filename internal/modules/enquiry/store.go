// README: Enquiry store backed by PostgreSQL.
package enquiry

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabdesk/internal/types"
)

// Store is the persistence contract the service depends on.
type Store interface {
	Create(ctx context.Context, e *Enquiry) error
	Get(ctx context.Context, id types.ID) (*Enquiry, error)
	ListByOwner(ctx context.Context, ownerID string, limit int) ([]Enquiry, error)
}

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, e *Enquiry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO enquiries (
			id, owner_id, branch, customer,
			category, sub_type, vehicle,
			origin, destination, distance_km,
			quoted_amount, quoted_currency, message, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			$11, $12, $13, $14
		)`,
		string(e.ID), e.OwnerID, e.Branch, e.Customer,
		string(e.Category), string(e.SubType), string(e.Vehicle),
		e.Origin, e.Destination, e.DistanceKm,
		e.Quoted.Amount, e.Quoted.Currency, e.Message, e.CreatedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Enquiry, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, owner_id, branch, customer,
		       category, sub_type, vehicle,
		       origin, destination, distance_km,
		       quoted_amount, quoted_currency, message, created_at
		FROM enquiries
		WHERE id = $1`, string(id),
	)

	var e Enquiry
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Branch, &e.Customer,
		&e.Category, &e.SubType, &e.Vehicle,
		&e.Origin, &e.Destination, &e.DistanceKm,
		&e.Quoted.Amount, &e.Quoted.Currency, &e.Message, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PGStore) ListByOwner(ctx context.Context, ownerID string, limit int) ([]Enquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, owner_id, branch, customer,
		       category, sub_type, vehicle,
		       origin, destination, distance_km,
		       quoted_amount, quoted_currency, message, created_at
		FROM enquiries
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, ownerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Enquiry
	for rows.Next() {
		var e Enquiry
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Branch, &e.Customer,
			&e.Category, &e.SubType, &e.Vehicle,
			&e.Origin, &e.Destination, &e.DistanceKm,
			&e.Quoted.Amount, &e.Quoted.Currency, &e.Message, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
