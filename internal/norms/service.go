package norms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service manages operator-supplied custom norms tables and exposes the
// effective table resolution.
type Service struct {
	tables   CustomTableRepository
	resolver *Resolver
}

func NewService(tables CustomTableRepository, resolver *Resolver) *Service {
	return &Service{tables: tables, resolver: resolver}
}

// Effective returns the table the engine would use for an evaluation
// performed now, with its source tag.
func (s *Service) Effective(ctx context.Context) Resolution {
	return s.resolver.Resolve(ctx)
}

func (s *Service) CreateTable(ctx context.Context, t *CustomTable) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := t.Payload.Validate(); err != nil {
		return fmt.Errorf("invalid norms table: %w", err)
	}
	return s.tables.Create(ctx, t)
}

func (s *Service) GetTable(ctx context.Context, id uuid.UUID) (*CustomTable, error) {
	return s.tables.GetByID(ctx, id)
}

func (s *Service) UpdateTable(ctx context.Context, t *CustomTable) error {
	if err := t.Payload.Validate(); err != nil {
		return fmt.Errorf("invalid norms table: %w", err)
	}
	return s.tables.Update(ctx, t)
}

func (s *Service) DeleteTable(ctx context.Context, id uuid.UUID) error {
	return s.tables.Delete(ctx, id)
}

func (s *Service) ListTables(ctx context.Context, limit, offset int) ([]*CustomTable, int, error) {
	return s.tables.List(ctx, limit, offset)
}

func (s *Service) ActivateTable(ctx context.Context, id uuid.UUID) error {
	return s.tables.Activate(ctx, id)
}

// ActiveTableLookup adapts the repository to the resolver's ActiveLookup
// stage. A repository with no active row resolves to absence, not error.
func ActiveTableLookup(tables CustomTableRepository) ActiveLookup {
	return func(ctx context.Context) (*Table, error) {
		t, err := tables.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, nil
		}
		return &t.Payload, nil
	}
}
