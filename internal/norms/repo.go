package norms

import (
	"context"

	"github.com/google/uuid"
)

// CustomTableRepository defines storage for operator-managed norms tables.
type CustomTableRepository interface {
	Create(ctx context.Context, t *CustomTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*CustomTable, error)
	GetActive(ctx context.Context) (*CustomTable, error)
	Update(ctx context.Context, t *CustomTable) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*CustomTable, int, error)
	Activate(ctx context.Context, id uuid.UUID) error
}
