package norms

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// -- Postgres implementation --

type customTableRepoPG struct{ pool *pgxpool.Pool }

func NewCustomTableRepoPG(pool *pgxpool.Pool) CustomTableRepository {
	return &customTableRepoPG{pool: pool}
}

const customTableCols = `id, name, description, payload, active, created_at, updated_at`

func (r *customTableRepoPG) scanCustomTable(row pgx.Row) (*CustomTable, error) {
	var t CustomTable
	var payload []byte
	err := row.Scan(&t.ID, &t.Name, &t.Description, &payload, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &t.Payload); err != nil {
		return nil, fmt.Errorf("decode stored norms payload: %w", err)
	}
	return &t, nil
}

func (r *customTableRepoPG) Create(ctx context.Context, t *CustomTable) error {
	t.ID = uuid.New()
	payload, err := json.Marshal(t.Payload)
	if err != nil {
		return fmt.Errorf("encode norms payload: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO norms_table (id, name, description, payload, active)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Name, t.Description, payload, t.Active)
	return err
}

func (r *customTableRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*CustomTable, error) {
	return r.scanCustomTable(r.pool.QueryRow(ctx, `SELECT `+customTableCols+` FROM norms_table WHERE id = $1`, id))
}

func (r *customTableRepoPG) GetActive(ctx context.Context) (*CustomTable, error) {
	t, err := r.scanCustomTable(r.pool.QueryRow(ctx, `SELECT `+customTableCols+` FROM norms_table WHERE active = true LIMIT 1`))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (r *customTableRepoPG) Update(ctx context.Context, t *CustomTable) error {
	payload, err := json.Marshal(t.Payload)
	if err != nil {
		return fmt.Errorf("encode norms payload: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE norms_table SET name=$2, description=$3, payload=$4, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Name, t.Description, payload)
	return err
}

func (r *customTableRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM norms_table WHERE id = $1`, id)
	return err
}

func (r *customTableRepoPG) List(ctx context.Context, limit, offset int) ([]*CustomTable, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM norms_table`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+customTableCols+` FROM norms_table ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*CustomTable
	for rows.Next() {
		t, err := r.scanCustomTable(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

// Activate marks one table active and clears the flag on every other row
// in a single transaction, preserving the at-most-one-active invariant.
func (r *customTableRepoPG) Activate(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE norms_table SET active = false, updated_at = NOW() WHERE active = true`); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE norms_table SET active = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}
