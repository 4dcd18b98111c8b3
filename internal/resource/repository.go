package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistent storage for resources.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Resource, error)
	Get(ctx context.Context, id int64) (*Resource, error)
	Create(ctx context.Context, params CreateParams) (*Resource, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Resource, error)
	Delete(ctx context.Context, id int64) error
}

// PgRepository implements Repository with PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a new PostgreSQL resource repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const resourceColumns = `id, name, description, category, status, created_at, updated_at`

func (r *PgRepository) List(ctx context.Context, filter Filter) ([]Resource, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + resourceColumns + ` FROM resources`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		var res Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}

func (r *PgRepository) Get(ctx context.Context, id int64) (*Resource, error) {
	var res Resource
	row := r.pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	if err := scanResource(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting resource %d: %w", id, err)
	}
	return &res, nil
}

func (r *PgRepository) Create(ctx context.Context, params CreateParams) (*Resource, error) {
	var res Resource
	row := r.pool.QueryRow(ctx,
		`INSERT INTO resources (name, description, category, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+resourceColumns,
		params.Name, params.Description, params.Category, params.Status)
	if err := scanResource(row, &res); err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return &res, nil
}

func (r *PgRepository) Update(ctx context.Context, id int64, params UpdateParams) (*Resource, error) {
	var res Resource
	row := r.pool.QueryRow(ctx,
		`UPDATE resources
		 SET name        = COALESCE($2, name),
		     description = COALESCE($3, description),
		     category    = COALESCE($4, category),
		     status      = COALESCE($5, status),
		     updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+resourceColumns,
		id, params.Name, params.Description, params.Category, params.Status)
	if err := scanResource(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating resource %d: %w", id, err)
	}
	return &res, nil
}

func (r *PgRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting resource %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanResource(row pgx.Row, res *Resource) error {
	return row.Scan(
		&res.ID, &res.Name, &res.Description, &res.Category,
		&res.Status, &res.CreatedAt, &res.UpdatedAt)
}
