package repository

import (
	"context"
	"fmt"

	"eventhub/internal/data/entity"
	"eventhub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ResourceFilters narrows FindAll results.
type ResourceFilters struct {
	Type      string
	Available *bool
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	FindAll(ctx context.Context, filters ResourceFilters, sort string) ([]*entity.Resource, error)
	Update(ctx context.Context, resource *entity.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

const resourceColumns = `id, name, type, capacity, location, features, available, created_at, updated_at`

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var resource entity.Resource
	err := row.Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Capacity,
		&resource.Location,
		&resource.Features,
		&resource.Available,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	query := `
		INSERT INTO resources (id, name, type, capacity, location, features, available,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		resource.ID,
		resource.Name,
		resource.Type,
		resource.Capacity,
		resource.Location,
		resource.Features,
		resource.Available,
		resource.CreatedAt,
		resource.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create resource",
			zap.Error(err),
			zap.String("name", resource.Name),
		)
		return fmt.Errorf("create resource %s: %w", resource.Name, err)
	}

	return nil
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by ID",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return nil, fmt.Errorf("find resource by ID %s: %w", id.String(), err)
	}

	return resource, nil
}

func (r *resourceRepository) FindAll(ctx context.Context, filters ResourceFilters, sort string) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE 1=1`
	var args []any

	if filters.Type != "" {
		args = append(args, filters.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	if filters.Available != nil {
		args = append(args, *filters.Available)
		query += fmt.Sprintf(" AND available = $%d", len(args))
	}

	query += ` ORDER BY ` + sortClause(sort, "name", map[string]string{
		"name":       "name",
		"type":       "type",
		"capacity":   "capacity",
		"created_at": "created_at",
	})

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}

	return resources, rows.Err()
}

func (r *resourceRepository) Update(ctx context.Context, resource *entity.Resource) error {
	query := `
		UPDATE resources
		SET name = $2, type = $3, capacity = $4, location = $5, features = $6,
		    available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		resource.ID,
		resource.Name,
		resource.Type,
		resource.Capacity,
		resource.Location,
		resource.Features,
		resource.Available,
		resource.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update resource",
			zap.Error(err),
			zap.String("resource_id", resource.ID.String()),
		)
		return fmt.Errorf("update resource %s: %w", resource.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrResourceNotFound
	}

	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete resource",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return fmt.Errorf("delete resource %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrResourceNotFound
	}

	r.log.Info("Resource deleted", zap.String("resource_id", id.String()))
	return nil
}
