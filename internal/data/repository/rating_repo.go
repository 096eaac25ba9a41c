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

// RatingFilters narrows FindAll results.
type RatingFilters struct {
	RatingType string
	EventID    *uuid.UUID
	ResourceID *uuid.UUID
	CreatedBy  *uuid.UUID
}

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	FindAll(ctx context.Context, filters RatingFilters, sort string) ([]*entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

const ratingColumns = `id, rating_type, event_id, resource_id, rating, review, created_by,
	created_at, updated_at`

func scanRating(row pgx.Row) (*entity.Rating, error) {
	var rating entity.Rating
	err := row.Scan(
		&rating.ID,
		&rating.RatingType,
		&rating.EventID,
		&rating.ResourceID,
		&rating.Rating,
		&rating.Review,
		&rating.CreatedBy,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO ratings (id, rating_type, event_id, resource_id, rating, review,
			                      created_by, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			rating.ID,
			rating.RatingType,
			rating.EventID,
			rating.ResourceID,
			rating.Rating,
			rating.Review,
			rating.CreatedBy,
			rating.CreatedAt,
			rating.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create rating", zap.Error(err))
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`

	rating, err := scanRating(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return nil, fmt.Errorf("find rating %s: %w", id.String(), err)
	}

	return rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context, filters RatingFilters, sortKey string) ([]*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE 1=1`
	var args []any

	if filters.RatingType != "" {
		args = append(args, filters.RatingType)
		query += fmt.Sprintf(" AND rating_type = $%d", len(args))
	}

	if filters.EventID != nil {
		args = append(args, *filters.EventID)
		query += fmt.Sprintf(" AND event_id = $%d", len(args))
	}

	if filters.ResourceID != nil {
		args = append(args, *filters.ResourceID)
		query += fmt.Sprintf(" AND resource_id = $%d", len(args))
	}

	if filters.CreatedBy != nil {
		args = append(args, *filters.CreatedBy)
		query += fmt.Sprintf(" AND created_by = $%d", len(args))
	}

	query += ` ORDER BY ` + sortClause(sortKey, "-created_at", map[string]string{
		"rating":     "rating",
		"created_at": "created_at",
	})

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list ratings", zap.Error(err))
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (r *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	result, err := r.db.Exec(ctx,
		`UPDATE ratings SET rating = $2, review = $3, updated_at = NOW() WHERE id = $1`,
		rating.ID, rating.Rating, rating.Review,
	)
	if err != nil {
		r.log.Error("Failed to update rating",
			zap.Error(err),
			zap.String("rating_id", rating.ID.String()),
		)
		return fmt.Errorf("update rating %s: %w", rating.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrRatingNotFound
	}

	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return fmt.Errorf("delete rating %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrRatingNotFound
	}

	return nil
}
