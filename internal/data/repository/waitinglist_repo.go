package repository

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// WaitingListFilters narrows FindAll results.
type WaitingListFilters struct {
	EventID *uuid.UUID
	Status  string
}

type WaitingListRepository interface {
	// Join assigns position = count of existing entries + 1 and inserts
	// the entry. The event row is locked first so concurrent joins on
	// the same event cannot produce duplicate positions. Duplicate
	// membership aborts with entity.ErrAlreadyOnList.
	Join(ctx context.Context, entry *entity.WaitingListEntry) error

	// PromoteNext flips the lowest-position waiting entry to notified
	// and stamps notified_at. Returns nil, nil when the list is empty.
	PromoteNext(ctx context.Context, eventID uuid.UUID) (*entity.WaitingListEntry, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.WaitingListEntry, error)
	FindAll(ctx context.Context, filters WaitingListFilters, sort string) ([]*entity.WaitingListEntry, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WaitingListEntry, error)
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.WaitingListEntry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WaitingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type waitingListRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWaitingListRepository(db database.PgxIface, log *zap.Logger) WaitingListRepository {
	return &waitingListRepository{
		db:  db,
		log: log.With(zap.String("repository", "waiting_list")),
	}
}

const waitingListColumns = `id, event_id, user_id, user_email, position, status, notified_at,
	created_at, updated_at`

func scanWaitingListEntry(row pgx.Row) (*entity.WaitingListEntry, error) {
	var entry entity.WaitingListEntry
	err := row.Scan(
		&entry.ID,
		&entry.EventID,
		&entry.UserID,
		&entry.UserEmail,
		&entry.Position,
		&entry.Status,
		&entry.NotifiedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *waitingListRepository) Join(ctx context.Context, entry *entity.WaitingListEntry) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// Lock the event row; position assignment below must not race
		// with another join on the same event.
		var eventID uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT id FROM events WHERE id = $1 FOR UPDATE`,
			entry.EventID,
		).Scan(&eventID)

		if err == pgx.ErrNoRows {
			return entity.ErrEventNotFound
		}
		if err != nil {
			return fmt.Errorf("lock event row: %w", err)
		}

		var existing int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM waiting_list WHERE event_id = $1 AND user_id = $2`,
			entry.EventID, entry.UserID,
		).Scan(&existing)
		if err != nil {
			return fmt.Errorf("check waiting list membership: %w", err)
		}
		if existing > 0 {
			return entity.ErrAlreadyOnList
		}

		// Join sequence number: one past the highest position ever
		// assigned. Never renumbered when earlier entries leave, and a
		// join after a removal must not reuse a live position.
		var highest int
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(position), 0) FROM waiting_list WHERE event_id = $1`,
			entry.EventID,
		).Scan(&highest)
		if err != nil {
			return fmt.Errorf("read highest waiting list position: %w", err)
		}

		entry.Position = highest + 1

		_, err = tx.Exec(ctx,
			`INSERT INTO waiting_list (id, event_id, user_id, user_email, position, status,
			                           notified_at, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			entry.ID,
			entry.EventID,
			entry.UserID,
			entry.UserEmail,
			entry.Position,
			entry.Status,
			entry.NotifiedAt,
			entry.CreatedAt,
			entry.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert waiting list entry: %w", err)
		}

		return nil
	})
}

func (r *waitingListRepository) PromoteNext(ctx context.Context, eventID uuid.UUID) (*entity.WaitingListEntry, error) {
	var promoted *entity.WaitingListEntry

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		entry, err := scanWaitingListEntry(tx.QueryRow(ctx,
			`SELECT `+waitingListColumns+`
			 FROM waiting_list
			 WHERE event_id = $1 AND status = 'waiting'
			 ORDER BY position
			 LIMIT 1
			 FOR UPDATE`,
			eventID,
		))

		if err == pgx.ErrNoRows {
			// Empty list is a no-op, not an error.
			return nil
		}
		if err != nil {
			return fmt.Errorf("find next waiting entry: %w", err)
		}

		now := time.Now()
		_, err = tx.Exec(ctx,
			`UPDATE waiting_list SET status = $2, notified_at = $3, updated_at = $3 WHERE id = $1`,
			entry.ID, entity.WaitingStatusNotified, now,
		)
		if err != nil {
			return fmt.Errorf("promote waiting list entry %s: %w", entry.ID.String(), err)
		}

		entry.Status = entity.WaitingStatusNotified
		entry.NotifiedAt = &now
		promoted = entry
		return nil
	})

	if err != nil {
		r.log.Error("Failed to promote next waiting entry",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, err
	}

	return promoted, nil
}

func (r *waitingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WaitingListEntry, error) {
	query := `SELECT ` + waitingListColumns + ` FROM waiting_list WHERE id = $1`

	entry, err := scanWaitingListEntry(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find waiting list entry",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("find waiting list entry %s: %w", id.String(), err)
	}

	return entry, nil
}

func (r *waitingListRepository) FindAll(ctx context.Context, filters WaitingListFilters, sortKey string) ([]*entity.WaitingListEntry, error) {
	query := `SELECT ` + waitingListColumns + ` FROM waiting_list WHERE 1=1`
	var args []any

	if filters.EventID != nil {
		args = append(args, *filters.EventID)
		query += fmt.Sprintf(" AND event_id = $%d", len(args))
	}

	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += ` ORDER BY ` + sortClause(sortKey, "position", map[string]string{
		"position":   "position",
		"status":     "status",
		"created_at": "created_at",
	})

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list waiting list entries", zap.Error(err))
		return nil, fmt.Errorf("list waiting list entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.WaitingListEntry
	for rows.Next() {
		entry, err := scanWaitingListEntry(rows)
		if err != nil {
			r.log.Error("Failed to scan waiting list row", zap.Error(err))
			return nil, fmt.Errorf("scan waiting list row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *waitingListRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WaitingListEntry, error) {
	query := `SELECT ` + waitingListColumns + ` FROM waiting_list WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find waiting list entries by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find waiting list entries for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.WaitingListEntry
	for rows.Next() {
		entry, err := scanWaitingListEntry(rows)
		if err != nil {
			r.log.Error("Failed to scan waiting list row", zap.Error(err))
			return nil, fmt.Errorf("scan waiting list row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *waitingListRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.WaitingListEntry, error) {
	query := `SELECT ` + waitingListColumns + ` FROM waiting_list WHERE event_id = $1 AND user_id = $2`

	entry, err := scanWaitingListEntry(r.db.QueryRow(ctx, query, eventID, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find waiting list entry by event and user",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find waiting list entry: %w", err)
	}

	return entry, nil
}

func (r *waitingListRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.WaitingStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE waiting_list SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		r.log.Error("Failed to update waiting list status",
			zap.Error(err),
			zap.String("entry_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update waiting list entry %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrWaitlistNotFound
	}

	return nil
}

func (r *waitingListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM waiting_list WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete waiting list entry",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return fmt.Errorf("delete waiting list entry %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrWaitlistNotFound
	}

	return nil
}
