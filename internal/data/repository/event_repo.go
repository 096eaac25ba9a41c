package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"eventhub/internal/data/entity"
	"eventhub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// EventFilters narrows FindAll results.
type EventFilters struct {
	Category string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}

type EventRepository interface {
	// CreateChecked inserts one or more events (a recurring series is a
	// batch) inside a single transaction. When any event has assigned
	// resources, the resource rows are locked first and the batch is
	// rejected with *entity.ConflictError carrying the full conflict
	// list if any slot overlaps an existing event. Either every event
	// persists or none do.
	CreateChecked(ctx context.Context, events []*entity.Event) error

	// UpdateChecked re-runs the resource conflict check (excluding the
	// event's own id) and applies the update atomically.
	UpdateChecked(ctx context.Context, event *entity.Event) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, filters EventFilters, sort string) ([]*entity.Event, error)
	FindByDate(ctx context.Context, date time.Time) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, title, description, category, date, start_time, end_time, location,
	capacity, registered_count, status, is_recurring, recurrence_pattern,
	recurrence_end_date, series_id, assigned_resource_ids, created_by, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.Capacity,
		&event.RegisteredCount,
		&event.Status,
		&event.IsRecurring,
		&event.RecurrencePattern,
		&event.RecurrenceEndDate,
		&event.SeriesID,
		&event.AssignedResourceIDs,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) CreateChecked(ctx context.Context, events []*entity.Event) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockResources(ctx, tx, resourceUnion(events)); err != nil {
			return err
		}

		var conflicts []entity.ResourceConflict
		for _, event := range events {
			found, err := r.scanConflicts(ctx, tx, event, nil)
			if err != nil {
				return err
			}
			conflicts = mergeConflicts(conflicts, found)
		}

		if len(conflicts) > 0 {
			return &entity.ConflictError{Kind: entity.ConflictKindEvent, Resources: conflicts}
		}

		for _, event := range events {
			if err := insertEvent(ctx, tx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *eventRepository) UpdateChecked(ctx context.Context, event *entity.Event) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockResources(ctx, tx, resourceUnion([]*entity.Event{event})); err != nil {
			return err
		}

		excludeID := event.ID
		found, err := r.scanConflicts(ctx, tx, event, &excludeID)
		if err != nil {
			return err
		}
		if len(found) > 0 {
			return &entity.ConflictError{Kind: entity.ConflictKindEvent, Resources: found}
		}

		return updateEvent(ctx, tx, event)
	})
}

// scanConflicts finds events on the same date whose assigned resources
// and time range collide with the candidate. Cancelled events hold no
// resources, matching the advisory check. Runs inside the caller's
// transaction so the result stays valid until commit.
func (r *eventRepository) scanConflicts(ctx context.Context, tx pgx.Tx, candidate *entity.Event, excludeID *uuid.UUID) ([]entity.ResourceConflict, error) {
	var conflicts []entity.ResourceConflict

	for _, resourceID := range candidate.AssignedResourceIDs {
		query := `
			SELECT ` + eventColumns + `
			FROM events
			WHERE date = $1 AND $2 = ANY(assigned_resource_ids)
			  AND start_time < $4 AND end_time > $3
			  AND status != 'cancelled'
		`
		args := []any{candidate.Date, resourceID, candidate.StartTime, candidate.EndTime}

		if excludeID != nil {
			query += ` AND id != $5`
			args = append(args, *excludeID)
		}

		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("scan event conflicts for resource %s: %w", resourceID.String(), err)
		}

		var conflicting []*entity.Event
		for rows.Next() {
			event, err := scanEvent(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan conflicting event: %w", err)
			}
			conflicting = append(conflicting, event)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("scan event conflicts: %w", err)
		}

		if len(conflicting) > 0 {
			conflicts = append(conflicts, entity.ResourceConflict{
				ResourceID:        resourceID.String(),
				ConflictingEvents: conflicting,
			})
		}
	}

	return conflicts, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filters EventFilters, sortKey string) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	var args []any

	if filters.Category != "" {
		args = append(args, filters.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if filters.DateFrom != nil {
		args = append(args, *filters.DateFrom)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}

	if filters.DateTo != nil {
		args = append(args, *filters.DateTo)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	query += ` ORDER BY ` + sortClause(sortKey, "date", map[string]string{
		"date":       "date",
		"title":      "title",
		"category":   "category",
		"capacity":   "capacity",
		"created_at": "created_at",
	})

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *eventRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE date = $1 ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find events by date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find events on %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return updateEvent(ctx, tx, event)
	})
	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return err
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrEventNotFound
	}

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}

// ---------- transaction helpers ----------

// lockResources takes FOR UPDATE row locks on the given resources in a
// stable order so concurrent writers serialize instead of deadlocking.
// Returns ErrResourceNotFound for missing rows and ErrResourceUnavailable
// for resources flagged out of service.
func lockResources(ctx context.Context, tx pgx.Tx, resourceIDs []uuid.UUID) error {
	for _, id := range resourceIDs {
		var available bool
		err := tx.QueryRow(ctx,
			`SELECT available FROM resources WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(&available)

		if err == pgx.ErrNoRows {
			return entity.ErrResourceNotFound
		}
		if err != nil {
			return fmt.Errorf("lock resource %s: %w", id.String(), err)
		}

		if !available {
			return entity.ErrResourceUnavailable
		}
	}

	return nil
}

// resourceUnion returns the distinct resource ids across the batch,
// sorted for stable lock ordering.
func resourceUnion(events []*entity.Event) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID

	for _, event := range events {
		for _, id := range event.AssignedResourceIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func mergeConflicts(into, found []entity.ResourceConflict) []entity.ResourceConflict {
	for _, conflict := range found {
		merged := false
		for i := range into {
			if into[i].ResourceID == conflict.ResourceID {
				into[i].ConflictingEvents = append(into[i].ConflictingEvents, conflict.ConflictingEvents...)
				merged = true
				break
			}
		}
		if !merged {
			into = append(into, conflict)
		}
	}
	return into
}

func insertEvent(ctx context.Context, tx pgx.Tx, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, category, date, start_time, end_time,
		                    location, capacity, registered_count, status, is_recurring,
		                    recurrence_pattern, recurrence_end_date, series_id,
		                    assigned_resource_ids, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := tx.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.Capacity,
		event.RegisteredCount,
		event.Status,
		event.IsRecurring,
		event.RecurrencePattern,
		event.RecurrenceEndDate,
		event.SeriesID,
		event.AssignedResourceIDs,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert event %s: %w", event.Title, err)
	}

	return nil
}

func updateEvent(ctx context.Context, tx pgx.Tx, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, category = $4, date = $5, start_time = $6,
		    end_time = $7, location = $8, capacity = $9, registered_count = $10,
		    status = $11, assigned_resource_ids = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Category,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.Capacity,
		event.RegisteredCount,
		event.Status,
		event.AssignedResourceIDs,
		event.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}
