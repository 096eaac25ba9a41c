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

// BookingFilters narrows FindAll results.
type BookingFilters struct {
	BookingType string
	Status      string
	Date        *time.Time
}

type BookingRepository interface {
	// CreateResourceChecked locks the resource row, scans confirmed
	// bookings for overlaps and inserts the booking in one transaction.
	// Overlaps abort with *entity.ConflictError; the check and the
	// write cannot be interleaved by a concurrent request.
	CreateResourceChecked(ctx context.Context, booking *entity.Booking) error

	// UpdateSlotChecked re-runs the overlap scan excluding the booking
	// itself, then applies the new slot, all inside one transaction.
	UpdateSlotChecked(ctx context.Context, booking *entity.Booking) error

	// RegisterForEvent locks the event row, enforces capacity, bumps
	// registered_count and inserts the registration booking as one
	// atomic unit. Full events abort with entity.ErrEventFull.
	RegisterForEvent(ctx context.Context, booking *entity.Booking) error

	// Cancel flips the booking to cancelled; event registrations also
	// release capacity (floored at zero) in the same transaction.
	// Cancelling twice returns entity.ErrAlreadyCancelled and never
	// double-decrements the counter.
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filters BookingFilters, sort string) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindConfirmedByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_type, event_id, resource_id, date, start_time, end_time,
	purpose, notes, status, created_by, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingType,
		&booking.EventID,
		&booking.ResourceID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedBy,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CreateResourceChecked(ctx context.Context, booking *entity.Booking) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockResources(ctx, tx, []uuid.UUID{*booking.ResourceID}); err != nil {
			return err
		}

		conflicts, err := r.scanSlotConflicts(ctx, tx, booking, nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &entity.ConflictError{Kind: entity.ConflictKindBooking, Bookings: conflicts}
		}

		return insertBooking(ctx, tx, booking)
	})
}

func (r *bookingRepository) UpdateSlotChecked(ctx context.Context, booking *entity.Booking) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockResources(ctx, tx, []uuid.UUID{*booking.ResourceID}); err != nil {
			return err
		}

		excludeID := booking.ID
		conflicts, err := r.scanSlotConflicts(ctx, tx, booking, &excludeID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &entity.ConflictError{Kind: entity.ConflictKindBooking, Bookings: conflicts}
		}

		return updateBooking(ctx, tx, booking)
	})
}

func (r *bookingRepository) RegisterForEvent(ctx context.Context, booking *entity.Booking) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		// Row lock serializes concurrent registrations on the same
		// event so the capacity guard cannot be raced.
		var capacity, registered int
		err := tx.QueryRow(ctx,
			`SELECT capacity, registered_count FROM events WHERE id = $1 FOR UPDATE`,
			*booking.EventID,
		).Scan(&capacity, &registered)

		if err == pgx.ErrNoRows {
			return entity.ErrEventNotFound
		}
		if err != nil {
			return fmt.Errorf("lock event row: %w", err)
		}

		if registered >= capacity {
			return entity.ErrEventFull
		}

		_, err = tx.Exec(ctx,
			`UPDATE events SET registered_count = registered_count + 1, updated_at = NOW() WHERE id = $1`,
			*booking.EventID,
		)
		if err != nil {
			return fmt.Errorf("increment registered_count: %w", err)
		}

		return insertBooking(ctx, tx, booking)
	})
}

func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var cancelled *entity.Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		booking, err := scanBooking(tx.QueryRow(ctx,
			`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
		if err == pgx.ErrNoRows {
			return entity.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("lock booking row: %w", err)
		}

		if booking.Status == entity.BookingStatusCancelled {
			return entity.ErrAlreadyCancelled
		}

		_, err = tx.Exec(ctx,
			`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`,
			id, entity.BookingStatusCancelled,
		)
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		if booking.BookingType == entity.BookingTypeEvent && booking.EventID != nil {
			_, err = tx.Exec(ctx,
				`UPDATE events
				 SET registered_count = GREATEST(registered_count - 1, 0), updated_at = NOW()
				 WHERE id = $1`,
				*booking.EventID,
			)
			if err != nil {
				return fmt.Errorf("release event capacity: %w", err)
			}
		}

		booking.Status = entity.BookingStatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// scanSlotConflicts returns confirmed bookings on the same resource and
// date whose time range overlaps the candidate.
func (r *bookingRepository) scanSlotConflicts(ctx context.Context, tx pgx.Tx, candidate *entity.Booking, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND date = $2 AND status = 'confirmed'
		  AND start_time < $4 AND end_time > $3
	`
	args := []any{*candidate.ResourceID, candidate.Date, candidate.StartTime, candidate.EndTime}

	if excludeID != nil {
		query += ` AND id != $5`
		args = append(args, *excludeID)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan booking conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan conflicting booking: %w", err)
		}
		conflicts = append(conflicts, booking)
	}

	return conflicts, rows.Err()
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filters BookingFilters, sortKey string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	var args []any

	if filters.BookingType != "" {
		args = append(args, filters.BookingType)
		query += fmt.Sprintf(" AND booking_type = $%d", len(args))
	}

	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if filters.Date != nil {
		args = append(args, *filters.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}

	query += ` ORDER BY ` + sortClause(sortKey, "created_at", map[string]string{
		"date":       "date",
		"status":     "status",
		"created_at": "created_at",
	})

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindConfirmedByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date time.Time, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND date = $2 AND status = 'confirmed'
	`
	args := []any{resourceID, date}

	if excludeID != nil {
		query += ` AND id != $3`
		args = append(args, *excludeID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings",
			zap.Error(err),
			zap.String("resource_id", resourceID.String()),
		)
		return nil, fmt.Errorf("find confirmed bookings for resource %s: %w", resourceID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return updateBooking(ctx, tx, booking)
	})
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return err
	}
	return nil
}

// ---------- transaction helpers ----------

func insertBooking(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_type, event_id, resource_id, date, start_time,
		                      end_time, purpose, notes, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.BookingType,
		booking.EventID,
		booking.ResourceID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Purpose,
		booking.Notes,
		booking.Status,
		booking.CreatedBy,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func updateBooking(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET date = $2, start_time = $3, end_time = $4, purpose = $5, notes = $6,
		    status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		booking.ID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Purpose,
		booking.Notes,
		booking.Status,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}
