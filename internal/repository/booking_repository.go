package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/hall-booking/internal/model"
)

// BookingRepo owns booking records and their lifecycle. Every create runs as
// a single transaction that resolves the worker's admin and then inserts, so
// a failed resolution never leaves a row behind. Checkout is an update by id
// with last-write-wins semantics; bookings never reference each other so no
// cross-booking locking is needed.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `booking_id, admin_id, worker_id, guest_name, phone_number, number_of_persons,
	booking_type, total_hours, booking_date, in_time, out_time,
	proof_type, proof_id, price_per_person_cents, total_amount_cents, paid_amount_cents,
	balance_amount_cents, payment_method, status, created_at, updated_at`

// Create inserts one booking. The admin id is always derived from the
// worker id inside the transaction; any client-supplied admin id is ignored.
// When b.ID is zero the store assigns the next id, otherwise the given id is
// used and a collision returns ErrDuplicateBooking. On success b is updated
// with the assigned id, resolved admin id, effective status and timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertBookingTx(ctx, tx, b); err != nil {
		return err
	}
	return tx.Commit()
}

// CreateBatch inserts the bookings in submitted order within one
// transaction. If any worker id fails to resolve or any insert fails, the
// whole batch is rolled back and nothing is persisted.
func (r *BookingRepo) CreateBatch(ctx context.Context, bs []*model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, b := range bs {
		if err := insertBookingTx(ctx, tx, b); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// insertBookingTx resolves the owning admin for b.WorkerID and inserts the
// record, populating b with the stored values.
func insertBookingTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	var adminID string
	err := tx.QueryRowContext(ctx,
		"SELECT admin_id FROM worker_accounts WHERE worker_id=? LIMIT 1",
		b.WorkerID).Scan(&adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWorkerNotFound
		}
		return err
	}
	b.AdminID = adminID
	b.Status = model.NormalizeStatus(string(b.Status), model.StatusActive)
	if b.PaymentMethod == "" {
		b.PaymentMethod = "Cash"
	}

	const insert = `INSERT INTO bookings
		(admin_id, worker_id, guest_name, phone_number, number_of_persons,
		 booking_type, total_hours, booking_date, in_time, out_time,
		 proof_type, proof_id, price_per_person_cents, total_amount_cents, paid_amount_cents,
		 balance_amount_cents, payment_method, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	const insertWithID = `INSERT INTO bookings
		(booking_id, admin_id, worker_id, guest_name, phone_number, number_of_persons,
		 booking_type, total_hours, booking_date, in_time, out_time,
		 proof_type, proof_id, price_per_person_cents, total_amount_cents, paid_amount_cents,
		 balance_amount_cents, payment_method, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var outTime sql.NullString
	if b.OutTime != nil {
		outTime = sql.NullString{String: *b.OutTime, Valid: true}
	}
	args := []interface{}{
		b.AdminID, b.WorkerID, b.GuestName, b.PhoneNumber, b.NumberOfPersons,
		b.BookingType, b.TotalHours, b.BookingDate, b.InTime, outTime,
		b.ProofType, b.ProofID, b.PricePerPersonCents, b.TotalAmountCents, b.PaidAmountCents,
		b.BalanceAmountCents, b.PaymentMethod, string(b.Status),
	}

	if b.ID == 0 {
		res, err := tx.ExecContext(ctx, insert, args...)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		b.ID = uint64(id)
	} else {
		withID := append([]interface{}{b.ID}, args...)
		if _, err := tx.ExecContext(ctx, insertWithID, withID...); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "1062") {
				return ErrDuplicateBooking
			}
			return err
		}
	}

	// Read the row back so server-managed timestamps are populated.
	return tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM bookings WHERE booking_id=?",
		b.ID).Scan(&b.CreatedAt, &b.UpdatedAt)
}

// Checkout sets the out time and status of a booking and bumps the updated
// timestamp. It returns ErrBookingNotFound when no row matches. Re-checkout
// of an already completed booking overwrites the previous values.
func (r *BookingRepo) Checkout(ctx context.Context, id uint64, outTime string, status model.Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET out_time=?, status=?, updated_at=CURRENT_TIMESTAMP WHERE booking_id=?",
		outTime, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected can also be zero when the update is a no-op on MySQL;
		// distinguish a missing row with an existence check.
		var exists int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM bookings WHERE booking_id=?", id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}
	}
	return nil
}

// GetByID returns the full stored record or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	var (
		b       model.Booking
		date    time.Time
		outTime sql.NullString
		status  string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_id=?`, id).Scan(
		&b.ID, &b.AdminID, &b.WorkerID, &b.GuestName, &b.PhoneNumber, &b.NumberOfPersons,
		&b.BookingType, &b.TotalHours, &date, &b.InTime, &outTime,
		&b.ProofType, &b.ProofID, &b.PricePerPersonCents, &b.TotalAmountCents, &b.PaidAmountCents,
		&b.BalanceAmountCents, &b.PaymentMethod, &status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	// DATE columns come back as time.Time under parseTime=true.
	b.BookingDate = date.Format("2006-01-02")
	if outTime.Valid {
		s := outTime.String
		b.OutTime = &s
	}
	b.Status = model.Status(status)
	return &b, nil
}

// ListActiveByWorker returns summaries of bookings whose status is exactly
// Active for the given worker, newest booking date first.
func (r *BookingRepo) ListActiveByWorker(ctx context.Context, workerID string) ([]model.BookingSummary, error) {
	const q = `SELECT booking_id, guest_name, phone_number, booking_date, in_time, status
	           FROM bookings
	           WHERE status = 'Active' AND worker_id = ?
	           ORDER BY booking_date DESC`
	rows, err := r.db.QueryContext(ctx, q, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.BookingSummary, 0)
	for rows.Next() {
		var (
			s      model.BookingSummary
			date   time.Time
			status string
		)
		if err := rows.Scan(&s.ID, &s.GuestName, &s.PhoneNumber, &date, &s.InTime, &status); err != nil {
			return nil, err
		}
		s.BookingDate = date.Format("2006-01-02")
		s.Status = model.Status(status)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
