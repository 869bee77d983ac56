package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hall-booking/internal/model"
)

// ProfileRepo persists per-admin pricing profiles (the settings table). The
// table carries a uniqueness constraint on admin_id, so each admin owns at
// most one profile.
type ProfileRepo struct{ db *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

const profileColumns = `id, admin_id, admin_name, hall_name,
	type1, type1_amount_cents, type2, type2_amount_cents,
	type3, type3_amount_cents, type4, type4_amount_cents,
	advance_payment_enabled, default_advance_percentage, created_at, updated_at`

func scanProfile(row interface {
	Scan(dest ...interface{}) error
}) (*model.PricingProfile, error) {
	var (
		p       model.PricingProfile
		enabled sql.NullBool
		pct     sql.NullFloat64
	)
	err := row.Scan(
		&p.ID, &p.AdminID, &p.AdminName, &p.HallName,
		&p.Type1, &p.Type1AmountCents, &p.Type2, &p.Type2AmountCents,
		&p.Type3, &p.Type3AmountCents, &p.Type4, &p.Type4AmountCents,
		&enabled, &pct, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if enabled.Valid {
		v := enabled.Bool
		p.AdvancePaymentEnabled = &v
	}
	if pct.Valid {
		v := pct.Float64
		p.DefaultAdvancePercentage = &v
	}
	return &p, nil
}

// GetByAdmin returns the profile owned by the admin or ErrProfileNotFound.
func (r *ProfileRepo) GetByAdmin(ctx context.Context, adminID string) (*model.PricingProfile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM settings WHERE admin_id=?`, adminID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListAll returns every stored profile ordered by id.
func (r *ProfileRepo) ListAll(ctx context.Context) ([]*model.PricingProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM settings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.PricingProfile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new profile. A second profile for the same admin violates
// the unique key and returns ErrDuplicateProfile.
func (r *ProfileRepo) Create(ctx context.Context, p *model.PricingProfile) error {
	const q = `INSERT INTO settings
		(admin_id, admin_name, hall_name,
		 type1, type1_amount_cents, type2, type2_amount_cents,
		 type3, type3_amount_cents, type4, type4_amount_cents,
		 advance_payment_enabled, default_advance_percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		p.AdminID, p.AdminName, p.HallName,
		p.Type1, p.Type1AmountCents, p.Type2, p.Type2AmountCents,
		p.Type3, p.Type3AmountCents, p.Type4, p.Type4AmountCents,
		p.AdvancePaymentEnabled, p.DefaultAdvancePercentage)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateProfile
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM settings WHERE id=?",
		p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update modifies the admin's profile. Name fields merge COALESCE-style
// (nil keeps the stored value); the four type/amount slots and the
// advance-payment fields are replaced wholesale so a slot can be cleared by
// sending null. Returns ErrProfileNotFound when the admin has no profile.
func (r *ProfileRepo) Update(ctx context.Context, p *model.PricingProfile) error {
	var adminName, hallName *string
	if p.AdminName != "" {
		adminName = &p.AdminName
	}
	if p.HallName != "" {
		hallName = &p.HallName
	}
	const q = `UPDATE settings
		SET admin_name = COALESCE(?, admin_name),
		    hall_name = COALESCE(?, hall_name),
		    type1=?, type1_amount_cents=?, type2=?, type2_amount_cents=?,
		    type3=?, type3_amount_cents=?, type4=?, type4_amount_cents=?,
		    advance_payment_enabled=?, default_advance_percentage=?,
		    updated_at=CURRENT_TIMESTAMP
		WHERE admin_id=?`
	res, err := r.db.ExecContext(ctx, q,
		adminName, hallName,
		p.Type1, p.Type1AmountCents, p.Type2, p.Type2AmountCents,
		p.Type3, p.Type3AmountCents, p.Type4, p.Type4AmountCents,
		p.AdvancePaymentEnabled, p.DefaultAdvancePercentage,
		p.AdminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM settings WHERE admin_id=?", p.AdminID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrProfileNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes the admin's profile or returns ErrProfileNotFound.
func (r *ProfileRepo) Delete(ctx context.Context, adminID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE admin_id=?", adminID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}
