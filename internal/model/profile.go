package model

import "time"

// PricingProfile mirrors the settings table: per-admin hall metadata plus up
// to four priced booking categories stored in fixed slots.  A slot is present
// only when both its name and amount are non-NULL; partial slots are treated
// as absent.  The advance-payment fields are optional policy hints for
// clients computing a deposit.
type PricingProfile struct {
	ID                       uint64   `json:"id"`
	AdminID                  string   `json:"admin_id"`
	AdminName                string   `json:"admin_name"`
	HallName                 string   `json:"hall_name"`
	Type1                    *string  `json:"type1"`
	Type1AmountCents         *int64   `json:"type1_amount_cents"`
	Type2                    *string  `json:"type2"`
	Type2AmountCents         *int64   `json:"type2_amount_cents"`
	Type3                    *string  `json:"type3"`
	Type3AmountCents         *int64   `json:"type3_amount_cents"`
	Type4                    *string  `json:"type4"`
	Type4AmountCents         *int64   `json:"type4_amount_cents"`
	AdvancePaymentEnabled    *bool    `json:"advance_payment_enabled"`
	DefaultAdvancePercentage *float64 `json:"default_advance_percentage"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TypeAmount is one present (category name, unit amount) pair.
type TypeAmount struct {
	Type        string `json:"type"`
	AmountCents int64  `json:"amount_cents"`
}

// TypeAmounts returns the present pairs in declared slot order, skipping any
// slot whose name or amount is missing.
func (p *PricingProfile) TypeAmounts() []TypeAmount {
	slots := []struct {
		name   *string
		amount *int64
	}{
		{p.Type1, p.Type1AmountCents},
		{p.Type2, p.Type2AmountCents},
		{p.Type3, p.Type3AmountCents},
		{p.Type4, p.Type4AmountCents},
	}
	out := make([]TypeAmount, 0, len(slots))
	for _, s := range slots {
		if s.name == nil || s.amount == nil {
			continue
		}
		out = append(out, TypeAmount{Type: *s.name, AmountCents: *s.amount})
	}
	return out
}
