package model

import "time"

// Status classifies the lifecycle state of a booking.  The system knows two
// built-in states: Active (guest checked in, hall occupied) and Completed
// (guest checked out).  Admins may define their own labels, which are carried
// verbatim; any status other than Active is treated as terminal for listing
// purposes.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// NormalizeStatus trims the raw client-supplied status and falls back to the
// given default when it is blank.  Custom admin-defined labels pass through
// unchanged.
func NormalizeStatus(raw string, def Status) Status {
	if raw == "" {
		return def
	}
	return Status(raw)
}

// IsTerminal reports whether no further lifecycle transition is modeled for
// the status.  Only Active bookings appear in the active listing and only
// Active bookings are expected to be checked out.
func (s Status) IsTerminal() bool { return s != StatusActive }

// Booking mirrors the bookings table.  Monetary fields are integer cents to
// keep arithmetic exact.  BookingDate is a YYYY-MM-DD date and the in/out
// times are HH:MM:SS clock readings; OutTime is nil until checkout.
type Booking struct {
	ID                  uint64    `json:"booking_id"`
	AdminID             string    `json:"admin_id"`
	WorkerID            string    `json:"worker_id"`
	GuestName           string    `json:"guest_name"`
	PhoneNumber         string    `json:"phone_number"`
	NumberOfPersons     int       `json:"number_of_persons"`
	BookingType         string    `json:"booking_type"`
	TotalHours          int       `json:"total_hours"`
	BookingDate         string    `json:"booking_date"`
	InTime              string    `json:"in_time"`
	OutTime             *string   `json:"out_time"`
	ProofType           string    `json:"proof_type"`
	ProofID             string    `json:"proof_id"`
	PricePerPersonCents int64     `json:"price_per_person_cents"`
	TotalAmountCents    int64     `json:"total_amount_cents"`
	PaidAmountCents     int64     `json:"paid_amount_cents"`
	BalanceAmountCents  int64     `json:"balance_amount_cents"`
	PaymentMethod       string    `json:"payment_method"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BookingSummary is the trimmed row returned by the active-bookings listing.
// Amounts are intentionally omitted.
type BookingSummary struct {
	ID          uint64 `json:"booking_id"`
	GuestName   string `json:"guest_name"`
	PhoneNumber string `json:"phone_number"`
	BookingDate string `json:"booking_date"`
	InTime      string `json:"in_time"`
	Status      Status `json:"status"`
}

// ValidBookingDate reports whether s is a YYYY-MM-DD date.
func ValidBookingDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidClockTime reports whether s is an HH:MM:SS time-of-day.
func ValidClockTime(s string) bool {
	_, err := time.Parse("15:04:05", s)
	return err == nil
}
