package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-booking/internal/model"
	"github.com/iliyamo/hall-booking/internal/queue"
	"github.com/iliyamo/hall-booking/internal/repository"
)

// BookingStore is the ledger surface the booking endpoints depend on. The
// MySQL implementation lives in the repository package; tests substitute a
// fake.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	CreateBatch(ctx context.Context, bs []*model.Booking) error
	Checkout(ctx context.Context, id uint64, outTime string, status model.Status) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	ListActiveByWorker(ctx context.Context, workerID string) ([]model.BookingSummary, error)
}

// BookingHandler bundles the ledger store and an optional event publisher.
// Publish is best-effort: a nil publisher or a publish failure never affects
// the request outcome because the booking is already committed.
type BookingHandler struct {
	Store   BookingStore
	Publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(s BookingStore) *BookingHandler {
	if s == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Store: s}
}

// bookingReq is the wire shape shared by both create entry points. The
// booking_id field is honored only by the online-book endpoint, where the
// client supplies its own id as an idempotency key.
type bookingReq struct {
	BookingID           uint64  `json:"booking_id"`
	WorkerID            string  `json:"worker_id"`
	GuestName           string  `json:"guest_name"`
	PhoneNumber         string  `json:"phone_number"`
	NumberOfPersons     int     `json:"number_of_persons"`
	BookingType         string  `json:"booking_type"`
	TotalHours          int     `json:"total_hours"`
	BookingDate         string  `json:"booking_date"`
	InTime              string  `json:"in_time"`
	OutTime             *string `json:"out_time"`
	ProofType           string  `json:"proof_type"`
	ProofID             string  `json:"proof_id"`
	PricePerPersonCents int64   `json:"price_per_person_cents"`
	TotalAmountCents    int64   `json:"total_amount_cents"`
	PaidAmountCents     int64   `json:"paid_amount_cents"`
	BalanceAmountCents  int64   `json:"balance_amount_cents"`
	PaymentMethod       string  `json:"payment_method"`
	Status              string  `json:"status"`
}

// validate rejects malformed requests before any storage access. Phone
// numbers and proof ids are stored verbatim; amounts are accepted as
// supplied and only checked for sign.
func (r *bookingReq) validate() string {
	switch {
	case strings.TrimSpace(r.WorkerID) == "":
		return "worker_id is required"
	case strings.TrimSpace(r.GuestName) == "":
		return "guest_name is required"
	case strings.TrimSpace(r.PhoneNumber) == "":
		return "phone_number is required"
	case r.NumberOfPersons < 1:
		return "number_of_persons must be positive"
	case strings.TrimSpace(r.BookingType) == "":
		return "booking_type is required"
	case r.TotalHours < 1:
		return "total_hours must be positive"
	case !model.ValidBookingDate(r.BookingDate):
		return "booking_date must be YYYY-MM-DD"
	case !model.ValidClockTime(r.InTime):
		return "in_time must be HH:MM:SS"
	case r.OutTime != nil && !model.ValidClockTime(*r.OutTime):
		return "out_time must be HH:MM:SS"
	case strings.TrimSpace(r.ProofType) == "":
		return "proof_type is required"
	case strings.TrimSpace(r.ProofID) == "":
		return "proof_id is required"
	case r.PricePerPersonCents < 0 || r.TotalAmountCents < 0 || r.PaidAmountCents < 0 || r.BalanceAmountCents < 0:
		return "amounts must not be negative"
	}
	return ""
}

func (r *bookingReq) toModel(withID bool) *model.Booking {
	b := &model.Booking{
		WorkerID:            strings.TrimSpace(r.WorkerID),
		GuestName:           strings.TrimSpace(r.GuestName),
		PhoneNumber:         r.PhoneNumber,
		NumberOfPersons:     r.NumberOfPersons,
		BookingType:         strings.TrimSpace(r.BookingType),
		TotalHours:          r.TotalHours,
		BookingDate:         r.BookingDate,
		InTime:              r.InTime,
		OutTime:             r.OutTime,
		ProofType:           r.ProofType,
		ProofID:             r.ProofID,
		PricePerPersonCents: r.PricePerPersonCents,
		TotalAmountCents:    r.TotalAmountCents,
		PaidAmountCents:     r.PaidAmountCents,
		BalanceAmountCents:  r.BalanceAmountCents,
		PaymentMethod:       r.PaymentMethod,
		Status:              model.Status(strings.TrimSpace(r.Status)),
	}
	if withID {
		b.ID = r.BookingID
	}
	return b
}

// createdPart is the uniform response element for both create endpoints.
type createdPart struct {
	BookingID uint64       `json:"booking_id"`
	AdminID   string       `json:"admin_id"`
	WorkerID  string       `json:"worker_id"`
	Status    model.Status `json:"status"`
}

func (h *BookingHandler) publishCreated(ctx context.Context, b *model.Booking) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(ctx, queue.BookingCreatedEvent{
		BookingID:        b.ID,
		AdminID:          b.AdminID,
		WorkerID:         b.WorkerID,
		GuestName:        b.GuestName,
		NumberOfPersons:  b.NumberOfPersons,
		BookingType:      b.BookingType,
		BookingDate:      b.BookingDate,
		InTime:           b.InTime,
		TotalAmountCents: b.TotalAmountCents,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// CreateBooking handles POST /api/booking/online-book. The client may supply
// its own booking_id (idempotency key); a collision is reported as a
// conflict. The admin id is always derived from the worker id.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := req.toModel(true)
	if err := h.Store.Create(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrWorkerNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid worker_id " + b.WorkerID + ": no admin found"})
		case errors.Is(err, repository.ErrDuplicateBooking):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking_id already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	h.publishCreated(ctx, b)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Booking created successfully",
		"booking": createdPart{BookingID: b.ID, AdminID: b.AdminID, WorkerID: b.WorkerID, Status: b.Status},
	})
}

// CreateBookings handles POST /api/booking/create. The batch runs in one
// transaction: an invalid worker anywhere in the list aborts the call and
// nothing is persisted. Returned elements correspond 1:1 with the submitted
// order.
func (h *BookingHandler) CreateBookings(c echo.Context) error {
	var reqs []bookingReq
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(reqs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no bookings provided"})
	}
	for i := range reqs {
		if msg := reqs[i].validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	bs := make([]*model.Booking, 0, len(reqs))
	for i := range reqs {
		bs = append(bs, reqs[i].toModel(false))
	}
	if err := h.Store.CreateBatch(ctx, bs); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid worker_id in batch: no admin found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create bookings failed"})
	}

	created := make([]createdPart, 0, len(bs))
	for _, b := range bs {
		created = append(created, createdPart{BookingID: b.ID, AdminID: b.AdminID, WorkerID: b.WorkerID, Status: b.Status})
		h.publishCreated(ctx, b)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Bookings created successfully",
		"bookings": created,
	})
}

// Checkout handles PUT /api/booking/checkout. Omitted out_time defaults to
// the current time of day and omitted status defaults to Completed.
func (h *BookingHandler) Checkout(c echo.Context) error {
	var req struct {
		BookingID uint64  `json:"booking_id"`
		OutTime   *string `json:"out_time"`
		Status    string  `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id is required"})
	}
	outTime := time.Now().Format("15:04:05")
	if req.OutTime != nil {
		if !model.ValidClockTime(*req.OutTime) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "out_time must be HH:MM:SS"})
		}
		outTime = *req.OutTime
	}
	status := model.NormalizeStatus(strings.TrimSpace(req.Status), model.StatusCompleted)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Checkout(ctx, req.BookingID, outTime, status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Checkout completed",
		"booking_id": req.BookingID,
		"out_time":   outTime,
		"status":     status,
	})
}

// GetBooking handles GET /api/booking/:id and returns the full record.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// GetActiveBookings handles GET /api/booking/active/:id where :id is a
// worker id. Only bookings whose status is exactly Active are returned,
// newest booking date first; amounts are omitted from the summaries.
func (h *BookingHandler) GetActiveBookings(c echo.Context) error {
	workerID := strings.TrimSpace(c.Param("id"))
	if workerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "worker id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Store.ListActiveByWorker(ctx, workerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, list)
}
