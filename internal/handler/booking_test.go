package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-booking/internal/model"
	"github.com/iliyamo/hall-booking/internal/repository"
)

// fakeBookingStore implements BookingStore with overridable function fields
// so each test controls exactly the calls it cares about.
type fakeBookingStore struct {
	createFn      func(ctx context.Context, b *model.Booking) error
	createBatchFn func(ctx context.Context, bs []*model.Booking) error
	checkoutFn    func(ctx context.Context, id uint64, outTime string, status model.Status) error
	getByIDFn     func(ctx context.Context, id uint64) (*model.Booking, error)
	listActiveFn  func(ctx context.Context, workerID string) ([]model.BookingSummary, error)
}

func (f *fakeBookingStore) Create(ctx context.Context, b *model.Booking) error {
	return f.createFn(ctx, b)
}
func (f *fakeBookingStore) CreateBatch(ctx context.Context, bs []*model.Booking) error {
	return f.createBatchFn(ctx, bs)
}
func (f *fakeBookingStore) Checkout(ctx context.Context, id uint64, outTime string, status model.Status) error {
	return f.checkoutFn(ctx, id, outTime, status)
}
func (f *fakeBookingStore) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeBookingStore) ListActiveByWorker(ctx context.Context, workerID string) ([]model.BookingSummary, error) {
	return f.listActiveFn(ctx, workerID)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBookingBody = `{
	"worker_id": "W7",
	"guest_name": "Asha Rao",
	"phone_number": "9876501234",
	"number_of_persons": 4,
	"booking_type": "VIP",
	"total_hours": 3,
	"booking_date": "2026-09-01",
	"in_time": "10:00:00",
	"proof_type": "Aadhar",
	"proof_id": "1234-5678",
	"price_per_person_cents": 50000,
	"total_amount_cents": 200000,
	"paid_amount_cents": 100000,
	"balance_amount_cents": 100000
}`

func TestCreateBookingDerivesAdminAndDefaults(t *testing.T) {
	store := &fakeBookingStore{
		createFn: func(ctx context.Context, b *model.Booking) error {
			if b.WorkerID != "W7" {
				t.Errorf("worker_id = %q, want W7", b.WorkerID)
			}
			// The store resolves the owning admin and assigns the id.
			b.ID = 42
			b.AdminID = "A3"
			b.Status = model.StatusActive
			return nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/online-book", validBookingBody)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Booking createdPart `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Booking.BookingID != 42 || resp.Booking.AdminID != "A3" || resp.Booking.Status != model.StatusActive {
		t.Errorf("unexpected booking part: %+v", resp.Booking)
	}
}

func TestCreateBookingUnknownWorker(t *testing.T) {
	store := &fakeBookingStore{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return repository.ErrWorkerNotFound
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/online-book", validBookingBody)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no admin found") {
		t.Errorf("body = %s, want admin lookup failure message", rec.Body.String())
	}
}

func TestCreateBookingDuplicateID(t *testing.T) {
	store := &fakeBookingStore{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return repository.ErrDuplicateBooking
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/online-book", validBookingBody)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(m map[string]interface{})
		wantMsg string
	}{
		{"missing worker", func(m map[string]interface{}) { m["worker_id"] = " " }, "worker_id is required"},
		{"zero persons", func(m map[string]interface{}) { m["number_of_persons"] = 0 }, "number_of_persons must be positive"},
		{"bad date", func(m map[string]interface{}) { m["booking_date"] = "01-09-2026" }, "booking_date must be YYYY-MM-DD"},
		{"bad in_time", func(m map[string]interface{}) { m["in_time"] = "10am" }, "in_time must be HH:MM:SS"},
		{"negative amount", func(m map[string]interface{}) { m["paid_amount_cents"] = -1 }, "amounts must not be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m map[string]interface{}
			if err := json.Unmarshal([]byte(validBookingBody), &m); err != nil {
				t.Fatalf("seed body: %v", err)
			}
			tc.mutate(m)
			body, _ := json.Marshal(m)

			store := &fakeBookingStore{
				createFn: func(ctx context.Context, b *model.Booking) error {
					t.Fatal("store must not be called for invalid input")
					return nil
				},
			}
			h := NewBookingHandler(store)

			c, rec := newTestContext(http.MethodPost, "/api/booking/online-book", string(body))
			if err := h.CreateBooking(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Errorf("body = %s, want %q", rec.Body.String(), tc.wantMsg)
			}
		})
	}
}

func TestCreateBookingsBatchOrderPreserved(t *testing.T) {
	batch := "[" + validBookingBody + "," + strings.Replace(validBookingBody, `"Asha Rao"`, `"Vikram Shah"`, 1) + "]"

	store := &fakeBookingStore{
		createBatchFn: func(ctx context.Context, bs []*model.Booking) error {
			for i, b := range bs {
				b.ID = uint64(100 + i)
				b.AdminID = "A3"
				b.Status = model.StatusActive
			}
			return nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/create", batch)
	if err := h.CreateBookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Bookings []createdPart `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Bookings) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Bookings))
	}
	if resp.Bookings[0].BookingID != 100 || resp.Bookings[1].BookingID != 101 {
		t.Errorf("results out of order: %+v", resp.Bookings)
	}
}

func TestCreateBookingsBatchAbortsOnUnknownWorker(t *testing.T) {
	batch := "[" + validBookingBody + "]"
	store := &fakeBookingStore{
		createBatchFn: func(ctx context.Context, bs []*model.Booking) error {
			return repository.ErrWorkerNotFound
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/create", batch)
	if err := h.CreateBookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"bookings"`) {
		t.Errorf("no bookings may be reported on an aborted batch: %s", rec.Body.String())
	}
}

func TestCreateBookingsEmptyBatch(t *testing.T) {
	store := &fakeBookingStore{
		createBatchFn: func(ctx context.Context, bs []*model.Booking) error {
			t.Fatal("store must not be called")
			return nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/booking/create", "[]")
	if err := h.CreateBookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCheckoutDefaults(t *testing.T) {
	var gotOut string
	var gotStatus model.Status
	store := &fakeBookingStore{
		checkoutFn: func(ctx context.Context, id uint64, outTime string, status model.Status) error {
			gotOut, gotStatus = outTime, status
			return nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPut, "/api/booking/checkout", `{"booking_id": 7}`)
	if err := h.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if gotStatus != model.StatusCompleted {
		t.Errorf("status = %q, want Completed", gotStatus)
	}
	if !model.ValidClockTime(gotOut) {
		t.Errorf("defaulted out_time %q is not a clock time", gotOut)
	}
}

func TestCheckoutExplicitValues(t *testing.T) {
	var gotOut string
	var gotStatus model.Status
	store := &fakeBookingStore{
		checkoutFn: func(ctx context.Context, id uint64, outTime string, status model.Status) error {
			gotOut, gotStatus = outTime, status
			return nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPut, "/api/booking/checkout",
		`{"booking_id": 7, "out_time": "18:30:00", "status": "No Show"}`)
	if err := h.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotOut != "18:30:00" {
		t.Errorf("out_time = %q, want 18:30:00", gotOut)
	}
	if gotStatus != model.Status("No Show") {
		t.Errorf("status = %q, want custom label preserved", gotStatus)
	}
}

func TestCheckoutMissingBooking(t *testing.T) {
	store := &fakeBookingStore{
		checkoutFn: func(ctx context.Context, id uint64, outTime string, status model.Status) error {
			return repository.ErrBookingNotFound
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodPut, "/api/booking/checkout", `{"booking_id": 999}`)
	if err := h.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	store := &fakeBookingStore{
		getByIDFn: func(ctx context.Context, id uint64) (*model.Booking, error) {
			return nil, repository.ErrBookingNotFound
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("55")
	if err := h.GetBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetBookingBadID(t *testing.T) {
	h := NewBookingHandler(&fakeBookingStore{})

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.GetBooking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetActiveBookings(t *testing.T) {
	store := &fakeBookingStore{
		listActiveFn: func(ctx context.Context, workerID string) ([]model.BookingSummary, error) {
			if workerID != "W7" {
				t.Errorf("workerID = %q, want W7", workerID)
			}
			return []model.BookingSummary{
				{ID: 2, GuestName: "Asha Rao", BookingDate: "2026-09-02", InTime: "10:00:00", Status: model.StatusActive},
				{ID: 1, GuestName: "Vikram Shah", BookingDate: "2026-09-01", InTime: "09:00:00", Status: model.StatusActive},
			}, nil
		},
	}
	h := NewBookingHandler(store)

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("W7")
	if err := h.GetActiveBookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var list []model.BookingSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(list) != 2 || list[0].ID != 2 {
		t.Errorf("unexpected listing: %+v", list)
	}
	if strings.Contains(rec.Body.String(), "amount") {
		t.Errorf("summaries must not expose amounts: %s", rec.Body.String())
	}
}
