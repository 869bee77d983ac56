package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-booking/internal/model"
	"github.com/iliyamo/hall-booking/internal/repository"
)

// ProfileStore is the pricing catalog surface the settings endpoints depend
// on.
type ProfileStore interface {
	GetByAdmin(ctx context.Context, adminID string) (*model.PricingProfile, error)
	ListAll(ctx context.Context) ([]*model.PricingProfile, error)
	Create(ctx context.Context, p *model.PricingProfile) error
	Update(ctx context.Context, p *model.PricingProfile) error
	Delete(ctx context.Context, adminID string) error
}

// SettingsHandler exposes the per-admin pricing profile endpoints.
type SettingsHandler struct {
	Store ProfileStore
}

func NewSettingsHandler(s ProfileStore) *SettingsHandler {
	if s == nil {
		panic("nil store passed to NewSettingsHandler")
	}
	return &SettingsHandler{Store: s}
}

type profileReq struct {
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
}

func (r *profileReq) toModel() *model.PricingProfile {
	return &model.PricingProfile{
		AdminID:                  strings.TrimSpace(r.AdminID),
		AdminName:                strings.TrimSpace(r.AdminName),
		HallName:                 strings.TrimSpace(r.HallName),
		Type1:                    r.Type1,
		Type1AmountCents:         r.Type1AmountCents,
		Type2:                    r.Type2,
		Type2AmountCents:         r.Type2AmountCents,
		Type3:                    r.Type3,
		Type3AmountCents:         r.Type3AmountCents,
		Type4:                    r.Type4,
		Type4AmountCents:         r.Type4AmountCents,
		AdvancePaymentEnabled:    r.AdvancePaymentEnabled,
		DefaultAdvancePercentage: r.DefaultAdvancePercentage,
	}
}

// hallTypesPart is the read contract the booking clients consume: hall name,
// the present (type, amount) pairs in slot order, and the advance-payment
// policy.
type hallTypesPart struct {
	HallName                 string             `json:"hall_name"`
	Types                    []model.TypeAmount `json:"types"`
	AdvancePaymentEnabled    *bool              `json:"advance_payment_enabled"`
	DefaultAdvancePercentage *float64           `json:"default_advance_percentage"`
}

// GetHallTypes handles GET /api/settings/hall-types/:adminId. Slots with a
// missing name or amount are skipped.
func (h *SettingsHandler) GetHallTypes(c echo.Context) error {
	adminID := strings.TrimSpace(c.Param("adminId"))
	if adminID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Store.GetByAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, hallTypesPart{
		HallName:                 p.HallName,
		Types:                    p.TypeAmounts(),
		AdvancePaymentEnabled:    p.AdvancePaymentEnabled,
		DefaultAdvancePercentage: p.DefaultAdvancePercentage,
	})
}

// GetAllHalls handles GET /api/settings/halls and lists every profile with
// its present type pairs.
func (h *SettingsHandler) GetAllHalls(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profiles, err := h.Store.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	type hallPart struct {
		ID        uint64             `json:"id"`
		AdminID   string             `json:"admin_id"`
		AdminName string             `json:"admin_name"`
		HallName  string             `json:"hall_name"`
		Types     []model.TypeAmount `json:"types"`
		CreatedAt time.Time          `json:"created_at"`
		UpdatedAt time.Time          `json:"updated_at"`
	}
	halls := make([]hallPart, 0, len(profiles))
	for _, p := range profiles {
		halls = append(halls, hallPart{
			ID:        p.ID,
			AdminID:   p.AdminID,
			AdminName: p.AdminName,
			HallName:  p.HallName,
			Types:     p.TypeAmounts(),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"halls": halls})
}

// AddHall handles POST /api/settings/halls and creates the profile for an
// admin. Each admin owns at most one profile.
func (h *SettingsHandler) AddHall(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.AdminID) == "" || strings.TrimSpace(req.HallName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin_id and hall_name are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := req.toModel()
	if err := h.Store.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "profile already exists for admin"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create profile failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateHall handles PUT /api/settings/halls/:adminId. Name fields merge
// with the stored values when omitted; type/amount slots and the advance
// policy are replaced wholesale.
func (h *SettingsHandler) UpdateHall(c echo.Context) error {
	adminID := strings.TrimSpace(c.Param("adminId"))
	if adminID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin id is required"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p := req.toModel()
	p.AdminID = adminID

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated", "admin_id": adminID})
}

// DeleteHall handles DELETE /api/settings/halls/:adminId.
func (h *SettingsHandler) DeleteHall(c echo.Context) error {
	adminID := strings.TrimSpace(c.Param("adminId"))
	if adminID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Delete(ctx, adminID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete profile failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
