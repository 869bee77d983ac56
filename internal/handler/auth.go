package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hall-booking/internal/config"
	"github.com/iliyamo/hall-booking/internal/model"
	"github.com/iliyamo/hall-booking/internal/repository"
	"github.com/iliyamo/hall-booking/internal/utils"
)

// WorkerAccounts is the credential lookup surface the login endpoint
// depends on.
type WorkerAccounts interface {
	GetByUsername(ctx context.Context, username string) (model.Worker, error)
}

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg     config.Config
	Workers WorkerAccounts
}

func NewAuthHandler(cfg config.Config, w WorkerAccounts) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Workers: w}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// CheckLogin verifies a username/password pair against the stored bcrypt
// hash and returns the worker's identity plus an access token. An unknown
// username and a wrong password produce the same response so account
// existence is not leaked.
func (h *AuthHandler) CheckLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || strings.TrimSpace(req.Password) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	w, err := h.Workers.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(w.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, w.WorkerID, w.AdminID, w.FullName, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Login successful",
		"worker_id": w.WorkerID,
		"admin_id":  w.AdminID,
		"name":      w.FullName,
		"access":    tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
