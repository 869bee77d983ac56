package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hall-booking/internal/model"
)

// WorkerRepo provides read-only access to worker accounts. The booking flow
// uses it to resolve the admin that owns a worker; login uses it to load the
// stored credential hash.
type WorkerRepo struct{ DB *sql.DB }

func NewWorkerRepo(db *sql.DB) *WorkerRepo { return &WorkerRepo{DB: db} }

// ResolveAdmin returns the admin id owning the given worker. It returns
// ErrWorkerNotFound when no account matches; callers must reject the
// enclosing operation rather than substitute a default admin.
func (r *WorkerRepo) ResolveAdmin(ctx context.Context, workerID string) (string, error) {
	var adminID string
	err := r.DB.QueryRowContext(ctx,
		"SELECT admin_id FROM worker_accounts WHERE worker_id=? LIMIT 1",
		workerID).Scan(&adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrWorkerNotFound
		}
		return "", err
	}
	return adminID, nil
}

// GetByUsername fetches a worker account by normalized username. It returns
// ErrWorkerNotFound when the username is unknown; the login handler folds
// that into the same unauthorized response as a bad password.
func (r *WorkerRepo) GetByUsername(ctx context.Context, username string) (model.Worker, error) {
	username = strings.TrimSpace(username)
	var w model.Worker
	err := r.DB.QueryRowContext(ctx,
		"SELECT worker_id, admin_id, user_name, full_name, password_hash, created_at, updated_at FROM worker_accounts WHERE user_name=? LIMIT 1",
		username).Scan(&w.WorkerID, &w.AdminID, &w.UserName, &w.FullName, &w.PasswordHash, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Worker{}, ErrWorkerNotFound
		}
		return model.Worker{}, err
	}
	return w, nil
}
