package model

import "time"

// Worker mirrors the worker_accounts table.  Every worker belongs to exactly
// one admin; the admin id is the scope under which the worker's bookings are
// recorded.
type Worker struct {
	WorkerID     string    // worker_accounts.worker_id
	AdminID      string    // worker_accounts.admin_id
	UserName     string    // worker_accounts.user_name
	FullName     string    // worker_accounts.full_name
	PasswordHash string    // worker_accounts.password_hash (bcrypt)
	CreatedAt    time.Time // worker_accounts.created_at
	UpdatedAt    time.Time // worker_accounts.updated_at
}
