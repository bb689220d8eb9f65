package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/biasbuster/api/internal/models"
)

// UserStore is the only writer of the users table.
type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user with role "user" and active=true. The email
// pre-check returns ErrEmailTaken; the unique index on users.email is
// the backstop for concurrent registrations.
func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, s.db.Rebind(`
		SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)
	`), email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		Role:      models.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO users (id, email, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), u.ID, u.Email, u.Password, u.Role, u.IsActive, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, s.db.Rebind(`
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = ?
	`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, s.db.Rebind(`
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// Update persists every mutable column and stamps updated_at. Callers
// apply sparse changes to the struct before handing it over.
func (s *UserStore) Update(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.UpdatedAt = &now

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE users
		SET email = ?, password_hash = ?, role = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`), u.Email, u.Password, u.Role, u.IsActive, u.UpdatedAt, u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
