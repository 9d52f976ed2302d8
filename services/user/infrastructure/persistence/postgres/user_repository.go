package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wheelhouse/wheelhouse/pkg/database"
	userdomain "github.com/wheelhouse/wheelhouse/services/user/domain"
	"github.com/wheelhouse/wheelhouse/services/user/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Save persists a new user. Returns ErrAccountExists on unique constraint violations.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO users (id, email, phone, password_hash, nickname, avatar, gender, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Phone, user.PasswordHash, user.Nickname,
		user.Avatar, user.Gender, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return userdomain.ErrAccountExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx,
		`SELECT id, email, phone, password_hash, nickname, avatar, gender, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	))
}

// GetByIdentifier looks an account up by email or phone.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx,
		`SELECT id, email, phone, password_hash, nickname, avatar, gender, created_at, updated_at
		 FROM users WHERE email = $1 OR phone = $1`,
		identifier,
	))
}

// Update persists profile changes to an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE users SET nickname = $1, avatar = $2, gender = $3, updated_at = $4
		 WHERE id = $5`,
		user.Nickname, user.Avatar, user.Gender, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Phone, &user.PasswordHash, &user.Nickname,
		&user.Avatar, &user.Gender, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
