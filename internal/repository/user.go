package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewUserRepo(db DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, full_name, email, password_hash, role, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.FullName, user.Email, user.PasswordHash, user.Role, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT id, full_name, email, password_hash, role, telegram_chat_id, created_at
    		  FROM users
    		  WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
