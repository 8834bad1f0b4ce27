package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleRegular Role = "REGULAR"
)

type User struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	TelegramChatID null.Int  `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignUpInput struct {
	FullName       string
	Email          string
	Password       string
	Role           Role
	TelegramChatID *int64
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthToken is issued on successful login.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// Claims are the identity fields carried by an access token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
