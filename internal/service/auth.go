package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/guregu/null.v4"
)

const (
	minPasswordLen = 6
	passwordCost   = 10
)

type AuthService struct {
	userRepo  ports.UserRepo
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    logger.Logger
}

func NewAuthService(userRepo ports.UserRepo, jwtSecret string, tokenTTL time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: full_name, email and password are required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	// Любая роль кроме OWNER сводится к REGULAR
	role := domain.RoleRegular
	if input.Role == domain.RoleOwner {
		role = domain.RoleOwner
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if input.TelegramChatID != nil {
		user.TelegramChatID = null.IntFrom(*input.TelegramChatID)
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken signs an HS256 token carrying the user's id, email and role.
func (s *AuthService) IssueToken(user *domain.User) (*domain.AuthToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.AuthToken{
		Token:     signed,
		ExpiresAt: expiresAt.UTC(),
		User:      user,
	}, nil
}

func (s *AuthService) ValidateToken(token string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, okSub := claims["sub"].(string)
	role, okRole := claims["role"].(string)
	email, _ := claims["email"].(string)
	if !okSub || !okRole || sub == "" {
		return nil, fmt.Errorf("%w: missing identity claims", domain.ErrTokenInvalid)
	}

	return &domain.Claims{
		UserID: sub,
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}
