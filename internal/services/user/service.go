package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"property_hub/internal/domain"
	"property_hub/internal/lib/logger/sl"
	"property_hub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service handles back-office accounts: registration, login and token
// verification for the admin surface.
type Service struct {
	log      *slog.Logger
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func New(log *slog.Logger, repo UserRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates a back-office account.
func (s *Service) Register(ctx context.Context, email, password, name string, role domain.UserRole) (uuid.UUID, error) {
	const op = "user.Service.Register"

	if _, err := mail.ParseAddress(email); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w: email is invalid", op, ErrInvalidUser)
	}
	if len(password) < 8 {
		return uuid.Nil, fmt.Errorf("%s: %w: password must be at least 8 characters", op, ErrInvalidUser)
	}
	switch role {
	case domain.RoleAdmin, domain.RoleEditor:
	default:
		return uuid.Nil, fmt.Errorf("%s: %w: unknown role %q", op, ErrInvalidUser, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		s.log.Error("failed to create user", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("user_id", id.String()), slog.String("role", role.String()))
	return id, nil
}

// Login checks the credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	const op = "user.Service.Login"

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a bad password so login probing reveals nothing.
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		s.log.Error("failed to get user", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn("login failed", slog.String("email", email))
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return token, nil
}

func (s *Service) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// TokenClaims is the verified identity carried by an admin token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   domain.UserRole
}

// VerifyToken parses and validates a token issued by Login.
func (s *Service) VerifyToken(tokenStr string) (TokenClaims, error) {
	const op = "user.Service.VerifyToken"

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	return TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   domain.UserRole(roleStr),
	}, nil
}
