package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

type Service struct {
	users  UserRepository
	tokens TokenRepository
}

func NewService(users UserRepository, tokens TokenRepository) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new alumni account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	// Check if email exists
	existing, _ := s.users.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// The form sends an ISO-8601 registration timestamp; fall back to now
	// when it is absent or malformed.
	registeredAt, err := time.Parse(time.RFC3339, req.RegistrationDate)
	if err != nil {
		registeredAt = time.Now().UTC()
	}

	newUser := &User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            StripPhone(req.Phone),
		Batch:            req.Batch,
		Department:       req.Department,
		Password:         string(hashedPassword),
		RegistrationDate: registeredAt,
	}

	created, err := s.users.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, created)
}

// Login authenticates a user and returns tokens
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(ctx, user)
}

// RefreshAccessToken generates a new access token using refresh token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshTokenString string) (*AuthResponse, error) {
	refreshToken, err := s.tokens.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, refreshToken.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.generateTokenPair(ctx, user)
}

// Logout invalidates refresh token
func (s *Service) Logout(ctx context.Context, refreshTokenString string) error {
	return s.tokens.DeleteRefreshToken(ctx, refreshTokenString)
}

// generateTokenPair creates access and refresh tokens
func (s *Service) generateTokenPair(ctx context.Context, user *User) (*AuthResponse, error) {
	accessToken, err := GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	if err := s.tokens.CreateRefreshToken(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
