package auth

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a registered alumni account.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               int       `bun:"id,pk,autoincrement" json:"id"`
	FirstName        string    `bun:"first_name,notnull" json:"firstName"`
	LastName         string    `bun:"last_name,notnull" json:"lastName"`
	Email            string    `bun:"email,unique,notnull" json:"email"`
	Phone            string    `bun:"phone,notnull" json:"phone"`
	Batch            string    `bun:"batch,notnull" json:"batch"`
	Department       string    `bun:"department,notnull" json:"department"`
	Password         string    `bun:"password,notnull" json:"-"`
	RegistrationDate time.Time `bun:"registration_date,notnull" json:"registrationDate"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// RefreshToken stores refresh tokens in database
type RefreshToken struct {
	bun.BaseModel `bun:"table:refresh_tokens,alias:rt"`

	ID        int       `bun:"id,pk,autoincrement"`
	UserID    int       `bun:"user_id,notnull"`
	Token     string    `bun:"token,unique,notnull"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the request body for registration. ConfirmPassword and
// Terms travel with the form payload so the ordered validation in validate.go
// can apply the same rules the registration form enforces.
type RegisterRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Batch            string `json:"batch"`
	Department       string `json:"department"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
	Terms            bool   `json:"terms"`
	RegistrationDate string `json:"registrationDate"`
}

// RefreshRequest is the request body for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is the response for successful authentication
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
