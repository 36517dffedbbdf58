package model

import "time"

// User represents an account able to authenticate against the API.
// PasswordHash is never serialized.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Surname      *string   `json:"surname"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone"`
	Photo        *string   `json:"photo"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload for profile updates. The update is a
// full overwrite keyed by the current email: optional fields left absent are
// cleared on the stored record, not preserved.
type UpdateProfileRequest struct {
	Email    string  `json:"email" binding:"required,email,max=100"`
	NewEmail string  `json:"new_email" binding:"required,email,max=100"`
	Name     string  `json:"name" binding:"required,max=100"`
	Surname  *string `json:"surname" binding:"omitempty,max=100"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=15"`
	IsAdmin  bool    `json:"is_admin"`
}

// ChangePasswordRequest is the payload for password changes. Password is the
// current credential and must match before NewPassword is stored.
type ChangePasswordRequest struct {
	Email       string `json:"email" binding:"required,email,max=100"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
