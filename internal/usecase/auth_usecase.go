// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to open a password account.
type SignupInput struct {
	Email       string `json:"email" validate:"required,email"`
	Fullname    string `json:"fullname" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password" validate:"required"`
}

// SigninInput defines the credentials of a password signin.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput is returned by every successful signin.
type SessionOutput struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	UserInfo     *entity.UserInfo `json:"user_info"`
}

// RefreshOutput carries a freshly issued access token.
type RefreshOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase drives account registration, verification and sessions.
type AuthUsecase interface {
	// Signup creates an unverified account and mails a verification link.
	Signup(ctx context.Context, input *SignupInput) error

	// VerifyEmail marks the account verified when the token was issued for it.
	VerifyEmail(ctx context.Context, email, token string) error

	// ForgotPassword mails a password reset link.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword overwrites the password of the account.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// Signin opens a session for a verified password account.
	Signin(ctx context.Context, input *SigninInput) (*SessionOutput, error)

	// GoogleSignin opens a session from a Google ID token, creating the account if needed.
	GoogleSignin(ctx context.Context, googleToken string) (*SessionOutput, error)

	// RefreshToken exchanges the current refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Signout drops the stored refresh token.
	Signout(ctx context.Context, userID uuid.UUID) error
}
