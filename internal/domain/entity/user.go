// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of a person using the tracker.
// A user without a password hash can only sign in through an OAuth provider.
type User struct {
	ID               uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email            string    // Unique login email.
	Fullname         string    // Display name.
	PhoneNumber      string    // Optional contact number.
	Avatar           string    // Avatar URL, empty when unset.
	PasswordHash     string    // bcrypt hash of the password, empty for OAuth-only accounts.
	RefreshTokenHash string    // bcrypt hash of the current refresh token, empty when signed out.
	IsVerify         bool      // Flips once the email verification link is followed.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPassword reports whether the account can sign in with email and password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// SignedIn reports whether a refresh token hash is currently stored.
func (u *User) SignedIn() bool {
	return u.RefreshTokenHash != ""
}

// UserInfo is the public projection of a User. It never carries secrets.
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Fullname    string    `json:"fullname"`
	PhoneNumber string    `json:"phone_number"`
	Avatar      string    `json:"avatar"`
	IsVerify    bool      `json:"is_verify"`
	CreatedAt   time.Time `json:"create_at"`
	UpdatedAt   time.Time `json:"update_at"`
}

// Info strips the password and refresh token hashes.
func (u *User) Info() *UserInfo {
	if u == nil {
		return nil
	}

	return &UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		Fullname:    u.Fullname,
		PhoneNumber: u.PhoneNumber,
		Avatar:      u.Avatar,
		IsVerify:    u.IsVerify,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// MemberSummary is the short user projection embedded in membership listings.
type MemberSummary struct {
	ID       uuid.UUID `json:"id"`
	Fullname string    `json:"fullname"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
}

// Summary returns the short user projection.
func (u *User) Summary() *MemberSummary {
	if u == nil {
		return nil
	}

	return &MemberSummary{
		ID:       u.ID,
		Fullname: u.Fullname,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}
