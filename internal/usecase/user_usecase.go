package usecase

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// UserProfile is the profile view of the signed-in user.
type UserProfile struct {
	*entity.UserInfo
	IsEmailSignin bool `json:"is_email_signin"`
}

// DirectoryEntry is one row of the user directory.
type DirectoryEntry struct {
	*entity.MemberSummary
	TeamIDs    []uuid.UUID `json:"team_ids"`
	ProjectIDs []uuid.UUID `json:"project_ids"`
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Fullname    string `json:"fullname" validate:"required"`
	PhoneNumber string `json:"phone_number"`
}

// AvatarUpload is an uploaded avatar image.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UserUsecase manages the profile of the signed-in user.
type UserUsecase interface {
	// ListDirectory returns verified users other than the caller with their active memberships.
	ListDirectory(ctx context.Context, userID uuid.UUID) ([]*DirectoryEntry, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserProfile, error)
	ChangeAvatar(ctx context.Context, userID uuid.UUID, avatar string) (*UserProfile, error)
	DeleteAvatar(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	// UploadAvatar stores the image and points the avatar at it.
	UploadAvatar(ctx context.Context, userID uuid.UUID, upload *AvatarUpload) (*UserProfile, error)
}
