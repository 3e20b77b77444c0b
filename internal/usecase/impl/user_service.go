package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"todoez/config"
	"todoez/internal/domain/entity"
	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"
	"todoez/internal/domain/service"
	"todoez/internal/usecase"
	"todoez/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	hasher         service.PasswordHasher
	avatars        service.AvatarStorage
	avatarMaxBytes int64
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	MembershipRepo repository.MembershipRepository
	Hasher         service.PasswordHasher
	Avatars        service.AvatarStorage
	Config         *config.Config
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var maxBytes int64
	if params.Config != nil && params.Config.Avatar != nil {
		maxBytes = params.Config.Avatar.MaxBytes
	}

	return &userService{
		userRepo:       params.UserRepo,
		membershipRepo: params.MembershipRepo,
		hasher:         params.Hasher,
		avatars:        params.Avatars,
		avatarMaxBytes: maxBytes,
		logger:         params.Logger,
	}
}

func (srv *userService) ListDirectory(ctx context.Context, userID uuid.UUID) ([]*usecase.DirectoryEntry, error) {
	users, err := srv.userRepo.ListVerifiedExcept(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	entries := make([]*usecase.DirectoryEntry, 0, len(users))
	byUser := make(map[uuid.UUID]*usecase.DirectoryEntry, len(users))
	userIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		entry := &usecase.DirectoryEntry{
			MemberSummary: user.Summary(),
			TeamIDs:       []uuid.UUID{},
			ProjectIDs:    []uuid.UUID{},
		}
		entries = append(entries, entry)
		byUser[user.ID] = entry
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) == 0 {
		return entries, nil
	}

	for _, scope := range []entity.Scope{entity.ScopeTeam, entity.ScopeProject} {
		memberships, err := srv.membershipRepo.ListActiveByUsers(ctx, scope, userIDs)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s memberships", scope)
		}

		for _, membership := range memberships {
			entry, ok := byUser[membership.UserID]
			if !ok {
				continue
			}
			if scope == entity.ScopeTeam {
				entry.TeamIDs = append(entry.TeamIDs, membership.ScopeID)
			} else {
				entry.ProjectIDs = append(entry.ProjectIDs, membership.ScopeID)
			}
		}
	}

	return entries, nil
}

func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toProfile(user), nil
}

func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasPassword() {
		return errors.WithStack(domainerrors.ErrGoogleAccount)
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrWrongPassword, "current password does not match")
	}
	if input.CurrentPassword == input.NewPassword {
		return errors.WithStack(domainerrors.ErrSamePassword)
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserProfile, error) {
	return srv.editProfile(ctx, userID, func(user *entity.User) {
		user.Fullname = input.Fullname
		user.PhoneNumber = input.PhoneNumber
	})
}

func (srv *userService) ChangeAvatar(ctx context.Context, userID uuid.UUID, avatar string) (*usecase.UserProfile, error) {
	return srv.editProfile(ctx, userID, func(user *entity.User) {
		user.Avatar = avatar
	})
}

func (srv *userService) DeleteAvatar(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	return srv.ChangeAvatar(ctx, userID, "")
}

func (srv *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, upload *usecase.AvatarUpload) (*usecase.UserProfile, error) {
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedMediaType, "content type %q", upload.ContentType)
	}
	if srv.avatarMaxBytes > 0 && int64(len(upload.Data)) > srv.avatarMaxBytes {
		return nil, errors.Wrapf(domainerrors.ErrFileTooLarge, "avatar exceeds %s", util.FormatBytes(srv.avatarMaxBytes))
	}

	if _, err := srv.findUser(ctx, userID); err != nil {
		return nil, err
	}

	key := path.Join("avatars", userID.String(), uuid.New().String()+ext)
	avatarURL, err := srv.avatars.Upload(ctx, key, contentType, upload.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store avatar")
	}

	loggerFor(ctx, srv.logger).Info("Avatar uploaded", slog.String("user_id", userID.String()), slog.String("key", key))

	return srv.ChangeAvatar(ctx, userID, avatarURL)
}

func (srv *userService) editProfile(ctx context.Context, userID uuid.UUID, edit func(*entity.User)) (*usecase.UserProfile, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	edit(user)
	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to update profile")
	}

	return toProfile(user), nil
}

func (srv *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

func toProfile(user *entity.User) *usecase.UserProfile {
	return &usecase.UserProfile{
		UserInfo:      user.Info(),
		IsEmailSignin: user.HasPassword(),
	}
}
