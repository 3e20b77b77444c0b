package impl

import (
	"io"
	"log/slog"
	"time"

	"todoez/config"
	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			AppBaseURL: "http://localhost:3000",
		},
		Avatar: &config.AvatarConfig{MaxBytes: 1 << 10},
	}
}

func activeMembership(scope entity.Scope, scopeID, userID uuid.UUID, creator bool) *entity.Membership {
	return &entity.Membership{
		ID:        uuid.New(),
		Scope:     scope,
		ScopeID:   scopeID,
		UserID:    userID,
		IsCreator: creator,
		State:     entity.ActiveState(),
	}
}

func revokedMembership(scope entity.Scope, scopeID, userID uuid.UUID) *entity.Membership {
	m := activeMembership(scope, scopeID, userID, false)
	m.Revoke(time.Now().Add(-time.Hour))

	return m
}
