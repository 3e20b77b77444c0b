package usecase

import (
	"context"

	"todoez/internal/domain/entity"

	"github.com/google/uuid"
)

// Detail is a team or project together with the caller's creator flag.
type Detail[T any] struct {
	Creator     bool `json:"creator"`
	Information T    `json:"information"`
}

// ProjectWithMembers is a project listing row.
type ProjectWithMembers struct {
	*entity.Project
	Members []*entity.MembershipView `json:"members"`
}

// MemberList is the member listing of a team or project.
type MemberList struct {
	Creator bool                     `json:"creator"`
	List    []*entity.MembershipView `json:"list"`
}

// TeamUsecase manages teams. Update and delete are reserved to the creator.
type TeamUsecase interface {
	// Create stores the team and makes the caller its creator.
	Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Team, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Team, error)
	Get(ctx context.Context, userID, teamID uuid.UUID) (*Detail[*entity.Team], error)
	Update(ctx context.Context, userID, teamID uuid.UUID, name string) (*entity.Team, error)
	// Delete removes the team with its memberships and notes.
	Delete(ctx context.Context, userID, teamID uuid.UUID) error
}

// ProjectUsecase manages projects. Update and delete are reserved to the creator.
type ProjectUsecase interface {
	// Create stores the project and makes the caller its creator.
	Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]*ProjectWithMembers, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*Detail[*entity.Project], error)
	Update(ctx context.Context, userID, projectID uuid.UUID, name string) (*entity.Project, error)
	// Delete removes the project with its memberships, sprints, tasks and comments.
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
	// ShareQR renders a PNG QR code of the project link.
	ShareQR(ctx context.Context, userID, projectID uuid.UUID) ([]byte, error)
}

// MemberUsecase manages the memberships of one scope kind.
type MemberUsecase interface {
	// Add grants membership to the verified user with the given email.
	// A revoked membership is reactivated instead of duplicated.
	Add(ctx context.Context, userID, scopeID uuid.UUID, email string) (*entity.MembershipView, error)
	// List returns every membership, revoked ones included.
	List(ctx context.Context, userID, scopeID uuid.UUID) (*MemberList, error)
	// Remove revokes an active membership other than the caller's own.
	Remove(ctx context.Context, userID, scopeID, membershipID uuid.UUID) error
}

// TeamMemberUsecase is the MemberUsecase of teams.
type TeamMemberUsecase interface {
	MemberUsecase
}

// ProjectMemberUsecase is the MemberUsecase of projects.
type ProjectMemberUsecase interface {
	MemberUsecase
}
