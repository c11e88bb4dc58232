package repository

import (
	"context"
	"errors"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by UserRepository.Create when the email
	// unique constraint is violated. The insert is the authoritative
	// uniqueness check; callers must not pre-check with a read.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
}

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	// ListByPostIDs returns the comments of every listed post in a single
	// query, ordered by id.
	ListByPostIDs(ctx context.Context, postIDs []int64) ([]*entity.Comment, error)
}

// Repositories bundles the per-entity repositories of one storage backend.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
}
