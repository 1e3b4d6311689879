package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	// GetByEmailOrPhone resolves the first user matching either field; used
	// as the advisory pre-insert uniqueness check at registration.
	GetByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.User, error)
}
