package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
	"investgrow.backend/pkg/crypto"
)

// UserUsecase handles profile business logic
type UserUsecase struct {
	userRepo repositories.UserRepository
	sessions SessionStore
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, sessions SessionStore) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// GetProfile returns the user's own profile
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile update. Only supplied fields
// change.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	updates := map[string]interface{}{}

	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Phone != nil {
		existing, err := u.userRepo.GetByPhone(ctx, *input.Phone)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, domainerrors.Conflict("Phone number already in use")
		}
		updates["phone"] = *input.Phone
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid date of birth")
		}
		updates["date_of_birth"] = dob
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}

	if len(updates) > 0 {
		if err := u.userRepo.UpdateProfile(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return u.userRepo.GetByID(ctx, userID)
}

// ChangePassword verifies the current password before setting the new
// one, then drops the refresh session so stolen refresh tokens die with
// the old password.
func (u *UserUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.Unauthorized("Incorrect current password")
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	return u.sessions.Delete(ctx, userID.String())
}
