package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
	"investgrow.backend/pkg/crypto"
	"investgrow.backend/pkg/jwt"
	"investgrow.backend/pkg/redis"
	"investgrow.backend/pkg/utils"
)

// SessionStore abstracts the server-side refresh session record. A user
// holds at most one active session; issuing a new one replaces the old.
type SessionStore interface {
	Create(ctx context.Context, userID, sessionID string, expiration time.Duration) error
	Validate(ctx context.Context, userID, sessionID string) (bool, error)
	Delete(ctx context.Context, userID string) error
}

var _ SessionStore = (*redis.SessionStore)(nil)

// AuthUsecase handles registration, login and token refresh
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	sessions   SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, sessions SessionStore) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// Register creates a new user account and signs them in.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	// Advisory pre-insert check so the caller learns which field collided.
	existing, err := u.userRepo.GetByEmailOrPhone(ctx, input.Email, input.Phone)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Email == input.Email {
			return nil, domainerrors.Conflict("Email already exists")
		}
		return nil, domainerrors.Conflict("Phone already exists")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		Role:         entities.UserRoleUser,
		KYCStatus:    entities.KYCNotSubmitted,
		IsActive:     true,
	}
	if input.LastName != "" {
		user.LastName = null.StringFrom(input.LastName)
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid date of birth")
		}
		user.DateOfBirth = &dob
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Unique indexes are the authority; the advisory check above can
		// lose a race. gorm does not say which index fired.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Email or phone already exists")
		}
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("Invalid email or password")
	}

	if !user.IsActive {
		return nil, domainerrors.Forbidden("Account is inactive")
	}

	now := time.Now()
	if err := u.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return u.issueTokens(ctx, user)
}

// RefreshToken rotates the token pair. The refresh token must carry the
// session currently on record; anything older has been superseded.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("Invalid refresh token")
	}

	valid, err := u.sessions.Validate(ctx, claims.UserID.String(), claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domainerrors.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.Forbidden("Account is inactive")
	}

	sessionID := utils.GenerateUUIDv7().String()
	if err := u.sessions.Create(ctx, user.ID.String(), sessionID, u.jwtService.RefreshExpiry()); err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role), sessionID)
}

// Logout drops the user's refresh session. Outstanding access tokens
// expire on their own.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	return u.sessions.Delete(ctx, userID.String())
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *AuthUsecase) issueTokens(ctx context.Context, user *entities.User) (*entities.AuthResponse, error) {
	sessionID := utils.GenerateUUIDv7().String()
	if err := u.sessions.Create(ctx, user.ID.String(), sessionID, u.jwtService.RefreshExpiry()); err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role), sessionID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
