// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and opens a session for it.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	srv.log(ctx).Info("Registering user", slog.String("username", username))

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject taken identifiers up front for a friendly error. Only the
		// username is backed by a unique constraint; the email check is
		// advisory, since profile updates may later duplicate an address.
		if _, err := userRepo.FindByUsername(ctx, username); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username taken")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Hash the password and create the account.
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			Username:     username,
			Email:        email,
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Open the first session.
		out, err := srv.openSession(ctx, repoFactory.RefreshTokenRepo(), user)
		if err != nil {
			return err
		}
		output = out

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	return output, nil
}

// Login verifies the credentials and opens a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)

	srv.log(ctx).Info("Logging in", slog.String("username", username))

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Same error as a wrong password; existence is not leaked.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		out, err := srv.openSession(ctx, repoFactory.RefreshTokenRepo(), user)
		if err != nil {
			return err
		}
		output = out

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	return output, nil
}

// Refresh rotates a refresh token: the presented session is revoked and a new
// pair is issued.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Refreshing session")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "token validation failed")
	}

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		tokenHash := hashToken(input.RefreshToken)

		if _, err := refreshRepo.FindByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// Rotation: the presented token is single-use.
		if err := refreshRepo.DeleteByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke session")
		}

		out, err := srv.openSession(ctx, refreshRepo, user)
		if err != nil {
			return err
		}
		output = out

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return output, nil
}

// Logout revokes the presented refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Logging out")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RefreshTokenRepo().DeleteByHash(ctx, hashToken(input.RefreshToken)); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session not found")
			}

			return errors.Wrap(err, "failed to revoke session")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	return nil
}

// openSession issues a token pair for the user and persists the refresh-token
// hash as the session record.
func (srv *userService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
	}
	if err := refreshRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return &usecase.AuthOutput{
		User:         usecase.NewUserView(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// hashToken stores only a digest of the refresh token; the plaintext never
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
