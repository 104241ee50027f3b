// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user with their profile, creating an empty profile
// on first visit.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("user_id", userID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		if user.Profile != nil {
			return nil
		}

		// First visit: materialize the empty profile.
		profile := entity.NewProfile(userID)
		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		user.Profile = profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile overwrites the account name/email and every profile field with
// the supplied values. Empty strings are valid overwrites everywhere except
// country, which falls back to the default. Always succeeds for a valid user.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	srv.log(ctx).Info("Updating profile", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.FirstName = strings.TrimSpace(input.FirstName)
		user.LastName = strings.TrimSpace(input.LastName)
		user.Email = strings.TrimSpace(input.Email)
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		country := strings.TrimSpace(input.Country)
		if country == "" {
			country = entity.DefaultCountry
		}

		profile := &entity.Profile{
			UserID:       userID,
			Phone:        strings.TrimSpace(input.Phone),
			AddressLine1: strings.TrimSpace(input.AddressLine1),
			AddressLine2: strings.TrimSpace(input.AddressLine2),
			City:         strings.TrimSpace(input.City),
			State:        strings.TrimSpace(input.State),
			Pincode:      strings.TrimSpace(input.Pincode),
			Country:      country,
		}
		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}
