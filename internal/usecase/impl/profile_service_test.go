package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, logger)

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:       userID,
		Username: "asha",
		Email:    "asha@example.com",
		Profile: &entity.Profile{
			UserID:  userID,
			City:    "Bengaluru",
			Country: entity.DefaultCountry,
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockRepo.NewMockProfileRepository(t))
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_CreatesProfileOnFirstVisit(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:       userID,
		Username: "asha",
		// Profile intentionally nil: the first visit materializes it.
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, userID, profile.UserID)
					assert.Equal(t, entity.DefaultCountry, profile.Country)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, entity.DefaultCountry, user.Profile.Country)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockRepo.NewMockProfileRepository(t))
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "user not found"))

	_, err := fx.service.GetProfile(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		FirstName:    "  Asha ",
		LastName:     "Rao",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
	}
	existingUser := &entity.User{
		ID:       userID,
		Username: "asha",
		Email:    "old@example.com",
	}

	var savedProfile *entity.Profile

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					savedProfile = profile
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Asha", existingUser.FirstName)
	assert.Equal(t, "asha@example.com", existingUser.Email)
	require.NotNil(t, savedProfile)
	assert.Equal(t, "12 MG Road", savedProfile.AddressLine1)
	assert.Equal(t, "560001", savedProfile.Pincode)
}

// Profile updates never check whether the new email already belongs to
// another account: the overwrite is unconditional. The strict mocks fail
// the test if the service sneaks in a FindByEmail lookup.
func TestProfileService_UpdateProfile_EmailSharedWithAnotherAccount(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{Email: "shared@example.com"}
	existingUser := &entity.User{ID: userID, Username: "asha", Email: "asha@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "shared@example.com", existingUser.Email)
}

func TestProfileService_UpdateProfile_EmptyCountryDefaults(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		Email:   "asha@example.com",
		Country: "   ",
	}
	existingUser := &entity.User{ID: userID, Username: "asha"}

	var savedProfile *entity.Profile

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
			mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					savedProfile = profile
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	require.NotNil(t, savedProfile)
	// Blank fields are valid overwrites everywhere except country.
	assert.Equal(t, "", savedProfile.City)
	assert.Equal(t, entity.DefaultCountry, savedProfile.Country)
}

func TestProfileService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{Email: "asha@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(mockRepo.NewMockProfileRepository(t))
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "user not found"))

	err := fx.service.UpdateProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
