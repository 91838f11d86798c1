package unit_test

import (
	"context"
	"testing"
	"time"

	"buildease/internal/config"
	"buildease/internal/domain"
	"buildease/internal/repository"
	"buildease/internal/service/auth"
	"buildease/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 720 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer keeps only customer fields", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, nil, testAuthConfig()) // email nil

		location := "Bangalore"
		companyName := "Should Be Dropped"
		input := domain.CreateUserInput{
			Name:        "Alex",
			Email:       "alex@example.com",
			Password:    "supersecret",
			Role:        "customer",
			Location:    &location,
			CompanyName: &companyName,
		}

		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.Role == "customer" &&
				u.Location != nil && *u.Location == "Bangalore" &&
				u.CompanyName == nil
		})).Return(nil).Once()
		mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		user, tokens, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), nil, testAuthConfig())

		mockUserRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once()

		user, tokens, err := svc.Register(ctx, domain.CreateUserInput{
			Name:     "Alex",
			Email:    "taken@example.com",
			Password: "supersecret",
			Role:     "customer",
		})

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		assert.Nil(t, user)
		assert.Nil(t, tokens)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown role", func(t *testing.T) {
		svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), nil, testAuthConfig())

		_, _, err := svc.Register(ctx, domain.CreateUserInput{
			Name:     "Alex",
			Email:    "alex@example.com",
			Password: "supersecret",
			Role:     "admin",
		})

		assert.ErrorIs(t, err, auth.ErrInvalidRole)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	existing := &domain.User{
		ID:           uuid.New(),
		Name:         "Alex",
		Email:        "alex@example.com",
		PasswordHash: string(hash),
		Role:         "customer",
	}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, nil, testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()
		mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		user, tokens, err := svc.Login(ctx, domain.LoginInput{Email: existing.Email, Password: "supersecret"})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), nil, testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: existing.Email, Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), nil, testAuthConfig())

		mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(mocks.UserRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(mockUserRepo, mockSessionRepo, nil, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		PasswordHash: string(hash),
		Role:         "contractor",
	}

	mockUserRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil).Once()
	mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

	_, tokens, err := svc.Login(ctx, domain.LoginInput{Email: existing.Email, Password: "supersecret"})
	assert.NoError(t, err)

	t.Run("Round-trips claims", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(tokens.AccessToken)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, claims.UserID)
		assert.Equal(t, "contractor", claims.Role)
	})

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates the session", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(mockUserRepo, mockSessionRepo, nil, testAuthConfig())

		user := &domain.User{ID: uuid.New(), Role: "customer"}
		session := &repository.Session{ID: uuid.New(), UserID: user.ID}

		mockSessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		mockUserRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		mockSessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
		mockSessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		tokens, err := svc.RefreshToken(ctx, "some-refresh-token")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.RefreshToken)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown refresh token", func(t *testing.T) {
		mockSessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(new(mocks.UserRepository), mockSessionRepo, nil, testAuthConfig())

		mockSessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()

		tokens, err := svc.RefreshToken(ctx, "revoked-or-bogus")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, tokens)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockSessionRepo := new(mocks.SessionRepository)
	svc := auth.NewService(new(mocks.UserRepository), mockSessionRepo, nil, testAuthConfig())

	mockSessionRepo.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

	assert.NoError(t, svc.Logout(ctx, userID))
	mockSessionRepo.AssertExpectations(t)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer cannot set contractor fields", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), nil, testAuthConfig())

		customer := &domain.User{ID: uuid.New(), Name: "Alex", Role: "customer"}
		companyName := "Sneaky Builders"

		mockUserRepo.On("GetByID", ctx, customer.ID).Return(customer, nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.CompanyName == nil
		})).Return(nil).Once()

		updated, err := svc.UpdateProfile(ctx, customer.ID, domain.UpdateProfileInput{CompanyName: &companyName})

		assert.NoError(t, err)
		assert.Nil(t, updated.CompanyName)
	})

	t.Run("Contractor profile fields apply", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := auth.NewService(mockUserRepo, new(mocks.SessionRepository), nil, testAuthConfig())

		contractor := &domain.User{ID: uuid.New(), Name: "Ravi", Role: "contractor"}
		specialization := "Residential"
		years := 12

		mockUserRepo.On("GetByID", ctx, contractor.ID).Return(contractor, nil).Once()
		mockUserRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		updated, err := svc.UpdateProfile(ctx, contractor.ID, domain.UpdateProfileInput{
			Specialization:    &specialization,
			YearsOfExperience: &years,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Residential", *updated.Specialization)
		assert.Equal(t, 12, updated.YearsOfExperience)
	})
}
