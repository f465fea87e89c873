package impl

import (
	"context"
	"testing"
	"time"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/domain/service"
	mockRepo "abacus/internal/mocks/repository"
	mockSvc "abacus/internal/mocks/service"
	"abacus/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func activeUser() *entity.User {
	user := entity.NewUser("alice", "alice@example.com", "Alice", "Smith", "hashed_password")
	user.ID = uuid.New()

	return user
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "SecretPass1",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	tx := expectTransaction(t, fx.txManager)
	tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	tx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
}

func TestUserService_Register_Conflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "new@example.com", Password: "SecretPass1"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	tx := expectTransaction(t, fx.txManager)
	tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "new@example.com").Return(activeUser(), nil)

	_, err := fx.service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "SecretPass1"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	tx := expectTransaction(t, fx.txManager)
	tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	tx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("unique index"))

	_, err := fx.service.Register(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	input := &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "weak"}

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Authenticate(t *testing.T) {
	for _, identifier := range []string{"alice", "alice@example.com"} {
		t.Run(identifier, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			user := activeUser()

			tx := expectTransaction(t, fx.txManager)
			tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, identifier, identifier).Return(user, nil)
			fx.hasher.EXPECT().Check("SecretPass1", "hashed_password").Return(true)
			tx.userRepo.EXPECT().Update(ctx, user).Return(nil)

			got, err := fx.service.Authenticate(ctx, identifier, "SecretPass1")
			require.NoError(t, err)
			require.NotNil(t, got.LastLogin)
			assert.WithinDuration(t, time.Now(), *got.LastLogin, time.Minute)
		})
	}
}

func TestUserService_Authenticate_Rejections(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		tx := expectTransaction(t, fx.txManager)
		tx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "ghost", "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(context.Background(), "ghost", "whatever")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		tx := expectTransaction(t, fx.txManager)
		tx.userRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "alice").Return(activeUser(), nil)
		fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

		_, err := fx.service.Authenticate(context.Background(), "alice", "wrong")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_Login_IssuesTokenPair(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := activeUser()

	tx := expectTransaction(t, fx.txManager)
	tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("SecretPass1", user.PasswordHash).Return(true)
	tx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	fx.tokenService.EXPECT().
		Issue(service.IssueRequest{SubjectID: user.ID.String(), Username: "alice", Kind: entity.TokenKindAccess}).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		Issue(service.IssueRequest{SubjectID: user.ID.String(), Username: "alice", Kind: entity.TokenKindRefresh}).
		Return("refresh-token", nil)
	fx.tokenService.EXPECT().TTL(entity.TokenKindAccess).Return(15 * time.Minute)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "SecretPass1"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user, out.User)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), out.ExpiresAt, time.Minute)
}

func TestUserService_IssueAccessToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := activeUser()

	tx := expectTransaction(t, fx.txManager)
	tx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice", "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("SecretPass1", user.PasswordHash).Return(true)
	tx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.tokenService.EXPECT().
		Issue(mock.MatchedBy(func(req service.IssueRequest) bool { return req.Kind == entity.TokenKindAccess })).
		Return("access-token", nil)

	token, err := fx.service.IssueAccessToken(ctx, "alice", "SecretPass1")
	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
}

func TestUserService_Refresh(t *testing.T) {
	user := activeUser()
	claims := &service.Claims{
		Username:         user.Username,
		Type:             entity.TokenKindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}

	t.Run("issues a new pair", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().Verify("refresh-token", entity.TokenKindRefresh).Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().Issue(mock.Anything).Return("new-token", nil).Twice()
		fx.tokenService.EXPECT().TTL(entity.TokenKindAccess).Return(time.Minute)

		out, err := fx.service.Refresh(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "new-token", out.AccessToken)
	})

	t.Run("rejects inactive user", func(t *testing.T) {
		fx := createTestUserService(t)
		inactive := *user
		inactive.IsActive = false

		fx.tokenService.EXPECT().Verify("refresh-token", entity.TokenKindRefresh).Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(&inactive, nil)

		_, err := fx.service.Refresh(context.Background(), "refresh-token")
		assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
	})

	t.Run("rejects access token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().Verify("access-token", entity.TokenKindRefresh).Return(nil, domainerrors.ErrTokenTypeMismatch)

		_, err := fx.service.Refresh(context.Background(), "access-token")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenTypeMismatch))
	})
}

func TestUserService_ResolveIdentity(t *testing.T) {
	fx := createTestUserService(t)
	userID := uuid.New()

	fx.tokenService.EXPECT().Verify("good", entity.TokenKindAccess).Return(&service.Claims{
		Username:         "alice",
		Type:             entity.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
	fx.tokenService.EXPECT().Verify("expired", entity.TokenKindAccess).Return(nil, domainerrors.ErrTokenExpired)
	fx.tokenService.EXPECT().Verify("not-a-uuid", entity.TokenKindAccess).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}, nil)

	identity := fx.service.ResolveIdentity("good")
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)

	assert.Nil(t, fx.service.ResolveIdentity("expired"))
	assert.Nil(t, fx.service.ResolveIdentity("not-a-uuid"))
	assert.Nil(t, fx.service.ResolveIdentity(""))
}

func TestUserService_CurrentUser(t *testing.T) {
	user := activeUser()
	identity := &entity.Identity{UserID: user.ID, Username: "stale-name"}

	t.Run("reloads profile", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		got, err := fx.service.CurrentUser(context.Background(), identity)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CurrentUser(context.Background(), identity)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("inactive user", func(t *testing.T) {
		fx := createTestUserService(t)
		inactive := *user
		inactive.IsActive = false
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(&inactive, nil)

		_, err := fx.service.CurrentUser(context.Background(), identity)
		assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
	})

	t.Run("nil identity", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.CurrentUser(context.Background(), nil)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
