// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "abacus/internal/delivery/context"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/domain/service"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an active, unverified account. The uniqueness check and the
// insert share one transaction; a concurrent duplicate is still caught by the
// unique index and reported the same way.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByUsernameOrEmail(ctx, username, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}
		if existing != nil {
			return domainerrors.ErrUserAlreadyExists
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return err
		}

		user := entity.NewUser(username, email, strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName), hash)
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("user registered", slog.String("user_id", created.ID.String()))

	return created, nil
}

// Authenticate tries the identifier as a username and as an email.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (srv *userService) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)

	var authenticated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsernameOrEmail(ctx, identifier, strings.ToLower(identifier))
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up user")
		}

		if !srv.hasher.Check(password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		user.MarkLoggedIn(srv.now())
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record login")
		}
		authenticated = user

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Info("authentication rejected", slog.String("identifier", identifier))
		} else {
			srv.log(ctx).Error("authentication failed", slog.Any("error", err))
		}

		return nil, err
	}

	return authenticated, nil
}

// Login authenticates and issues an access and refresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	return srv.issueTokenPair(user)
}

// IssueAccessToken authenticates and issues only an access token.
func (srv *userService) IssueAccessToken(ctx context.Context, identifier, password string) (string, error) {
	user, err := srv.Authenticate(ctx, identifier, password)
	if err != nil {
		return "", err
	}

	return srv.tokenService.Issue(service.IssueRequest{
		SubjectID: user.ID.String(),
		Username:  user.Username,
		Kind:      entity.TokenKindAccess,
	})
}

// Refresh exchanges a valid refresh token for a new pair. The account is
// re-read so a deactivated user cannot keep refreshing.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.Verify(refreshToken, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("subject is not a user id")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser
	}

	return srv.issueTokenPair(user)
}

// ResolveIdentity never returns an error; every rejection is nil.
func (srv *userService) ResolveIdentity(token string) *entity.Identity {
	if token == "" {
		return nil
	}

	claims, err := srv.tokenService.Verify(token, entity.TokenKindAccess)
	if err != nil {
		srv.logger.Debug("access token rejected", slog.Any("error", err))

		return nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil
	}

	return &entity.Identity{UserID: userID, Username: claims.Username}
}

// CurrentUser always reloads the profile; token claims are not trusted for profile data.
func (srv *userService) CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser
	}

	return user, nil
}

func (srv *userService) issueTokenPair(user *entity.User) (*usecase.LoginOutput, error) {
	subject := user.ID.String()

	accessToken, err := srv.tokenService.Issue(service.IssueRequest{
		SubjectID: subject,
		Username:  user.Username,
		Kind:      entity.TokenKindAccess,
	})
	if err != nil {
		return nil, err
	}

	refreshToken, err := srv.tokenService.Issue(service.IssueRequest{
		SubjectID: subject,
		Username:  user.Username,
		Kind:      entity.TokenKindRefresh,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    srv.now().UTC().Add(srv.tokenService.TTL(entity.TokenKindAccess)),
		User:         user,
	}, nil
}
