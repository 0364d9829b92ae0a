// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "nosh/internal/delivery/context"
	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenStore   repository.RefreshTokenStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenStore   repository.RefreshTokenStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenStore:   params.TokenStore,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account after checking the email and phone
// number are unused.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmailOrPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		srv.log(ctx).Error("Failed to check user uniqueness", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("uniqueness check failed")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("password hashing failed")
	}

	user := &entity.User{
		UserID:       uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hash,
		PhoneNumber:  input.PhoneNumber,
		Addresses:    input.Addresses,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the uniqueness check and
		// hit the unique index instead.
		if errors.Is(err, repository.ErrUserExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Failed to persist user", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("persist user failed")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.UserID))

	return &usecase.RegisterOutput{UserID: user.UserID}, nil
}

// Login verifies credentials and issues a fresh token pair. The refresh
// token becomes outstanding in the token store until rotated or revoked.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up user at login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("user lookup failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.issueSession(ctx, user.UserID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session at login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("token issuance failed")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.UserID))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    formatTTL(srv.tokenService.AccessTokenTTL()),
	}, nil
}

// Refresh rotates a refresh token: the old token is consumed first, so at
// most one of any number of concurrent attempts with the same token wins.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenNotRecognized
	}

	// Consume before verifying. A token absent from the store is rejected
	// even when its signature is still valid; that is what makes revocation
	// and one-time rotation work.
	removed, err := srv.tokenStore.Remove(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Error("Failed to consume refresh token", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("token store remove failed")
	}
	if !removed {
		return nil, domainerrors.ErrRefreshTokenNotRecognized
	}

	claims, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		srv.log(ctx).Error("Failed to look up user at refresh", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("user lookup failed")
	}

	pair, err := srv.issueSession(ctx, user.UserID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session at refresh", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("token issuance failed")
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.String("userID", user.UserID))

	return &usecase.RefreshOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    formatTTL(srv.tokenService.AccessTokenTTL()),
	}, nil
}

// Logout revokes the refresh token. Revoking an absent token is not an
// error; the endpoint always succeeds.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := srv.tokenStore.Remove(ctx, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))
	}

	return nil
}

// issueSession creates a token pair and records the refresh token as
// outstanding.
func (srv *authService) issueSession(ctx context.Context, userID, email string) (*service.TokenPair, error) {
	pair, err := srv.tokenService.IssueTokenPair(userID, email)
	if err != nil {
		return nil, errors.Wrap(err, "issue token pair")
	}

	ttl := srv.tokenService.RefreshTokenTTL()
	session := entity.RefreshSession{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := srv.tokenStore.Save(ctx, pair.RefreshToken, session, ttl); err != nil {
		return nil, errors.Wrap(err, "save refresh session")
	}

	return pair, nil
}

// formatTTL renders a duration the way clients expect it, e.g. "15m"
// rather than Go's "15m0s".
func formatTTL(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}

	return s
}
