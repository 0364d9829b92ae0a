package impl

import (
	"context"
	"testing"
	"time"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service    usecase.AuthUsecase
	userRepo   *fakeUserRepo
	tokenStore *fakeTokenStore
	tokens     *stubTokenService
}

func newAuthFixture() *authFixture {
	userRepo := newFakeUserRepo()
	tokenStore := newFakeTokenStore()
	tokens := newStubTokenService()

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		TokenStore:   tokenStore,
		Hasher:       fakeHasher{},
		TokenService: tokens,
		Logger:       discardLogger(),
	})

	return &authFixture{
		service:    service,
		userRepo:   userRepo,
		tokenStore: tokenStore,
		tokens:     tokens,
	}
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FirstName:   "Asha",
		Email:       "asha@example.com",
		Password:    "secret123",
		PhoneNumber: "+911234567890",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture()

	output, err := f.service.Register(context.Background(), registerInput())

	require.NoError(t, err)
	require.NotEmpty(t, output.UserID)

	user, err := f.userRepo.FindByUserID(context.Background(), output.UserID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "hashed:secret123", user.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.PhoneNumber = "+910000000000"
	_, err = f.service.Register(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Equal(t, "REG_001", domainerrors.ErrUserAlreadyExists.ErrorCode())
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "other@example.com"
	_, err = f.service.Register(context.Background(), input)

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	output, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, "15m", output.ExpiresIn)
	assert.True(t, f.tokenStore.contains(output.RefreshToken))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "nope",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	login, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, "15m", refreshed.ExpiresIn)

	// Old token is consumed, new one outstanding.
	assert.False(t, f.tokenStore.contains(login.RefreshToken))
	assert.True(t, f.tokenStore.contains(refreshed.RefreshToken))
}

func TestAuthService_Refresh_ReplayFails(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	login, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = f.service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	// Replaying the rotated token must fail as not recognized.
	_, err = f.service.Refresh(context.Background(), login.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotRecognized)
	assert.Equal(t, "REFRESH_001", domainerrors.ErrRefreshTokenNotRecognized.ErrorCode())
}

func TestAuthService_Refresh_NeverIssuedToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Refresh(context.Background(), "made-up-token")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotRecognized)
}

func TestAuthService_Refresh_EmptyToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Refresh(context.Background(), "")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotRecognized)
}

func TestAuthService_Refresh_UnverifiableTokenConsumed(t *testing.T) {
	f := newAuthFixture()

	// Outstanding in the store, but not something the token service issued.
	err := f.tokenStore.Save(context.Background(), "tampered", entity.RefreshSession{
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, time.Hour)
	require.NoError(t, err)

	_, err = f.service.Refresh(context.Background(), "tampered")

	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Equal(t, "REFRESH_002", domainerrors.ErrRefreshTokenInvalid.ErrorCode())
	// The failed attempt still consumed the token.
	assert.False(t, f.tokenStore.contains("tampered"))
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	login, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), login.RefreshToken))
	assert.False(t, f.tokenStore.contains(login.RefreshToken))

	// Logging out again, or with no token at all, still succeeds.
	require.NoError(t, f.service.Logout(context.Background(), login.RefreshToken))
	require.NoError(t, f.service.Logout(context.Background(), ""))
}

func TestAuthService_Logout_InvalidatesRefresh(t *testing.T) {
	f := newAuthFixture()
	_, err := f.service.Register(context.Background(), registerInput())
	require.NoError(t, err)

	login, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), login.RefreshToken))

	_, err = f.service.Refresh(context.Background(), login.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenNotRecognized)
}
