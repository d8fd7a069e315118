package service

import (
	"context"
	"testing"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := repository.NewMockUserRepository(ctrl)
	tokens := repository.NewMockRefreshTokenRepository(ctrl)
	cfg := testConfig()
	cfg.Location = time.FixedZone("America/Bogota", -5*60*60)
	svc := NewAuthService(users, tokens, cfg)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "ana@example.com").Return(nil, repository.ErrNotFound)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *models.User) error {
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, "America/Bogota", user.Timezone)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
		return nil
	})
	tokens.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Register(ctx, &models.UserRegistration{
		Email:     "  Ana@Example.com ",
		Password:  "supersecret",
		FirstName: "Ana",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ana@example.com", resp.User.Email)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := repository.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, repository.NewMockRefreshTokenRepository(ctrl), testConfig())
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "ana@example.com").Return(&models.User{ID: uuid.New()}, nil)

	_, err := svc.Register(ctx, &models.UserRegistration{Email: "ana@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterUnknownTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := repository.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, repository.NewMockRefreshTokenRepository(ctrl), testConfig())
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, repository.ErrNotFound)

	_, err := svc.Register(ctx, &models.UserRegistration{Email: "ana@example.com", Password: "supersecret", Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: string(hash)}

	t.Run("valid password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repository.NewMockUserRepository(ctrl)
		tokens := repository.NewMockRefreshTokenRepository(ctrl)
		svc := NewAuthService(users, tokens, testConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
		tokens.EXPECT().Create(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.Login(context.Background(), &models.UserLogin{Email: "ana@example.com", Password: "supersecret"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repository.NewMockUserRepository(ctrl)
		svc := NewAuthService(users, repository.NewMockRefreshTokenRepository(ctrl), testConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), &models.UserLogin{Email: "ana@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := repository.NewMockUserRepository(ctrl)
		svc := NewAuthService(users, repository.NewMockRefreshTokenRepository(ctrl), testConfig())

		users.EXPECT().GetByEmail(gomock.Any(), "who@example.com").Return(nil, repository.ErrNotFound)

		_, err := svc.Login(context.Background(), &models.UserLogin{Email: "who@example.com", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := repository.NewMockUserRepository(ctrl)
	tokens := repository.NewMockRefreshTokenRepository(ctrl)
	svc := NewAuthService(users, tokens, testConfig())
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Email: "ana@example.com"}

	gomock.InOrder(
		tokens.EXPECT().GetByToken(ctx, "old").Return(&repository.RefreshToken{UserID: user.ID}, nil),
		users.EXPECT().GetByID(ctx, user.ID).Return(user, nil),
		tokens.EXPECT().Revoke(ctx, "old").Return(nil),
		tokens.EXPECT().Create(ctx, user.ID, gomock.Any(), gomock.Any()).Return(nil),
	)

	resp, err := svc.RefreshTokens(ctx, "old")
	require.NoError(t, err)
	assert.NotEqual(t, "old", resp.RefreshToken)
}

func TestRefreshTokensUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := repository.NewMockRefreshTokenRepository(ctrl)
	svc := NewAuthService(repository.NewMockUserRepository(ctrl), tokens, testConfig())

	tokens.EXPECT().GetByToken(gomock.Any(), "revoked").Return(nil, repository.ErrNotFound)

	_, err := svc.RefreshTokens(context.Background(), "revoked")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svc := NewAuthService(nil, nil, testConfig())

	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
