package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/mock"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const dummyHashForTests = "$argon2id$dummy"

func newAuthServiceWithMocks(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher, *mock.MockTokenCodec) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	codec := mock.NewMockTokenCodec(ctrl)

	hasher.EXPECT().Hash(dummyPassword).Return(dummyHashForTests, nil)

	svc, err := NewAuthService(repo, hasher, codec, 30*time.Minute, logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), repo, hasher, codec
}

func TestNewAuthService_DummyHashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("no entropy"))

	svc, err := NewAuthService(mock.NewMockUserRepository(ctrl), hasher, mock.NewMockTokenCodec(ctrl), time.Minute, logger.Nop())

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	active := models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", PasswordHash: "hash-alice"}
	disabled := models.User{ID: "u-2", Username: "bob", Email: "bob@example.com", PasswordHash: "hash-bob", Disabled: true}

	tests := []struct {
		name       string
		identifier string
		password   string
		setup      func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantUser   models.User
		wantErr    error
	}{
		{
			name:       "username and right password",
			identifier: "alice",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(active, nil)
				hasher.EXPECT().Verify("secret", "hash-alice").Return(true)
			},
			wantUser: active,
		},
		{
			name:       "email fallback",
			identifier: "alice@example.com",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "alice@example.com").Return(models.User{}, store.ErrNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(active, nil)
				hasher.EXPECT().Verify("secret", "hash-alice").Return(true)
			},
			wantUser: active,
		},
		{
			name:       "wrong password",
			identifier: "alice",
			password:   "nope",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(active, nil)
				hasher.EXPECT().Verify("nope", "hash-alice").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "unknown identifier is verified against dummy hash",
			identifier: "mallory",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "mallory").Return(models.User{}, store.ErrNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "mallory").Return(models.User{}, store.ErrNotFound)
				hasher.EXPECT().Verify("secret", dummyHashForTests).Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "unknown identifier matching dummy password is still rejected",
			identifier: "mallory",
			password:   dummyPassword,
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "mallory").Return(models.User{}, store.ErrNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "mallory").Return(models.User{}, store.ErrNotFound)
				hasher.EXPECT().Verify(dummyPassword, dummyHashForTests).Return(true)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "empty identifier",
			identifier: "",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				hasher.EXPECT().Verify("secret", dummyHashForTests).Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "disabled account with right password",
			identifier: "bob",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(disabled, nil)
				hasher.EXPECT().Verify("secret", "hash-bob").Return(true)
			},
			wantErr: ErrAccountDisabled,
		},
		{
			name:       "disabled account with wrong password",
			identifier: "bob",
			password:   "nope",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "bob").Return(disabled, nil)
				hasher.EXPECT().Verify("nope", "hash-bob").Return(false)
			},
			wantErr: ErrAccountDisabled,
		},
		{
			name:       "store failure on username lookup",
			identifier: "alice",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: ErrStore,
		},
		{
			name:       "store failure on email lookup",
			identifier: "alice@example.com",
			password:   "secret",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindByUsername(gomock.Any(), "alice@example.com").Return(models.User{}, store.ErrNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(models.User{}, store.ErrTransient)
			},
			wantErr: ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher, _ := newAuthServiceWithMocks(t)
			tt.setup(repo, hasher)

			user, err := svc.Login(context.Background(), tt.identifier, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestAuthService_Login_TransientStoreErrorStaysDetectable(t *testing.T) {
	svc, repo, _, _ := newAuthServiceWithMocks(t)
	repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrTransient)

	_, err := svc.Login(context.Background(), "alice", "secret")

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, store.ErrTransient)
}

func TestAuthService_IssueToken(t *testing.T) {
	svc, _, _, codec := newAuthServiceWithMocks(t)

	expires := time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC)
	want := models.Token{SignedString: "signed", ExpiresAt: expires, TTL: 30 * time.Minute}

	codec.EXPECT().
		Encode(gomock.Any(), 30*time.Minute).
		DoAndReturn(func(claims models.Claims, _ time.Duration) (models.Token, error) {
			assert.Equal(t, "alice", claims.Subject)
			return want, nil
		})

	token, err := svc.IssueToken(context.Background(), models.User{ID: "u-1", Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, want, token)
}

func TestAuthService_IssueToken_EncodeError(t *testing.T) {
	svc, _, _, codec := newAuthServiceWithMocks(t)
	codec.EXPECT().Encode(gomock.Any(), gomock.Any()).Return(models.Token{}, crypto.ErrEmptySecret)

	_, err := svc.IssueToken(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)
}

// TestAuthService_RealCrypto runs login and token issuing with the production
// hasher and codec, then resolves the token through the guard.
func TestAuthService_RealCrypto(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	hasher := crypto.NewPasswordHasher(testHashParams)
	codec, err := crypto.NewTokenCodec(testAppConfig)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	alice := models.User{ID: "0195f0a4-9b7e-7c3a-8d11-2f4e5a6b7c8d", Username: "alice", PasswordHash: hash}

	auth, err := NewAuthService(repo, hasher, codec, time.Minute, logger.Nop())
	require.NoError(t, err)
	guard := NewGuardService(repo, codec, logger.Nop())

	repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(alice, nil).Times(2)

	user, err := auth.Login(context.Background(), "alice", "correct horse")
	require.NoError(t, err)

	token, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, token.TTL)

	principal, err := guard.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, principal.ID)
}
