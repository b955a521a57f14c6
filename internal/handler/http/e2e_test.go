package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const e2eSignKey = "e2e-signing-key-0123456789abcdef"

// e2eServer is the full stack: router, services and a migrated in-memory
// SQLite database.
type e2eServer struct {
	router   http.Handler
	storages *store.Storages
}

func newE2EServer(t *testing.T) *e2eServer {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:          e2eSignKey,
			TokenSigningAlgorithm: "HS256",
			TokenExpireMinutes:    30,
			CookieName:            "bt",
			PasswordHash:          config.PasswordHash{MemoryKiB: 1024, Iterations: 1, Parallelism: 1},
			Version:               "v1",
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		}},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	// bootstrap administrator
	hash, err := crypto.NewPasswordHasher(cfg.App.PasswordHash).Hash("r00t-pw")
	require.NoError(t, err)
	_, err = storages.UserRepository.Create(context.Background(), models.User{
		ID: "0195f0a4-0000-7000-8000-00000000e2e0", Username: "root", FirstName: "Root", LastName: "Admin",
		Email: "root@example.com", Role: models.RoleAdministrator, PasswordHash: hash,
	})
	require.NoError(t, err)

	return &e2eServer{
		router:   NewHandler(services, cfg.App, logger.Nop()).Init(),
		storages: storages,
	}
}

func (s *e2eServer) login(t *testing.T, username, password string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	var body models.TokenResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr, body.AccessToken
}

func (s *e2eServer) call(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func TestE2E_LoginRoleGateAndDisable(t *testing.T) {
	s := newE2EServer(t)

	rr, adminToken := s.login(t, "root", "r00t-pw")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.call(http.MethodPost, "/users", adminToken,
		`{"username":"alice","first_name":"Alice","last_name":"Liddell","email":"alice@example.com","role":0,"disabled":false,"password":"Secr3t!"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "argon2id")

	var alice models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alice))

	rr, aliceToken := s.login(t, "alice", "Secr3t!")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, aliceToken)

	// standard users can read but not administer
	assert.Equal(t, http.StatusOK, s.call(http.MethodGet, "/tags/all", aliceToken, "").Code)
	assert.Equal(t, http.StatusForbidden, s.call(http.MethodGet, "/users/all", aliceToken, "").Code)

	// the same token resolves to the same principal every time
	first := s.call(http.MethodGet, "/users/me", aliceToken, "")
	second := s.call(http.MethodGet, "/users/me", aliceToken, "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	rr = s.call(http.MethodPatch, "/users/"+alice.ID, adminToken,
		`{"username":"alice","first_name":"Alice","last_name":"Liddell","email":"alice@example.com","role":0,"disabled":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	// disabled: login is refused whatever the password, existing tokens stop working
	rr, token := s.login(t, "alice", "Secr3t!")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, token)
	assert.JSONEq(t, `{"detail":"Inactive user"}`, rr.Body.String())

	rr, _ = s.login(t, "alice", "wrong")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	assert.Equal(t, http.StatusForbidden, s.call(http.MethodGet, "/users/me", aliceToken, "").Code)

	// unknown users and wrong passwords look the same
	wrongPassword, _ := s.login(t, "root", "nope")
	unknownUser, _ := s.login(t, "mallory", "nope")
	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestE2E_ForeignAlgorithmTokenRejected(t *testing.T) {
	s := newE2EServer(t)

	claims := jwt.RegisteredClaims{
		Subject:   "root",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(e2eSignKey))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e2eSignKey))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, s.call(http.MethodGet, "/users/me", hs512, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.call(http.MethodGet, "/users/me", none, "").Code)
	assert.Equal(t, http.StatusOK, s.call(http.MethodGet, "/users/me", hs256, "").Code)
}

func TestE2E_OwnPasswordRotation(t *testing.T) {
	s := newE2EServer(t)

	_, token := s.login(t, "root", "r00t-pw")
	require.NotEmpty(t, token)

	rr := s.call(http.MethodPost, "/users/me/password", token, `{"current_password":"bad","new_password":"n3w-pw"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.call(http.MethodPost, "/users/me/password", token, `{"current_password":"r00t-pw","new_password":"n3w-pw"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	old, _ := s.login(t, "root", "r00t-pw")
	assert.Equal(t, http.StatusBadRequest, old.Code)

	fresh, _ := s.login(t, "root@example.com", "n3w-pw")
	assert.Equal(t, http.StatusOK, fresh.Code)
}

func TestE2E_TagPositionReport(t *testing.T) {
	s := newE2EServer(t)
	_, token := s.login(t, "root", "r00t-pw")

	rr := s.call(http.MethodPost, "/tags", token, `{"name":"forklift-1","address":"aa:bb:cc"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = s.call(http.MethodPost, "/position", "", `{"address":"aa:bb:cc","pos_x":12.5,"pos_y":-3}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var tag models.Tag
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tag))
	require.NotNil(t, tag.PosX)
	assert.Equal(t, 12.5, *tag.PosX)
	assert.NotNil(t, tag.LastContact)

	rr = s.call(http.MethodPost, "/position", "", `{"address":"unknown","pos_x":1,"pos_y":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
