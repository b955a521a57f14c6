// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "position-key"

func newTestAdapter(t *testing.T, serverURL, signKey string) *httpPositioningAdapter {
	t.Helper()

	a, err := NewHTTPPositioningAdapter(config.TagSimAdapter{
		HTTPAddress:     serverURL,
		PositionSignKey: signKey,
		RequestTimeout:  time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPositioningAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPPositioningAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantURL string
		wantErr bool
	}{
		{name: "host and port", address: "localhost:8080", wantURL: "http://localhost:8080"},
		{name: "scheme kept", address: "https://positioning.local/", wantURL: "https://positioning.local"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPPositioningAdapter(config.TagSimAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, a.(*httpPositioningAdapter).client.BaseURL)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "gateway", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))

		writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: "tok", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Login(context.Background(), "gateway", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "tok", got.AccessToken)
	assert.Equal(t, "tok", a.Token())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		detail  string
	}{
		{name: "invalid credentials", status: http.StatusBadRequest, body: `{"detail":"Incorrect username or password"}`, wantErr: ErrBadRequest, detail: "Incorrect username or password"},
		{name: "disabled", status: http.StatusForbidden, body: `{"detail":"Inactive user"}`, wantErr: ErrForbidden, detail: "Inactive user"},
		{name: "store unavailable", status: http.StatusServiceUnavailable, body: "", wantErr: ErrServiceUnavailable, detail: "Service Unavailable"},
		{name: "gateway", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrBadGateway, detail: "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Login(context.Background(), "gateway", "nope")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.detail)
			assert.Empty(t, a.Token())
		})
	}
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, models.User{ID: "u-1", Username: "gateway"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" tok ")
	user, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gateway", user.Username)
}

// ── ReportPosition ───────────────────────────────────────────────────────────

func TestReportPosition_Signed(t *testing.T) {
	signer := utils.NewBodySigner([]byte(testSignKey))
	report := models.TagPositionReport{Address: "aa:bb:cc", PosX: 1.5, PosY: -2}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/position", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if !signer.Verify(body, r.Header.Get(utils.SignatureHeader)) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "Integrity check failed"})
			return
		}

		var got models.TagPositionReport
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, report, got)

		x, y := got.PosX, got.PosY
		writeJSON(w, http.StatusOK, models.Tag{ID: "t-1", Address: got.Address, PosX: &x, PosY: &y})
	}))
	defer srv.Close()

	tag, err := newTestAdapter(t, srv.URL, testSignKey).ReportPosition(context.Background(), report)
	require.NoError(t, err)
	require.NotNil(t, tag.PosX)
	assert.Equal(t, 1.5, *tag.PosX)

	_, err = newTestAdapter(t, srv.URL, "other-key").ReportPosition(context.Background(), report)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestReportPosition_UnsignedWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(utils.SignatureHeader))
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Detail: "Not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").ReportPosition(context.Background(), models.TagPositionReport{Address: "zz"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportPosition_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL, "").ReportPosition(ctx, models.TagPositionReport{Address: "aa"})

	assert.ErrorIs(t, err, context.Canceled)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		writeJSON(w, http.StatusOK, models.VersionResponse{Version: "v1"})
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1", version)
}

func TestVersion_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
