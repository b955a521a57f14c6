package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-resty/resty/v2"
)

type httpPositioningAdapter struct {
	client *utils.HTTPClient

	signer *utils.BodySigner
	token  string

	logger *logger.Logger
}

// NewHTTPPositioningAdapter constructs an HTTP/REST implementation of
// [PositioningAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout. A non-empty cfg.PositionSignKey enables body
// signatures on position reports.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPositioningAdapter(cfg config.TagSimAdapter, logger *logger.Logger) (PositioningAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpPositioningAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	if cfg.PositionSignKey != "" {
		a.signer = utils.NewBodySigner([]byte(cfg.PositionSignKey))
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PositioningAdapter].
func (h *httpPositioningAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [PositioningAdapter].
func (h *httpPositioningAdapter) Token() string {
	return h.token
}

// Login implements [PositioningAdapter]. The credentials are sent as an
// application/x-www-form-urlencoded body.
func (h *httpPositioningAdapter) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// Me implements [PositioningAdapter].
func (h *httpPositioningAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ReportPosition implements [PositioningAdapter]. The report is marshalled
// once so the signature covers exactly the bytes sent.
func (h *httpPositioningAdapter) ReportPosition(ctx context.Context, report models.TagPositionReport) (models.Tag, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return models.Tag{}, fmt.Errorf("encode position report: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.signer != nil {
		req.SetHeader(utils.SignatureHeader, h.signer.SignHex(body))
	}

	var tag models.Tag
	resp, err := req.SetResult(&tag).Post("/position")
	if err != nil {
		return models.Tag{}, fmt.Errorf("position request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tag{}, err
	}

	h.logger.Debug().
		Str("address", report.Address).
		Float64("pos_x", report.PosX).
		Float64("pos_y", report.PosY).
		Msg("position reported")

	return tag, nil
}

// Version implements [PositioningAdapter].
func (h *httpPositioningAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpPositioningAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
