package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the HTTP implementation of [ServerAdapter].
// cfg.HTTPAddress may omit the scheme, http is assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithUserAgent("go-linkup-cli"),
		utils.WithRetries(2, 200*time.Millisecond),
	)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("http adapter created")
	return &httpServerAdapter{client: client, logger: logger}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", req)
}

// authenticate posts body to path and keeps the token from the response.
// The body token wins; the Authorization header is the fallback.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s: no token in response: %w", path, err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	err := h.getJSON(ctx, "/api/user/me", &identity)
	return identity, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&profile).
		Patch("/api/user/profile")
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	return profile, mapHTTPError(resp)
}

func (h *httpServerAdapter) SetAvatar(ctx context.Context, update models.AvatarUpdate) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&profile).
		Put("/api/user/profile/avatar")
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("set avatar request: %w", err)
	}
	return profile, mapHTTPError(resp)
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.PublicProfile, error) {
	var profiles []models.PublicProfile
	err := h.getJSON(ctx, "/api/users", &profiles)
	return profiles, err
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.PublicProfile, error) {
	var profile models.PublicProfile
	err := h.getJSON(ctx, "/api/users/"+url.PathEscape(userID), &profile)
	return profile, err
}

func (h *httpServerAdapter) GetUserByUsername(ctx context.Context, username string) (models.PublicProfile, error) {
	var profile models.PublicProfile
	err := h.getJSON(ctx, "/api/users/by-username/"+url.PathEscape(username), &profile)
	return profile, err
}

func (h *httpServerAdapter) ListUserConnections(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	var profiles []models.PublicProfile
	err := h.getJSON(ctx, "/api/users/"+url.PathEscape(userID)+"/connections", &profiles)
	return profiles, err
}

func (h *httpServerAdapter) SendRequest(ctx context.Context, toID string) error {
	return h.postConnection(ctx, "/api/connections/requests", models.ConnectionRequest{To: toID})
}

func (h *httpServerAdapter) Accept(ctx context.Context, requesterID string) error {
	return h.postConnection(ctx, "/api/connections/requests/accept", models.ConnectionRequest{From: requesterID})
}

func (h *httpServerAdapter) Decline(ctx context.Context, requesterID string) error {
	return h.postConnection(ctx, "/api/connections/requests/decline", models.ConnectionRequest{From: requesterID})
}

func (h *httpServerAdapter) ListPending(ctx context.Context) (models.PendingRequests, error) {
	var pending models.PendingRequests
	err := h.getJSON(ctx, "/api/connections/requests", &pending)
	return pending, err
}

func (h *httpServerAdapter) ListConnections(ctx context.Context) ([]models.PublicProfile, error) {
	var profiles []models.PublicProfile
	err := h.getJSON(ctx, "/api/connections", &profiles)
	return profiles, err
}

func (h *httpServerAdapter) postConnection(ctx context.Context, path string, body models.ConnectionRequest) error {
	resp, err := h.authedRequest(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
