package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type remoteResolver struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteResolver calls the auth service internal API.
func NewRemoteResolver(baseURL, apiKey string, timeout time.Duration) Resolver {
	return &remoteResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *remoteResolver) ResolveUserID(ctx context.Context, token string) (uint64, error) {
	body, err := json.Marshal(model.ValidateTokenRequest{Token: token})
	if err != nil {
		return 0, cerr.SetCustomError(constant.ErrInternal)
	}

	var res model.ValidateTokenResponse
	if err := r.do(ctx, http.MethodPost, "/internal/v1/auth/validate", body, &res); err != nil {
		return 0, err
	}
	if res.UserID == 0 {
		return 0, cerr.SetCustomError(constant.ErrUnauthorize)
	}
	return res.UserID, nil
}

func (r *remoteResolver) LookupEmail(ctx context.Context, userID uint64) (string, error) {
	var res model.UserEmailResponse
	if err := r.do(ctx, http.MethodGet, fmt.Sprintf("/internal/v1/user/%d/email", userID), nil, &res); err != nil {
		return "", err
	}
	if res.Email == "" {
		return "", cerr.SetCustomErrorf(constant.ErrNotFound, "user %d", userID)
	}
	return res.Email, nil
}

func (r *remoteResolver) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return cerr.SetCustomError(constant.ErrInternal)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "marketplace")

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Warn("[RemoteResolver] auth service unreachable", zap.String("path", path), zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return cerr.SetCustomError(constant.ErrUnauthorize)
	case resp.StatusCode == http.StatusNotFound:
		return cerr.SetCustomError(constant.ErrNotFound)
	case resp.StatusCode >= http.StatusInternalServerError:
		logger.Warn("[RemoteResolver] auth service error", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return cerr.SetCustomError(constant.ErrUnavailable)
	case resp.StatusCode != http.StatusOK:
		return cerr.SetCustomError(constant.ErrUnauthorize)
	}

	var envelope model.RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Error("[RemoteResolver] decode response", zap.String("path", path), zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrUnavailable)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		logger.Error("[RemoteResolver] decode payload", zap.String("path", path), zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrUnavailable)
	}
	return nil
}
