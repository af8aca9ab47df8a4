package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	apperrors "shipflow/internal/errors"
)

const (
	// tokenTTL is deliberately shorter than the carrier's real token
	// lifetime, forcing renewal before the carrier ever rejects us.
	tokenTTL    = 23 * time.Hour
	authTimeout = 15 * time.Second
)

// TokenManager owns the cached carrier bearer token. The mutex guards
// the check-and-refresh so concurrent callers finding an expired token
// trigger a single re-authentication.
type TokenManager struct {
	baseURL  string
	email    string
	password string
	client   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenManager(baseURL, email, password string) *TokenManager {
	return &TokenManager{
		baseURL:  baseURL,
		email:    email,
		password: password,
		client:   &http.Client{},
	}
}

// Token returns the cached token while valid, re-authenticating with the
// carrier otherwise. Authentication failure is a hard error for the
// caller; it is not retried here.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && time.Now().Before(m.expiresAt) {
		return m.token, nil
	}

	token, err := m.login(ctx)
	if err != nil {
		return "", err
	}

	m.token = token
	m.expiresAt = time.Now().Add(tokenTTL)
	return m.token, nil
}

func (m *TokenManager) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    m.email,
		"password": m.password,
	})
	if err != nil {
		return "", apperrors.NewAuthError("encoding carrier credentials", err)
	}

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewAuthError("building carrier auth request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", apperrors.NewAuthError("carrier auth request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", apperrors.NewAuthError("carrier auth rejected", nil)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", apperrors.NewAuthError("decoding carrier auth response", err)
	}
	if loginResp.Token == "" {
		return "", apperrors.NewAuthError("carrier auth response missing token", nil)
	}

	return loginResp.Token, nil
}
