package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/internal/utils"
)

// SessionCookieName carries the identity service's opaque session token.
const SessionCookieName = "leftknovers_session_token"

type (
	// IdentityService talks to the external user-management service that owns
	// authentication. The backend never validates credentials itself.
	IdentityService interface {
		GetOAuthRedirectURL(ctx context.Context) (string, error)
		ExchangeCodeForSession(ctx context.Context, code string) (string, error)
		GetUserBySession(ctx context.Context, sessionToken string) (*domain.AuthUser, error)
		DeleteSession(ctx context.Context, sessionToken string) error
	}

	identityService struct {
		apiURL     string
		apiKey     string
		httpClient *http.Client
	}
)

func NewIdentityService() IdentityService {
	return &identityService{
		apiURL:     utils.GetConfig("USERS_SERVICE_API_URL"),
		apiKey:     utils.GetConfig("USERS_SERVICE_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *identityService) GetOAuthRedirectURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.apiURL+"/oauth/google/redirect_url", nil)
	if err != nil {
		return "", err
	}

	var res struct {
		RedirectURL string `json:"redirect_url"`
	}
	if err := s.do(req, &res); err != nil {
		return "", err
	}
	return res.RedirectURL, nil
}

func (s *identityService) ExchangeCodeForSession(ctx context.Context, code string) (string, error) {
	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.apiURL+"/sessions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var res struct {
		SessionToken string `json:"session_token"`
	}
	if err := s.do(req, &res); err != nil {
		return "", err
	}
	return res.SessionToken, nil
}

func (s *identityService) GetUserBySession(ctx context.Context, sessionToken string) (*domain.AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.apiURL+"/users/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	var user domain.AuthUser
	if err := s.do(req, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, domain.ErrSessionInvalid
	}
	return &user, nil
}

func (s *identityService) DeleteSession(ctx context.Context, sessionToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		s.apiURL+"/sessions/current", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	return s.do(req, nil)
}

func (s *identityService) do(req *http.Request, out any) error {
	req.Header.Set("x-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.ErrSessionInvalid
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("users service error: %s - %s", resp.Status, string(bodyBytes))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
