package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryLeeway refreshes the token slightly before the provider's deadline
// so an about-to-expire token is never sent.
const expiryLeeway = 30 * time.Second

// tokenSource caches the OAuth2 client-credentials token for the lifetime
// of the client that owns it. The cache is scoped here on purpose: no
// other component can read or reset the credential.
type tokenSource struct {
	mu           sync.Mutex
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	accessToken string
	expiresAt   time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("amadeus token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("amadeus token response: empty access_token")
	}

	s.accessToken = tr.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryLeeway)

	return s.accessToken, nil
}
