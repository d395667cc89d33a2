package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FacebookClient exchanges an OAuth code for the user's profile.
type FacebookClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	baseURL      string
	httpClient   *http.Client
}

func NewFacebookClient(clientID, clientSecret, redirectURI, baseURL string) *FacebookClient {
	if baseURL == "" {
		baseURL = "https://graph.facebook.com"
	}
	return &FacebookClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Exchange trades the login code for an access token, then fetches the
// profile. An account without an email cannot be matched and is an error.
func (f *FacebookClient) Exchange(ctx context.Context, code string) (email, name string, err error) {
	params := url.Values{}
	params.Set("client_id", f.clientID)
	params.Set("client_secret", f.clientSecret)
	params.Set("redirect_uri", f.redirectURI)
	params.Set("code", code)

	tokenURL := fmt.Sprintf("%s/v12.0/oauth/access_token?%s", f.baseURL, params.Encode())

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := f.getJSON(ctx, tokenURL, "", &tokenResp); err != nil {
		return "", "", err
	}
	if tokenResp.AccessToken == "" {
		return "", "", errors.New("failed to get access token from Facebook")
	}

	var profile struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	profileURL := f.baseURL + "/me?fields=id,email,name"
	if err := f.getJSON(ctx, profileURL, tokenResp.AccessToken, &profile); err != nil {
		return "", "", err
	}
	if profile.Email == "" {
		return "", "", errors.New("facebook login failed: no email provided")
	}

	return profile.Email, profile.Name, nil
}

func (f *FacebookClient) getJSON(ctx context.Context, rawURL, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("facebook api error: %s", string(raw))
	}

	return json.Unmarshal(raw, out)
}
