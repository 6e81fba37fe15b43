package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/appcircle-io/appcircle-cli/pkg/config"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

type loginCommand struct {
	log logr.Logger
	pat string
}

func NewLoginCmd(log logr.Logger) *cobra.Command {
	loginCmd := &loginCommand{log: log}

	loginCommand := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Appcircle using a Personal Access Token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return loginCmd.Login()
		},
	}

	loginCommand.Flags().StringVar(&loginCmd.pat, "pat", "", "Personal Access Token")

	return loginCommand
}

func (l *loginCommand) Login() error {
	if l.pat == "" {
		fmt.Print("Personal Access Token: ")
		patBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read personal access token: %w", err)
		}
		l.pat = strings.TrimSpace(string(patBytes))
		fmt.Println()
	}
	if l.pat == "" {
		return fmt.Errorf("personal access token is required")
	}

	manager, err := config.NewManager()
	if err != nil {
		return err
	}
	cfg, err := manager.Load()
	if err != nil {
		return err
	}
	env := cfg.CurrentEnv()

	authHost := Settings.AuthHostname
	if authHost == "" {
		authHost = env.AuthHostname
	}
	if authHost == "" {
		authHost = config.DefaultAuthHostname
	}

	token, err := l.exchangeToken(authHost)
	if err != nil {
		l.log.Error(err, "login failed")
		return fmt.Errorf("login failed: %w", err)
	}

	env.AccessToken = token.AccessToken
	if err := manager.Save(cfg); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}

	fmt.Println("Login successful.")
	if expiry, ok := tokenExpiry(token.AccessToken); ok {
		fmt.Printf("Token expires at %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

func (l *loginCommand) exchangeToken(authHost string) (*tokenResponse, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	tokenURL := strings.TrimSuffix(authHost, "/") + "/auth/v1/token"

	form := url.Values{}
	form.Set("pat", l.pat)

	req, err := http.NewRequest(http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	l.log.V(7).Info("exchanging personal access token", "url", tokenURL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}
	return &token, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the token
// is only inspected locally to report when it will stop working.
func tokenExpiry(accessToken string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
