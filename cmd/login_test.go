package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeToken(t *testing.T) {
	var gotPath, gotContentType, gotPAT string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotPAT = r.PostFormValue("pat")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"jwt-token","expires_in":3600,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	l := &loginCommand{log: logr.Discard(), pat: "my-pat"}
	token, err := l.exchangeToken(server.URL)
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", token.AccessToken)
	assert.Equal(t, "/auth/v1/token", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "my-pat", gotPAT)
}

func TestExchangeTokenRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid personal access token", http.StatusUnauthorized)
	}))
	defer server.Close()

	l := &loginCommand{log: logr.Discard(), pat: "bad-pat"}
	_, err := l.exchangeToken(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestExchangeTokenRequiresAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer server.Close()

	l := &loginCommand{log: logr.Discard(), pat: "my-pat"}
	_, err := l.exchangeToken(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing access_token")
}

func TestTokenExpiry(t *testing.T) {
	expectedExpiry := time.Now().Add(1 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expectedExpiry.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	expiry, ok := tokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, expiry.Equal(expectedExpiry))
}

func TestTokenExpiryRejectsMalformedToken(t *testing.T) {
	_, ok := tokenExpiry("not-a-jwt")
	assert.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, ok = tokenExpiry(noExp)
	assert.False(t, ok)
}
