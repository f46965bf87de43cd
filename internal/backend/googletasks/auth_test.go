package googletasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"tasklist/internal/config"
	"tasklist/internal/remote"
)

const testClientJSON = `{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://example.com/auth","token_uri":"https://example.com/token","redirect_uris":["http://localhost"]}}`

func TestLoadOAuthConfig(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if _, err := LoadOAuthConfig(cfg); !errors.Is(err, remote.ErrAuth) {
		t.Fatalf("expected ErrAuth for missing client file, got %v", err)
	}

	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(testClientJSON), 0600); err != nil {
		t.Fatalf("write client file: %v", err)
	}
	oauthConfig, err := LoadOAuthConfig(cfg)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if oauthConfig.ClientID != "id" {
		t.Errorf("expected client id %q, got %q", "id", oauthConfig.ClientID)
	}
}

func TestSaveLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.TokenFile)
	want := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	if err := SaveToken(path, want); err != nil {
		t.Fatalf("save token: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if got.RefreshToken != want.RefreshToken || !got.Expiry.Equal(want.Expiry) {
		t.Errorf("token mismatch: %+v", got)
	}
}

func TestTokenValid_WithoutRefreshToken(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if err := SaveToken(cfg.TokenPath(), &oauth2.Token{AccessToken: "a"}); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if TokenValid(context.Background(), cfg) {
		t.Error("expected token without refresh token to be invalid")
	}
}

func TestNew_NotLoggedIn(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(testClientJSON), 0600); err != nil {
		t.Fatalf("write client file: %v", err)
	}

	_, err := New(context.Background(), cfg)
	if !errors.Is(err, remote.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}
