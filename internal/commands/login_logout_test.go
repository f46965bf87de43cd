package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
)

// runInDir runs cmd with dir as the config directory.
func runInDir(t *testing.T, cmd commands.Command, dir string) (int, string) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: dir}
	code := cmd.Run(context.Background(), cfg, commands.Deps{}, nil, &outBuf, &errBuf)
	if errBuf.Len() > 0 {
		t.Logf("stderr: %s", errBuf.String())
	}
	return code, outBuf.String()
}

// TestLoginCommand_NoOAuthClient verifies login fails without oauth_client.json
func TestLoginCommand_NoOAuthClient(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, commands.Deps{}, nil, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr == "" {
		t.Error("expected error message about missing oauth_client.json")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.LogoutCmd{}, commands.Deps{}, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected %q, got %q", "not logged in\n", stdout)
	}
}

func TestLogoutCommand_RemovesToken(t *testing.T) {
	cmd := &commands.LogoutCmd{}
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")
	if err := os.WriteFile(tokenPath, []byte(`{"access_token":"x"}`), 0600); err != nil {
		t.Fatalf("failed to write token.json: %v", err)
	}

	code, stdout := runInDir(t, cmd, dir)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
		t.Errorf("expected token to be removed, stat err: %v", err)
	}
}
