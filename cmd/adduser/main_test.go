package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverArgs(t *testing.T) []string {
	t.Helper()
	t.Setenv("APP_TOKEN_SIGN_KEY", "test-sign-key")
	t.Setenv("CONFIG", "")

	return []string{"--", "-driver", "sqlite3", "-d", filepath.Join(t.TempDir(), "ledger.db")}
}

func TestRun_CreatesUser(t *testing.T) {
	args := append([]string{"-user", "alice", "-password", "secret1"}, serverArgs(t)...)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "User alice created")
	assert.Contains(t, stdout.String(), "admin: false")
}

func TestRun_PromptsForPassword(t *testing.T) {
	args := append([]string{"-user", "root", "-admin"}, serverArgs(t)...)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), args, strings.NewReader("toor123\n"), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "admin: true")
}

func TestRun_DuplicateUser(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantErr error
	}{
		{name: "user", flags: []string{"-user", "bob", "-password", "secret1"}, wantErr: store.ErrUsernameAlreadyExists},
		{name: "admin", flags: []string{"-user", "bob", "-password", "secret1", "-admin"}, wantErr: errUserExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.flags, serverArgs(t)...)
			var stdout, stderr bytes.Buffer

			require.NoError(t, run(context.Background(), args, strings.NewReader(""), &stdout, &stderr))
			err := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "missing user", args: []string{"-password", "secret1"}},
		{name: "empty password", args: []string{"-user", "alice"}, stdin: "   \n"},
		{name: "no password input", args: []string{"-user", "alice"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)

			assert.Error(t, err)
		})
	}
}
