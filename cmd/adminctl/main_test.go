package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/repository/filestore"
	"techfest/internal/service"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHash_SHA256(t *testing.T) {
	out, err := run(t, "secret\n", "hash", "--sha256")
	require.NoError(t, err)
	assert.Equal(t, service.SHA256Hex("secret")+"\n", out)
}

func TestHash_Bcrypt(t *testing.T) {
	out, err := run(t, "secret", "hash")
	require.NoError(t, err)
	assert.True(t, service.MatchPassword(strings.TrimSpace(out), "secret"))
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := run(t, "\n", "hash")
	assert.Error(t, err)
}

func TestInit_WritesCredentialReadableByStore(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "secret\n", "init", "--data-dir", dir)
	require.NoError(t, err)

	store, err := filestore.NewStore(dir)
	require.NoError(t, err)
	cred, err := store.Admin().GetCredential(context.Background())
	require.NoError(t, err)
	assert.True(t, service.MatchPassword(cred.PasswordHash, "secret"))

	_, err = run(t, "other\n", "init", "--data-dir", dir)
	assert.Error(t, err, "refuses to overwrite without --force")

	_, err = run(t, "other\n", "init", "--data-dir", dir, "--force")
	assert.NoError(t, err)
}
