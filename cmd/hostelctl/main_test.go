package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "create-admin"})

	migrate, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", migrate.Name())
}

func TestCreateAdmin_RequiresPassword(t *testing.T) {
	t.Setenv(adminPasswordEnv, "")

	_, err := execute(t, "create-admin", "--username", "warden")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestCreateAdmin_RequiresUsername(t *testing.T) {
	_, err := execute(t, "create-admin", "--password", "secret-pass1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")
}

func TestCreateAdmin_WithSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hostel.db")
	t.Setenv("HOSTEL_DATABASE_DRIVER", "sqlite")
	t.Setenv("HOSTEL_DATABASE_SQLITE_PATH", dbPath)
	t.Setenv("HOSTEL_LOG_LEVEL", "error")
	t.Setenv(adminPasswordEnv, "warden-pass1")

	out, err := execute(t, "create-admin", "--username", "warden", "--email", "warden@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, `Admin "warden" created`)

	out, err = execute(t, "create-admin", "--username", "warden")
	require.NoError(t, err)
	assert.Contains(t, out, "already existed")
}

func TestEnvFile_ExplicitMissingFileFails(t *testing.T) {
	_, err := execute(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "create-admin", "--username", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}
