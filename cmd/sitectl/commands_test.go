package main

import (
	"bytes"
	"strings"
	"testing"

	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/casestudies"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 12 case studies, 5 services")
}

func TestMatrix(t *testing.T) {
	out, err := run(t, "", "matrix")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(casestudies.Industries))
	assert.True(t, strings.HasPrefix(lines[0], "industry"))
	assert.NotContains(t, out, string(casestudies.IndustryAll))
	assert.True(t, strings.HasPrefix(lines[1], "car-hauling"))

	out, err = run(t, "", "matrix", "--ids")
	require.NoError(t, err)
	assert.Contains(t, out, "car-hauling-solution")
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "", "hash-password", "--cost", "4", "correct horse battery")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, auth.ComparePassword(hash, "correct horse battery"))
	cost, err := auth.HashCost(hash)
	require.NoError(t, err)
	assert.Equal(t, 4, cost)

	out, err = run(t, "from stdin, long enough\n", "hash-password", "--cost", "4")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(strings.TrimSpace(out), "from stdin, long enough"))
}

func TestHashPasswordCostFromEnv(t *testing.T) {
	t.Setenv("BCRYPT_COST", "5")
	out, err := run(t, "", "hash-password", "correct horse battery")
	require.NoError(t, err)
	cost, err := auth.HashCost(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestHashPasswordRejectsWeakInput(t *testing.T) {
	_, err := run(t, "", "hash-password", "--cost", "4")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)

	out, err := run(t, "", "hash-password", "--cost", "4", "s3cret")
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
	assert.Contains(t, out, "at least 12 characters")

	_, err = run(t, "", "hash-password", "--cost", "99", "correct horse battery")
	assert.ErrorIs(t, err, auth.ErrInvalidCost)
}
