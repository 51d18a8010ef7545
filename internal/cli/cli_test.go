package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"go-hrms/internal/cli"
	"go-hrms/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.BuildCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChainCommand_PrintsDefaultChain(t *testing.T) {
	out, err := run(t, "chain")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"1\tsupervisor",
		"2\tdepartment_manager",
		"3\tfactory_manager",
		"4\thr_manager",
	}, lines)
}

func TestTokenIssueCommand(t *testing.T) {
	out, err := run(t, "token", "issue", "--secret", "s3cret", "--user", "u-1", "--employee", "e-1", "--role", "supervisor")
	require.NoError(t, err)

	var claims middleware.TokenClaims
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), &claims, func(token *jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "e-1", claims.EmployeeID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenIssueCommand_RequiresRole(t *testing.T) {
	_, err := run(t, "token", "issue", "--secret", "s3cret", "--user", "u-1")
	assert.Error(t, err)
}
