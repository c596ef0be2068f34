package auth

import (
	"testing"

	jwtpkg "github.com/hoshgeldi/core/internal/pkg/jwt"
	sessionpkg "github.com/hoshgeldi/core/internal/pkg/session"
	"github.com/hoshgeldi/core/internal/pkg/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	u, err := svc.Register(&RegisterDTO{Username: "newcomer", Email: "n@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter22", u.Password)

	token, logged, err := svc.Login("newcomer", "hunter22", "127.0.0.1", "test")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	active, err := sessionpkg.IsActive(db, u.ID, claims.SessionID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	_, err := svc.Register(&RegisterDTO{Username: "dupe", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterDTO{Username: "dupe", Password: "other-pass"})
	assert.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	_, err := svc.Register(&RegisterDTO{Username: "careful", Password: "hunter22"})
	require.NoError(t, err)

	_, _, err = svc.Login("careful", "wrong-pass", "", "")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody", "hunter22", "", "")
	assert.Error(t, err)
}

func TestTokenPairAndRefresh(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	u, err := svc.Register(&RegisterDTO{Username: "api-client", Password: "hunter22"})
	require.NoError(t, err)

	pair, err := svc.IssueTokenPair("api-client", "hunter22", "", "client/1.0")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	claims, err := jwtpkg.Parse(access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	// An access token is not exchangeable.
	_, err = svc.Refresh(pair.Access)
	assert.ErrorIs(t, err, errInvalidRefresh)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	u, err := svc.Register(&RegisterDTO{Username: "leaver", Password: "hunter22"})
	require.NoError(t, err)

	token, _, err := svc.Login("leaver", "hunter22", "", "")
	require.NoError(t, err)
	claims, err := jwtpkg.Parse(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(u.ID, claims.SessionID))

	active, err := sessionpkg.IsActive(db, u.ID, claims.SessionID)
	require.NoError(t, err)
	assert.False(t, active)

	// Logging out an already-dead session is a no-op.
	require.NoError(t, svc.Logout(u.ID, claims.SessionID))
}

func TestRegisterStoreFailureReturnsNoUser(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	u, err := svc.Register(&RegisterDTO{Username: "ghost", Email: "g@example.com", Password: "hunter22"})
	require.Error(t, err)
	assert.Nil(t, u)
}
