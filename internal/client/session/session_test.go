package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/edusynth/internal/utils"
)

func TestFromToken_RegistrationToken(t *testing.T) {
	tok, err := utils.NewToken("s3cret", "u-1", "Ada Lovelace", "ada@example.com", time.Hour)
	require.NoError(t, err)

	s, err := FromToken(tok.Token)
	require.NoError(t, err)
	require.True(t, s.Authenticated())
	assert.Equal(t, "u-1", s.User.ID)
	assert.Equal(t, "Ada Lovelace", s.User.FullName)
	assert.Equal(t, "ada@example.com", s.User.Email)
	assert.Equal(t, tok.Token, s.Token())
	assert.WithinDuration(t, tok.Exp, s.ExpiresAt, time.Second)
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(tok.Exp.Add(time.Second)))
}

func TestFromToken_LoginTokenHasNoID(t *testing.T) {
	tok, err := utils.NewToken("s3cret", "", "Ada", "ada@example.com", time.Hour)
	require.NoError(t, err)

	s, err := FromToken(tok.Token)
	require.NoError(t, err)
	assert.Empty(t, s.User.ID)
	assert.Equal(t, "ada@example.com", s.User.Email)
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)

	tok, err := utils.NewToken("s3cret", "u-1", "Nobody", "", time.Hour)
	require.NoError(t, err)
	_, err = FromToken(tok.Token)
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestRestore(t *testing.T) {
	assert.False(t, Restore(nil).Authenticated())
	assert.False(t, Restore(&User{}).Authenticated())

	s := Restore(&User{ID: "u-9", FullName: "Bo", Email: "bo@example.com"})
	require.True(t, s.Authenticated())
	assert.Equal(t, "u-9", s.User.ID)
	assert.True(t, s.ExpiresAt.IsZero())
	assert.False(t, s.Expired(time.Now()))

	tok, err := utils.NewToken("k", "", "Bo", "bo@example.com", time.Hour)
	require.NoError(t, err)
	s = Restore(&User{ID: "u-9", FullName: "Bo", Email: "bo@example.com", Token: tok.Token})
	assert.Equal(t, "u-9", s.User.ID)
	assert.False(t, s.ExpiresAt.IsZero())
}

func TestEmptySession(t *testing.T) {
	var s Session
	assert.False(t, s.Authenticated())
	assert.Equal(t, "", s.Token())
}
