package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTer_RoundTrip(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "asset-inventory", TTL: time.Hour}

	tok, err := j.Issue(7, "admin", "sid-1")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, 7, c.UserID())
	assert.Equal(t, "admin", c.Login)
	assert.Equal(t, "sid-1", c.SessionID())
}

func TestJWTer_RejectsForeignToken(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "asset-inventory", TTL: time.Hour}
	other := &JWTer{Secret: []byte("other"), Issuer: "asset-inventory", TTL: time.Hour}

	tok, err := other.Issue(1, "admin", "sid")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err)

	wrongIssuer := &JWTer{Secret: []byte("s3cret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err = wrongIssuer.Issue(1, "admin", "sid")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestJWTer_Expired(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "asset-inventory", TTL: -2 * time.Minute}

	tok, err := j.Issue(1, "admin", "sid")
	require.NoError(t, err)
	_, err = j.Parse(tok)
	assert.Error(t, err)
}
