package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTServiceForTest(t *testing.T) *jwtService {
	t.Helper()

	cfg := newTestConfig(4)
	cfg.Auth.TokenTTL = time.Hour
	cfg.Env.ServiceName = "holocron"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := newTestConfig(4)
	cfg.Auth.TokenSecret = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, expiresAt, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "holocron", claims.Issuer)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newJWTServiceForTest(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newJWTServiceForTest(t)

	other := newJWTServiceForTest(t)
	other.secret = []byte("another-secret")

	token, _, err := other.GenerateAccessToken(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "1",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newJWTServiceForTest(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
