package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/pkg/jwt"
)

var cfg = jwt.Config{Secret: "test-secret", Issuer: "crm-api", Audience: "crm-app", Expiration: time.Hour}

func TestGenerateParse_ConservaClaims(t *testing.T) {
	tok, err := jwt.Generate(cfg, "u-1", "ana@crm.test", []string{"Admin", "Support"})
	require.NoError(t, err)

	claims, err := jwt.Parse(cfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID())
	assert.Equal(t, "ana@crm.test", claims.Email)
	assert.True(t, claims.HasRole("Support"))
	assert.False(t, claims.HasRole("Manager"))
}

func TestParse_AudienciaDistinta(t *testing.T) {
	tok, err := jwt.Generate(cfg, "u-1", "a@b.c", nil)
	require.NoError(t, err)

	other := cfg
	other.Audience = "otra-app"
	_, err = jwt.Parse(other, tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	expired := cfg
	expired.Expiration = -time.Minute
	tok, err := jwt.Generate(expired, "u-1", "a@b.c", nil)
	require.NoError(t, err)

	_, err = jwt.Parse(cfg, tok)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(cfg, "u-1", "a@b.c", nil)
	require.NoError(t, err)

	other := cfg
	other.Secret = "otro"
	_, err = jwt.Parse(other, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate(jwt.Config{}, "u-1", "a@b.c", nil)
	assert.Error(t, err)
}
