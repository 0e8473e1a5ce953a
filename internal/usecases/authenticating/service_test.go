package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testAuthenticator(t *testing.T) Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha_secreta"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.Config{
		Auth: config.Auth{
			Secret:               "segredo_de_teste",
			OperatorEmail:        "operador@exemplo.com",
			OperatorPasswordHash: string(hash),
		},
	})
}

func TestLogin(t *testing.T) {
	t.Run("Credencial correta emite token válido", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		token, err := authenticator.Login("operador@exemplo.com", "senha_secreta")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := authenticator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "operador@exemplo.com", claims.Email)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
	})

	t.Run("Email com maiúsculas e espaços ainda autentica", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		token, err := authenticator.Login("  Operador@Exemplo.com  ", "senha_secreta")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Senha errada devolve erro de credencial", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		_, err := authenticator.Login("operador@exemplo.com", "senha_errada")
		require.Error(t, err)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Email desconhecido devolve erro de credencial", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		_, err := authenticator.Login("intruso@exemplo.com", "senha_secreta")
		require.Error(t, err)
		assert.True(t, IsCredentialsError(err))
	})

	t.Run("Campos vazios são rejeitados antes de conferir a credencial", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		_, err := authenticator.Login("", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		token, err := authenticator.Login("operador@exemplo.com", "senha_secreta")
		require.NoError(t, err)

		_, err = authenticator.ValidateToken(token + "x")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		first := testAuthenticator(t)
		token, err := first.Login("operador@exemplo.com", "senha_secreta")
		require.NoError(t, err)

		other := NewService(&config.Config{
			Auth: config.Auth{
				Secret:        "outro_segredo",
				OperatorEmail: "operador@exemplo.com",
			},
		})

		_, err = other.ValidateToken(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Lixo não decodifica", func(t *testing.T) {
		authenticator := testAuthenticator(t)

		_, err := authenticator.ValidateToken("não.é.jwt")
		assert.Error(t, err)
	})
}
