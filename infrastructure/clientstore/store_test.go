package clientstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "clients.json"))
}

func testProfile(name string) *domain.ClientProfile {
	return &domain.ClientProfile{
		Name:             name,
		AccessToken:      "token_" + name,
		AdAccountID:      "act_123",
		TargetCampaigns:  []string{"conversao_web&app_2025"},
		MinSpend:         250000,
		LowROASThreshold: 85,
		BudgetRulePct:    50,
	}
}

func TestFileStore(t *testing.T) {
	t.Run("Arquivo inexistente resulta em lista vazia", func(t *testing.T) {
		store := testStore(t)

		profiles, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("Salvar e recuperar um perfil", func(t *testing.T) {
		store := testStore(t)

		require.NoError(t, store.Save(testProfile("acme")))

		profile, err := store.Get("acme")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "acme", profile.Name)
		assert.Equal(t, "token_acme", profile.AccessToken)
		assert.Equal(t, []string{"conversao_web&app_2025"}, profile.TargetCampaigns)
	})

	t.Run("Cliente inexistente devolve nil sem erro", func(t *testing.T) {
		store := testStore(t)

		profile, err := store.Get("fantasma")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("Lista ordenada pelo nome", func(t *testing.T) {
		store := testStore(t)

		require.NoError(t, store.Save(testProfile("zebra")))
		require.NoError(t, store.Save(testProfile("acme")))
		require.NoError(t, store.Save(testProfile("meio")))

		profiles, err := store.List()
		require.NoError(t, err)
		require.Len(t, profiles, 3)
		assert.Equal(t, "acme", profiles[0].Name)
		assert.Equal(t, "meio", profiles[1].Name)
		assert.Equal(t, "zebra", profiles[2].Name)
	})

	t.Run("Salvar de novo sobrescreve o perfil", func(t *testing.T) {
		store := testStore(t)

		require.NoError(t, store.Save(testProfile("acme")))

		updated := testProfile("acme")
		updated.LowROASThreshold = 90
		require.NoError(t, store.Save(updated))

		profile, err := store.Get("acme")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, float64(90), profile.LowROASThreshold)
	})

	t.Run("Excluir remove o perfil e preserva os demais", func(t *testing.T) {
		store := testStore(t)

		require.NoError(t, store.Save(testProfile("acme")))
		require.NoError(t, store.Save(testProfile("beta")))
		require.NoError(t, store.Delete("acme"))

		profile, err := store.Get("acme")
		require.NoError(t, err)
		assert.Nil(t, profile)

		profiles, err := store.List()
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "beta", profiles[0].Name)
	})

	t.Run("Nome do campo acompanha a chave do arquivo", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "clients.json")

		raw := `{"renomeado": {"client_name": "antigo", "access_token": "tok", "ad_account_id": "act_1"}}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

		profile, err := NewFileStore(path).Get("renomeado")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "renomeado", profile.Name)
	})

	t.Run("Arquivo corrompido devolve erro", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "clients.json")
		require.NoError(t, os.WriteFile(path, []byte("{invalido"), 0o600))

		_, err := NewFileStore(path).List()
		assert.Error(t, err)
	})
}
