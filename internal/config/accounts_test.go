package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

func writeAccountsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAccountBooks(t *testing.T) {
	path := writeAccountsFile(t, `{
		"historical": {
			"tiktok": {"meuapp": "111"},
			"meta": {"meuapp": "act123"},
			"asa": {"meuapp": "999"}
		},
		"new_ad_account": {
			"tiktok": {"meuapp": "222"}
		}
	}`)

	books, err := LoadAccountBooks(path)
	require.NoError(t, err)

	assert.Equal(t, "111", books.Historical[domain.ProviderTikTok]["meuapp"])
	assert.Equal(t, "act123", books.Historical[domain.ProviderMeta]["meuapp"])
	assert.Equal(t, "222", books.NewAdAccount[domain.ProviderTikTok]["meuapp"])
}

func TestLoadAccountBooks_ProvedorDesconhecido(t *testing.T) {
	path := writeAccountsFile(t, `{"historical": {"google": {"meuapp": "111"}}}`)

	_, err := LoadAccountBooks(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "google")
}

func TestLoadAccountBooks_LivrosAusentesViramVazios(t *testing.T) {
	path := writeAccountsFile(t, `{}`)

	books, err := LoadAccountBooks(path)
	require.NoError(t, err)
	assert.NotNil(t, books.Historical)
	assert.NotNil(t, books.NewAdAccount)
}

func TestLoadAccountBooks_ArquivoInexistente(t *testing.T) {
	_, err := LoadAccountBooks(filepath.Join(t.TempDir(), "nao-existe.json"))
	assert.Error(t, err)
}

func TestLoadAccountBooks_JSONInvalido(t *testing.T) {
	path := writeAccountsFile(t, `{historical`)

	_, err := LoadAccountBooks(path)
	assert.Error(t, err)
}
