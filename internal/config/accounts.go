package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadAccountBooks carrega o mapeamento app -> conta por provedor a partir do
// arquivo JSON configurado. O resultado é carregado uma única vez na partida e
// tratado como somente leitura dali em diante.
func LoadAccountBooks(path string) (*domain.AccountBooks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de contas %s: %w", path, err)
	}

	books := &domain.AccountBooks{}
	if err := json.Unmarshal(data, books); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o arquivo de contas %s: %w", path, err)
	}

	for _, book := range []domain.AccountBook{books.Historical, books.NewAdAccount} {
		for provider := range book {
			if !provider.Valid() {
				return nil, fmt.Errorf("provedor desconhecido no arquivo de contas: %q", provider)
			}
		}
	}

	if books.Historical == nil {
		books.Historical = domain.AccountBook{}
	}
	if books.NewAdAccount == nil {
		books.NewAdAccount = domain.AccountBook{}
	}

	return books, nil
}
