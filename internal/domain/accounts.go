package domain

import "sort"

// AccountBook mapeia rótulo de app/negócio -> id de conta no provedor.
type AccountBook map[Provider]map[string]string

// AccountBooks agrupa os dois conjuntos de contas configurados: o histórico,
// usado no dia a dia, e o de contas novas, usado ao buscar dados antigos de
// uma conta recém adicionada.
type AccountBooks struct {
	Historical   AccountBook `json:"historical"`
	NewAdAccount AccountBook `json:"new_ad_account"`
}

// Select retorna o conjunto de contas a usar na execução. Somente leitura.
func (b *AccountBooks) Select(useNewAccounts bool) AccountBook {
	if useNewAccounts {
		return b.NewAdAccount
	}
	return b.Historical
}

// SortedApps retorna os rótulos de app do provedor em ordem estável.
func (book AccountBook) SortedApps(p Provider) []string {
	apps := make([]string, 0, len(book[p]))
	for app := range book[p] {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps
}
