package integrator

import "github.com/vfg2006/ad-spend-sync/internal/domain"

// SpendFetcher é o contrato comum dos integradores de mídia: recebe os ids de
// conta do provedor e a janela de datas e devolve os registros normalizados.
// Implementações não retêm estado mutável compartilhado entre chamadas.
type SpendFetcher interface {
	FetchDailySpend(accountIDs []string, window domain.DateWindow) ([]domain.DailySpendRecord, error)
}
