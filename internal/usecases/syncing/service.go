package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"github.com/vfg2006/ad-spend-sync/internal/sink"
	"github.com/vfg2006/ad-spend-sync/pkg/log"
	"github.com/vfg2006/ad-spend-sync/pkg/utils"
)

// RunOptions parametriza uma execução de sincronização.
type RunOptions struct {
	Window         domain.DateWindow
	Providers      []domain.Provider // vazio = todos os provedores
	Apps           []string          // vazio = todas as contas do livro
	UseNewAccounts bool
}

// RunSummary resume uma execução para logs e resposta da API.
type RunSummary struct {
	RunID      string            `json:"run_id"`
	Window     domain.DateWindow `json:"window"`
	Accounts   int               `json:"accounts"`
	Records    int               `json:"records"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Service é o dispatcher: itera os provedores configurados, uma conta por
// vez, invoca o integrador correspondente e roteia os registros para o sink.
// Execução estritamente sequencial, sem retries; um erro de fetch aborta a
// execução inteira.
type Service struct {
	cfg      *config.Config
	books    *domain.AccountBooks
	fetchers map[domain.Provider]integrator.SpendFetcher
}

func NewService(
	cfg *config.Config,
	books *domain.AccountBooks,
	fetchers map[domain.Provider]integrator.SpendFetcher,
) *Service {
	return &Service{
		cfg:      cfg,
		books:    books,
		fetchers: fetchers,
	}
}

func (s *Service) Run(ctx context.Context, opts RunOptions, out sink.Sink) (*RunSummary, error) {
	runID, err := utils.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id da execução: %w", err)
	}

	summary := &RunSummary{
		RunID:     runID,
		Window:    opts.Window,
		StartedAt: time.Now().UTC(),
	}

	logger := log.L.WithFields(log.Fields{
		"run_id":     runID,
		"start_date": opts.Window.StartDate,
		"end_date":   opts.Window.EndDate,
	})
	logger.Info("spend sync: run started")

	book := s.books.Select(opts.UseNewAccounts)
	selectedApps := toSet(opts.Apps)

	for _, provider := range s.selectedProviders(opts.Providers) {
		fetcher, ok := s.fetchers[provider]
		if !ok {
			continue
		}

		for _, app := range book.SortedApps(provider) {
			if len(selectedApps) > 0 {
				if _, ok := selectedApps[app]; !ok {
					continue
				}
			}

			if err := ctx.Err(); err != nil {
				return nil, err
			}

			accountID := book[provider][app]
			records, err := fetcher.FetchDailySpend([]string{accountID}, opts.Window)
			if err != nil {
				logger.WithFields(log.Fields{
					"provider": string(provider),
					"app":      app,
					"error":    err.Error(),
				}).Error("spend sync: fetch failed, aborting run")
				return nil, fmt.Errorf("erro ao buscar gastos de %s (%s): %w", app, provider, err)
			}

			rows := make([]domain.SpendRow, 0, len(records))
			for _, record := range records {
				rows = append(rows, domain.NewSpendRow(app, record))
			}

			if err := out.Write(rows); err != nil {
				return nil, fmt.Errorf("erro ao escrever no sink: %w", err)
			}

			summary.Accounts++
			summary.Records += len(rows)

			logger.WithFields(log.Fields{
				"provider": string(provider),
				"app":      app,
				"records":  len(rows),
			}).Debug("spend sync: account processed")
		}
	}

	summary.FinishedAt = time.Now().UTC()
	logger.WithFields(log.Fields{
		"accounts": summary.Accounts,
		"records":  summary.Records,
	}).Info("spend sync: run finished")

	return summary, nil
}

// selectedProviders mantém a ordem fixa de AllProviders, filtrada pela opção.
func (s *Service) selectedProviders(filter []domain.Provider) []domain.Provider {
	if len(filter) == 0 {
		return domain.AllProviders
	}

	wanted := make(map[domain.Provider]struct{}, len(filter))
	for _, provider := range filter {
		wanted[provider] = struct{}{}
	}

	providers := make([]domain.Provider, 0, len(filter))
	for _, provider := range domain.AllProviders {
		if _, ok := wanted[provider]; ok {
			providers = append(providers, provider)
		}
	}
	return providers
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
