package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-spend-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/asa"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/asa/asaclient"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ad-spend-sync/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-spend-sync/infrastructure/repository"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/credential"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"github.com/vfg2006/ad-spend-sync/internal/sink"
	"github.com/vfg2006/ad-spend-sync/internal/usecases/syncing"
	"github.com/vfg2006/ad-spend-sync/pkg/utils"
)

var (
	fetchMonth       string
	fetchToWarehouse bool
	fetchNewAccounts bool
	fetchProviders   []string
	fetchApps        []string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [start end]",
	Short: "Busca e normaliza os gastos diários de anúncios",
	Long: `Busca os gastos diários de anúncios para a janela informada.

Sem argumentos, usa a janela de ontem (UTC). Com as duas datas posicionais,
usa o intervalo informado. Com --month, usa o mês inteiro.

Exemplos:
  adspend fetch
  adspend fetch 2024-06-01 2024-06-30
  adspend fetch --month 2024-06
  adspend fetch --provider tiktok --app meuapp --to-warehouse`,
	Args: cobra.MaximumNArgs(2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchMonth, "month", "", "mês no formato YYYY-MM (substituído pelas datas posicionais)")
	fetchCmd.Flags().BoolVar(&fetchToWarehouse, "to-warehouse", false, "envia para o warehouse em vez de CSV na saída padrão")
	fetchCmd.Flags().BoolVar(&fetchNewAccounts, "new-ad-account", false, "usa o livro de contas novas em vez do histórico")
	fetchCmd.Flags().StringSliceVar(&fetchProviders, "provider", nil, "limita aos provedores informados (tiktok, meta, asa)")
	fetchCmd.Flags().StringSliceVar(&fetchApps, "app", nil, "limita aos apps informados")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	window, err := resolveFetchWindow(args)
	if err != nil {
		return err
	}

	providers, err := parseProviders(fetchProviders)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	books, err := config.LoadAccountBooks(cfg.Accounts.File)
	if err != nil {
		return err
	}

	syncService := syncing.NewService(cfg, books, buildFetchers(cfg))

	out, cleanup, err := buildSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := syncing.RunOptions{
		Window:         window,
		Providers:      providers,
		Apps:           fetchApps,
		UseNewAccounts: fetchNewAccounts,
	}

	summary, err := syncService.Run(ctx, opts, out)
	if err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("erro ao finalizar o sink: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   summary.RunID,
		"accounts": summary.Accounts,
		"records":  summary.Records,
	}).Info("Busca de gastos concluída")

	return nil
}

// resolveFetchWindow resolve a janela a partir dos argumentos posicionais, do
// --month ou do padrão (ontem em UTC).
func resolveFetchWindow(args []string) (domain.DateWindow, error) {
	switch len(args) {
	case 2:
		for _, arg := range args {
			if !utils.IsDate(arg) {
				return domain.DateWindow{}, fmt.Errorf("data inválida: %q (esperado YYYY-MM-DD)", arg)
			}
		}
		return domain.ResolveWindow(args[0], args[1], "", time.Now()), nil
	case 1:
		return domain.DateWindow{}, fmt.Errorf("informe as duas datas (início e fim) ou nenhuma")
	}

	if fetchMonth != "" {
		return domain.ResolveWindow("", "", fetchMonth, time.Now()), nil
	}

	return domain.YesterdayWindow(time.Now()), nil
}

func parseProviders(values []string) ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0, len(values))
	for _, value := range values {
		provider := domain.Provider(value)
		if !provider.Valid() {
			return nil, fmt.Errorf("provedor desconhecido: %q (aceitos: tiktok, meta, asa)", value)
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

// buildFetchers monta o integrador de cada provedor com suas credenciais.
func buildFetchers(cfg *config.Config) map[domain.Provider]integrator.SpendFetcher {
	tiktokClient := tiktokclient.NewClient(cfg, credential.NewStaticToken(cfg.TikTok.AccessToken))
	metaClient := metaclient.NewClient(cfg, credential.NewStaticToken(cfg.Meta.AccessToken))
	asaClient := asaclient.NewClient(cfg, asaclient.NewTokenManager(cfg))

	return map[domain.Provider]integrator.SpendFetcher{
		domain.ProviderTikTok: tiktok.New(cfg, tiktokClient),
		domain.ProviderMeta:   meta.New(cfg, metaClient),
		domain.ProviderASA:    asa.New(cfg, asaClient),
	}
}

// buildSink devolve o sink escolhido e uma função de limpeza dos recursos.
func buildSink(ctx context.Context, cfg *config.Config) (sink.Sink, func(), error) {
	if !fetchToWarehouse {
		return sink.NewCSVSink(os.Stdout), func() {}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("erro ao testar conexão com PostgreSQL: %w", err)
	}

	repo := repository.NewSpendRepository(conn, cfg.Warehouse.Table)
	return sink.NewWarehouseSink(ctx, repo, cfg.Warehouse.BatchSize), func() { conn.Close() }, nil
}
