package cmd

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ad-spend-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-spend-sync/infrastructure/repository"
	"github.com/vfg2006/ad-spend-sync/internal/api"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/scheduler"
	"github.com/vfg2006/ad-spend-sync/internal/sink"
	"github.com/vfg2006/ad-spend-sync/internal/usecases/syncing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor HTTP com o agendador de sincronização diária",
	Long: `Sobe o servidor HTTP de disparo manual e o agendador que sincroniza a
janela de ontem (UTC) todos os dias no horário configurado.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	books, err := config.LoadAccountBooks(cfg.Accounts.File)
	if err != nil {
		return err
	}

	syncService := syncing.NewService(cfg, books, buildFetchers(cfg))

	newSink, closeConn, err := serveSinkFactory(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeConn()

	spendSyncService := scheduler.NewSpendSyncService(cfg, syncService, newSink)
	if err := spendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de gastos")
	} else {
		logrus.Info("Agendador de sincronização de gastos iniciado com sucesso")
	}

	server, err := api.New(cfg, spendSyncService)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

// serveSinkFactory escolhe o destino das execuções agendadas: warehouse por
// padrão, ou CSV na saída padrão quando o warehouse está desabilitado.
func serveSinkFactory(ctx context.Context, cfg *config.Config) (scheduler.SinkFactory, func(), error) {
	if !cfg.SpendSync.ToWarehouse {
		factory := func(context.Context) (sink.Sink, error) {
			return sink.NewCSVSink(os.Stdout), nil
		}
		return factory, func() {}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	repo := repository.NewSpendRepository(conn, cfg.Warehouse.Table)
	factory := func(runCtx context.Context) (sink.Sink, error) {
		return sink.NewWarehouseSink(runCtx, repo, cfg.Warehouse.BatchSize), nil
	}

	return factory, func() { conn.Close() }, nil
}
