package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-spend-sync/internal/config"
	"github.com/vfg2006/ad-spend-sync/internal/domain"
	"github.com/vfg2006/ad-spend-sync/internal/sink"
	"github.com/vfg2006/ad-spend-sync/internal/usecases/syncing"
)

// SinkFactory cria o sink de destino de cada execução agendada. Mantido como
// fábrica porque o sink de warehouse tem buffer por execução.
type SinkFactory func(ctx context.Context) (sink.Sink, error)

// SpendSyncService agenda a sincronização diária de gastos: roda a janela de
// ontem (UTC) para todos os provedores e envia ao sink configurado.
type SpendSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	syncService         *syncing.Service
	newSink             SinkFactory
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSpendSyncService(
	cfg *config.Config,
	syncService *syncing.Service,
	newSink SinkFactory,
) *SpendSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SpendSync.CronSchedule,
		"sync_enabled":  cfg.SpendSync.Enabled,
	}).Info("Configuração do agendador de sincronização de gastos carregada")

	return &SpendSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		syncService: syncService,
		newSink:     newSink,
	}
}

// Start inicia o agendador; o contexto cancela a execução em background.
func (s *SpendSyncService) Start(ctx context.Context) error {
	if !s.cfg.SpendSync.Enabled {
		logrus.Info("Sincronização de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.SpendSync.CronSchedule).Info("Iniciando agendador de sincronização de gastos")

	_, err := s.scheduler.Cron(s.cfg.SpendSync.CronSchedule).Do(func() {
		s.syncDailySpend(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização de gastos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de gastos")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do horário agendado.
func (s *SpendSyncService) TriggerManualSync() {
	go s.syncDailySpend(context.Background())
}

// syncDailySpend sincroniza a janela de ontem. Execuções sobrepostas são
// ignoradas.
func (s *SpendSyncService) syncDailySpend(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	out, err := s.newSink(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar o sink da sincronização de gastos")
		return
	}

	opts := syncing.RunOptions{
		Window: domain.YesterdayWindow(time.Now()),
	}

	summary, err := s.syncService.Run(ctx, opts, out)
	if err != nil {
		logrus.WithError(err).Error("Sincronização de gastos falhou")
		return
	}

	if err := out.Close(); err != nil {
		logrus.WithError(err).Error("Erro ao finalizar o sink da sincronização de gastos")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   summary.RunID,
		"accounts": summary.Accounts,
		"records":  summary.Records,
	}).Info("Sincronização de gastos concluída")
}

// Status retorna o estado do agendador para o endpoint de disparo manual.
func (s *SpendSyncService) Status() (running bool, lastStarted, lastCompleted time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
