package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/usecases/reconciling"
)

// CampaignReconcileSyncConfig representa a configuração do agendador de
// reconciliação de campanhas
type CampaignReconcileSyncConfig struct {
	IntervalMinutes int
	RunOnStartup    bool
	SyncEnabled     bool
}

// CampaignReconcileSyncService gerencia o agendamento e execução dos ciclos
// de reconciliação de campanhas. Os ciclos nunca se sobrepõem: um disparo
// com ciclo em andamento é ignorado
type CampaignReconcileSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignReconcileSyncConfig
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastCycleError      string
}

// NewCampaignReconcileSyncService cria uma nova instância do serviço de
// reconciliação agendada
func NewCampaignReconcileSyncService(
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *CampaignReconcileSyncService {
	syncConfig := CampaignReconcileSyncConfig{
		IntervalMinutes: appConfig.CampaignSync.IntervalMinutes,
		RunOnStartup:    appConfig.CampaignSync.RunOnStartup,
		SyncEnabled:     appConfig.CampaignSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes": syncConfig.IntervalMinutes,
		"run_on_startup":   syncConfig.RunOnStartup,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação de campanhas carregada")

	return &CampaignReconcileSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reconciler:  reconciler,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *CampaignReconcileSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).Info("Iniciando agendador de reconciliação de campanhas")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().Do(func() {
		s.runReconcileCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.RunOnStartup {
		logrus.Info("Executando ciclo de reconciliação inicial")
		go s.runReconcileCycle(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// runReconcileCycle executa um ciclo completo de reconciliação, garantindo
// que no máximo um ciclo roda por vez
func (s *CampaignReconcileSyncService) runReconcileCycle(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de reconciliação já em andamento, ignorando")
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

	report, err := s.reconciler.RunCycle(ctx)
	if err != nil {
		s.syncMutex.Lock()
		s.lastCycleError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Ciclo de reconciliação de campanhas falhou")
		return
	}

	s.syncMutex.Lock()
	s.lastCycleError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"cycle_id":  report.CycleID,
		"duration":  report.Duration.String(),
		"refreshed": report.Refreshed,
		"flagged":   report.Flagged,
		"disabled":  report.Disabled,
	}).Info("Ciclo de reconciliação agendado concluído")
}

// TriggerManualSync inicia manualmente um ciclo de reconciliação
func (s *CampaignReconcileSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de reconciliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de reconciliação de campanhas")
	go s.runReconcileCycle(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CampaignReconcileSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_minutes":  s.config.IntervalMinutes,
		"run_on_startup":         s.config.RunOnStartup,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_cycle_error":       s.lastCycleError,
	}
}
