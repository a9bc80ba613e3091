// Package scheduler contém os serviços de agendamento de tarefas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/internal/usecases/forecasting"
)

// Trainer treina um predictor a partir dos arquivos raw
type Trainer interface {
	TrainFromRaw(ctx context.Context, params domain.TrainParams) (*forecasting.TrainResult, error)
}

// RetrainingConfig representa a configuração do agendador de retreino
type RetrainingConfig struct {
	CronSchedule string
	Enabled      bool
}

// RetrainingService agenda o retreino periódico do predictor
type RetrainingService struct {
	scheduler *gocron.Scheduler
	config    RetrainingConfig
	trainer   Trainer
	ctx       context.Context

	mu                 sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastError          string
	lastBestModel      string
}

func NewRetrainingService(trainer Trainer, cfg *config.Config) *RetrainingService {
	retrainingConfig := RetrainingConfig{
		CronSchedule: cfg.Retraining.CronSchedule,
		Enabled:      cfg.Retraining.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retrainingConfig.CronSchedule,
		"enabled":       retrainingConfig.Enabled,
	}).Info("Configuração do agendador de retreino carregada")

	return &RetrainingService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retrainingConfig,
		trainer:   trainer,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *RetrainingService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.Enabled {
		logrus.Info("Retreino agendado desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retreino")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Retrain(); err != nil {
			logrus.WithError(err).Error("Erro no retreino agendado")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retreino: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retreino")
		s.scheduler.Stop()
	}()

	return nil
}

// Retrain executa um treino com os parâmetros padrão. Se já houver um
// treino em andamento a chamada é ignorada.
func (s *RetrainingService) Retrain() error {
	if !s.begin() {
		logrus.Info("Retreino já em andamento, ignorando")
		return nil
	}

	logrus.Info("Iniciando retreino do predictor")

	result, err := s.trainer.TrainFromRaw(s.ctx, domain.TrainParams{})
	s.finish(result, err)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"best_model": result.Info.BestModel,
		"series":     result.SeriesCount,
		"rows":       result.RowCount,
	}).Info("Retreino concluído")

	return nil
}

// TriggerManualRetraining inicia um retreino em segundo plano. Retorna false
// se já houver um em andamento.
func (s *RetrainingService) TriggerManualRetraining() bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		logrus.Info("Retreino já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando retreino manual")
	go func() {
		if err := s.Retrain(); err != nil {
			logrus.WithError(err).Error("Erro no retreino manual")
		}
	}()
	return true
}

func (s *RetrainingService) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	return true
}

func (s *RetrainingService) finish(result *forecasting.TrainResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastRunCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		return
	}
	if result != nil {
		s.lastBestModel = result.Info.BestModel
	}
}

// IsRunning indica se há um retreino em andamento
func (s *RetrainingService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *RetrainingService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"retraining_enabled":    s.config.Enabled,
		"retraining_cron":       s.config.CronSchedule,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_error":            s.lastError,
		"last_best_model":       s.lastBestModel,
	}
}
